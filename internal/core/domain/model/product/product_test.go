package product_test

import (
	"testing"

	"github.com/aryan26102004/Bill-Genius/internal/core/domain/model/kernel"
	"github.com/aryan26102004/Bill-Genius/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProduct(t *testing.T, stock, threshold int) *product.Product {
	t.Helper()
	p, err := product.NewProduct(kernel.NewUUID(), "Widget", decimal.NewFromInt(100), stock, threshold)
	require.NoError(t, err)
	return p
}

func TestNewProduct(t *testing.T) {
	t.Run("creates a valid product", func(t *testing.T) {
		p := newTestProduct(t, 10, 3)

		require.NoError(t, p.Validate())
		assert.Equal(t, "Widget", p.Name())
		assert.Equal(t, 10, p.Stock())
		assert.Equal(t, 3, p.LowStockThreshold())
	})

	t.Run("applies default threshold when zero", func(t *testing.T) {
		p := newTestProduct(t, 10, 0)
		assert.Equal(t, product.DefaultLowStockThreshold, p.LowStockThreshold())
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := product.NewProduct(kernel.NewUUID(), "", decimal.NewFromInt(1), 1, 1)
		require.Error(t, err)
	})

	t.Run("rejects negative price", func(t *testing.T) {
		_, err := product.NewProduct(kernel.NewUUID(), "Widget", decimal.NewFromInt(-1), 1, 1)
		require.Error(t, err)
	})

	t.Run("rejects negative stock", func(t *testing.T) {
		_, err := product.NewProduct(kernel.NewUUID(), "Widget", decimal.NewFromInt(1), -1, 1)
		require.Error(t, err)
	})

	t.Run("rejects zero-value id", func(t *testing.T) {
		_, err := product.NewProduct(kernel.UUID{}, "Widget", decimal.NewFromInt(1), 1, 1)
		require.Error(t, err)
	})
}

func TestProduct_Validate(t *testing.T) {
	t.Run("zero-value product is invalid", func(t *testing.T) {
		var p product.Product
		require.ErrorIs(t, p.Validate(), product.ErrProductIsNotConstructed)
	})
}

func TestProduct_Reserve(t *testing.T) {
	t.Run("decrements stock", func(t *testing.T) {
		p := newTestProduct(t, 3, 1)

		require.NoError(t, p.Reserve(2))
		assert.Equal(t, 1, p.Stock())
	})

	t.Run("exact stock can be reserved", func(t *testing.T) {
		p := newTestProduct(t, 3, 1)

		require.NoError(t, p.Reserve(3))
		assert.Equal(t, 0, p.Stock())
	})

	t.Run("insufficient stock leaves counter unchanged", func(t *testing.T) {
		p := newTestProduct(t, 3, 1)

		err := p.Reserve(4)

		var insufficientErr *product.InsufficientStockError
		require.ErrorAs(t, err, &insufficientErr)
		assert.Equal(t, 3, insufficientErr.Have)
		assert.Equal(t, 4, insufficientErr.Want)
		assert.Equal(t, 3, p.Stock())
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		p := newTestProduct(t, 3, 1)

		require.Error(t, p.Reserve(0))
		require.Error(t, p.Reserve(-1))
		assert.Equal(t, 3, p.Stock())
	})
}

func TestProduct_Release(t *testing.T) {
	t.Run("restores stock", func(t *testing.T) {
		p := newTestProduct(t, 3, 1)
		require.NoError(t, p.Reserve(2))

		require.NoError(t, p.Release(2))
		assert.Equal(t, 3, p.Stock())
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		p := newTestProduct(t, 3, 1)
		require.Error(t, p.Release(0))
	})
}

func TestProduct_IsLowStock(t *testing.T) {
	p := newTestProduct(t, 6, 5)
	assert.False(t, p.IsLowStock())

	require.NoError(t, p.Reserve(1))
	assert.True(t, p.IsLowStock()) // at the threshold counts as low

	require.NoError(t, p.Reserve(5))
	assert.True(t, p.IsLowStock())
}

package driver_test

import (
	"testing"

	"github.com/aryan26102004/Bill-Genius/internal/core/domain/model/driver"
	"github.com/aryan26102004/Bill-Genius/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDriver(t *testing.T) {
	t.Run("should create active driver", func(t *testing.T) {
		id := kernel.NewUUID()

		d, err := driver.NewDriver(id, "Ravi Kumar")

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.True(t, d.ID().IsEqual(id))
		assert.Equal(t, "Ravi Kumar", d.Name())
		assert.True(t, d.IsActive())
	})

	t.Run("should fail without name", func(t *testing.T) {
		d, err := driver.NewDriver(kernel.NewUUID(), "")

		require.Error(t, err)
		assert.Nil(t, d)
		assert.Contains(t, err.Error(), "name")
	})

	t.Run("should fail with unconstructed UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		d, err := driver.NewDriver(invalidID, "Ravi Kumar")

		require.Error(t, err)
		assert.Nil(t, d)
	})
}

func TestDriver_Activation(t *testing.T) {
	t.Run("should deactivate and reactivate", func(t *testing.T) {
		d, err := driver.NewDriver(kernel.NewUUID(), "Ravi Kumar")
		require.NoError(t, err)

		d.Deactivate()
		assert.False(t, d.IsActive())

		d.Activate()
		assert.True(t, d.IsActive())
	})
}

func TestRestoreDriver(t *testing.T) {
	t.Run("should restore inactive driver as inactive", func(t *testing.T) {
		id := kernel.NewUUID()

		d, err := driver.RestoreDriver(id, "Ravi Kumar", false)

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.False(t, d.IsActive())
	})
}

func TestDriver_Validate(t *testing.T) {
	t.Run("should fail for nil driver", func(t *testing.T) {
		var d *driver.Driver

		err := d.Validate()

		require.Error(t, err)
		assert.Equal(t, driver.ErrDriverIsNotConstructed, err)
	})

	t.Run("should fail for zero value driver", func(t *testing.T) {
		var d driver.Driver

		err := d.Validate()

		require.Error(t, err)
		assert.Equal(t, driver.ErrDriverIsNotConstructed, err)
	})
}

package queries

import (
	"errors"

	"github.com/aryan26102004/Bill-Genius/internal/core/domain/model/kernel"
	"github.com/aryan26102004/Bill-Genius/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetInventoryQueryIsNotConstructed = errors.New(
	"GetInventoryQuery must be created via NewGetInventoryQuery constructor",
)

// GetInventoryQuery retrieves the product catalog with live stock counters.
// With the low-stock filter it returns only products at or below their
// replenishment threshold, which feeds the warehouse reorder report.
type GetInventoryQuery struct {
	lowStockOnly bool

	guard guard.ConstructorGuard
}

// NewGetInventoryQuery creates an inventory query. Pass lowStockOnly to
// restrict the listing to products needing replenishment.
func NewGetInventoryQuery(lowStockOnly bool) GetInventoryQuery {
	return GetInventoryQuery{
		lowStockOnly: lowStockOnly,
		guard:        guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetInventoryQuery) Validate() error {
	return q.guard.Validate(ErrGetInventoryQueryIsNotConstructed)
}

func (q GetInventoryQuery) LowStockOnly() bool { return q.lowStockOnly }

// GetInventoryQueryResponse represents one catalog entry with its stock
// counter and replenishment threshold.
type GetInventoryQueryResponse struct {
	ID                kernel.UUID     `json:"id"`
	Name              string          `json:"name"`
	Price             decimal.Decimal `json:"price"`
	Stock             int             `json:"stock"`
	LowStockThreshold int             `json:"lowStockThreshold"`
	LowStock          bool            `json:"lowStock"`
}

package queries

import (
	"context"

	"github.com/aryan26102004/Bill-Genius/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetInventoryQueryHandler retrieves the product catalog from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetInventoryQueryHandler struct {
	db *gorm.DB
}

// NewGetInventoryQueryHandler creates a handler for inventory queries.
func NewGetInventoryQueryHandler(db *gorm.DB) GetInventoryQueryHandler {
	return GetInventoryQueryHandler{db: db}
}

// Handle executes the query to retrieve catalog entries sorted by name.
// When the low-stock filter is set, the threshold comparison runs in the
// database so the report stays cheap on large catalogs.
func (h GetInventoryQueryHandler) Handle(
	ctx context.Context,
	query GetInventoryQuery,
) ([]GetInventoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	products := make([]GetInventoryQueryResponse, 0)

	stmt := `
		SELECT
			id,
			name,
			price,
			stock,
			low_stock_threshold
		FROM products
	`
	if query.LowStockOnly() {
		stmt += `
		WHERE stock <= low_stock_threshold
	`
	}
	stmt += `
		ORDER BY name, id
	`

	rows, err := h.db.WithContext(ctx).Raw(stmt).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry GetInventoryQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&entry.Name,
			&entry.Price,
			&entry.Stock,
			&entry.LowStockThreshold,
		)
		if err != nil {
			return nil, err
		}

		productID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		entry.ID = productID
		entry.LowStock = entry.Stock <= entry.LowStockThreshold

		products = append(products, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

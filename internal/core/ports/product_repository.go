// Package ports defines the contracts between the application core and the
// infrastructure adapters: repositories, the unit of work, event publishing
// and the external payment processor.
package ports

import (
	"context"

	"github.com/aryan26102004/Bill-Genius/internal/core/domain/model/kernel"
	"github.com/aryan26102004/Bill-Genius/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product aggregates.
type ProductRepository interface {
	// Add persists a new product aggregate to storage.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product aggregate.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetForUpdate retrieves a product holding a row lock until the
	// surrounding transaction ends. Stock mutations must go through this
	// method so concurrent reservations serialize.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetAll retrieves every product.
	GetAll(ctx context.Context) ([]*product.Product, error)

	// GetBelowThreshold retrieves products whose stock is at or below their
	// low stock threshold.
	GetBelowThreshold(ctx context.Context) ([]*product.Product, error)
}

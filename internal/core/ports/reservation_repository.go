package ports

import (
	"context"

	"github.com/aryan26102004/Bill-Genius/internal/core/domain/model/kernel"
	"github.com/aryan26102004/Bill-Genius/internal/core/domain/model/product"
)

// ReservationRepository defines the persistence contract for stock
// reservation records. Releases read only the Reserved rows of an order,
// which is what makes a repeated release a no-op.
type ReservationRepository interface {
	// Add persists a new reservation record.
	Add(ctx context.Context, aggregate *product.Reservation) error

	// Update persists changes to an existing reservation record.
	Update(ctx context.Context, aggregate *product.Reservation) error

	// GetReservedByOrder retrieves the records of an order still in the
	// Reserved status.
	GetReservedByOrder(ctx context.Context, orderID kernel.UUID) ([]*product.Reservation, error)
}

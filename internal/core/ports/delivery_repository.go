package ports

import (
	"context"

	"github.com/aryan26102004/Bill-Genius/internal/core/domain/model/delivery"
	"github.com/aryan26102004/Bill-Genius/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for the driver-facing
// delivery projection.
type DeliveryRepository interface {
	// Add persists a new delivery.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists changes to an existing delivery.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// GetByOrderID retrieves the delivery created for an order.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error)

	// GetByDriver retrieves every delivery assigned to a driver, newest first.
	GetByDriver(ctx context.Context, driverID kernel.UUID) ([]*delivery.Delivery, error)
}

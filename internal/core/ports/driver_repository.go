package ports

import (
	"context"

	"github.com/aryan26102004/Bill-Genius/internal/core/domain/model/driver"
	"github.com/aryan26102004/Bill-Genius/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for driver aggregates.
type DriverRepository interface {
	// Add persists a new driver.
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Update persists changes to an existing driver.
	Update(ctx context.Context, aggregate *driver.Driver) error

	// Get retrieves a driver by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// GetAllActive retrieves drivers currently eligible for assignment.
	GetAllActive(ctx context.Context) ([]*driver.Driver, error)
}

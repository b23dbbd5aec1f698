package driver

import (
	"errors"

	"github.com/aryan26102004/Bill-Genius/internal/core/domain/model/kernel"
	"github.com/aryan26102004/Bill-Genius/internal/pkg/errs"
	"github.com/aryan26102004/Bill-Genius/internal/pkg/guard"
)

var (
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")

	ErrDriverIsNotConstructed = errors.New(
		"Driver must be created via NewDriver constructor")
)

// Driver is a delivery driver who can be assigned orders. Only active
// drivers are eligible for assignment.
//
// Business rules:
//   - Driver must have a valid UUID and non-empty name
//   - A deactivated driver keeps existing deliveries but receives no new ones
type Driver struct {
	id     kernel.UUID
	name   string
	active bool

	guard guard.ConstructorGuard
}

// NewDriver creates an active driver ready for assignment.
func NewDriver(id kernel.UUID, name string) (*Driver, error) {
	driver := &Driver{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		driver.setID(id),
		driver.setName(name),
	); err != nil {
		return nil, err
	}

	driver.active = true
	return driver, nil
}

// RestoreDriver reconstructs a driver from persistent storage.
func RestoreDriver(id kernel.UUID, name string, active bool) (*Driver, error) {
	driver := &Driver{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		driver.setID(id),
		driver.setName(name),
	); err != nil {
		return nil, err
	}

	driver.active = active
	return driver, nil
}

func (d *Driver) IsEqual(other *Driver) bool {
	if other == nil {
		return false
	}
	return d.id.IsEqual(other.id)
}

func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

func (d *Driver) ID() kernel.UUID { return d.id }
func (d *Driver) Name() string    { return d.name }
func (d *Driver) IsActive() bool  { return d.active }

// Deactivate takes the driver out of the assignment pool.
func (d *Driver) Deactivate() {
	d.active = false
}

// Activate returns the driver to the assignment pool.
func (d *Driver) Activate() {
	d.active = true
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	d.id = id
	return nil
}

func (d *Driver) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	d.name = name
	return nil
}

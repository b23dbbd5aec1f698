package delivery

import (
	"errors"
	"time"

	"github.com/aryan26102004/Bill-Genius/internal/core/domain/model/kernel"
	"github.com/aryan26102004/Bill-Genius/internal/pkg/errs"
	"github.com/aryan26102004/Bill-Genius/internal/pkg/guard"
)

// DefaultLocation is where every delivery starts before the driver picks
// the parcel up.
const DefaultLocation = "Warehouse"

var (
	ErrDeliveryIsNotConstructed = errors.New(
		"Delivery must be created via NewDelivery constructor")

	ErrAlreadyDelivered = errs.NewConflictError("delivery is already completed")
)

// Status is the driver-facing progress of a delivery.
type Status int

const (
	StatusUnknown Status = iota
	StatusAssigned
	StatusOutForDelivery
	StatusDelivered
)

var statusStrings = map[Status]string{
	StatusUnknown:        "Unknown",
	StatusAssigned:       "Assigned",
	StatusOutForDelivery: "Out for Delivery",
	StatusDelivered:      "Delivered",
}

var stringStatuses = map[string]Status{
	"Assigned":         StatusAssigned,
	"Out for Delivery": StatusOutForDelivery,
	"Delivered":        StatusDelivered,
}

func StatusFromString(s string) (Status, error) {
	status, ok := stringStatuses[s]
	if !ok {
		return StatusUnknown, errs.NewValueIsInvalidError("deliveryStatus")
	}
	return status, nil
}

func (s Status) String() string {
	name, ok := statusStrings[s]
	if !ok {
		return "Unknown"
	}
	return name
}

func (s Status) Validate() error {
	if s == StatusUnknown {
		return errs.NewValueIsRequiredError("deliveryStatus")
	}
	if _, ok := statusStrings[s]; !ok {
		return errs.NewValueIsInvalidError("deliveryStatus")
	}
	return nil
}

// Delivery is the driver-side projection of an assigned order: where the
// parcel currently is and the one-time code the customer must present.
type Delivery struct {
	id          kernel.UUID
	orderID     kernel.UUID
	driverID    kernel.UUID
	status      Status
	location    string
	otp         string
	deliveredAt *time.Time

	guard guard.ConstructorGuard
}

// NewDelivery creates a delivery at the warehouse with the given one-time
// confirmation code.
func NewDelivery(id, orderID, driverID kernel.UUID, otp string) (*Delivery, error) {
	d := &Delivery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setOrderID(orderID),
		d.setDriverID(driverID),
		d.setOTP(otp),
	); err != nil {
		return nil, err
	}

	d.status = StatusAssigned
	d.location = DefaultLocation
	return d, nil
}

// RestoreDelivery reconstructs a delivery from persistent storage.
func RestoreDelivery(id, orderID, driverID kernel.UUID, status Status,
	location, otp string, deliveredAt *time.Time) (*Delivery, error) {
	d := &Delivery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setOrderID(orderID),
		d.setDriverID(driverID),
		d.setOTP(otp),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if location == "" {
		location = DefaultLocation
	}

	d.status = status
	d.location = location
	d.deliveredAt = deliveredAt
	return d, nil
}

func (d *Delivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

func (d *Delivery) ID() kernel.UUID         { return d.id }
func (d *Delivery) OrderID() kernel.UUID    { return d.orderID }
func (d *Delivery) DriverID() kernel.UUID   { return d.driverID }
func (d *Delivery) Status() Status          { return d.status }
func (d *Delivery) Location() string        { return d.location }
func (d *Delivery) OTP() string             { return d.otp }
func (d *Delivery) DeliveredAt() *time.Time { return d.deliveredAt }

// MarkOutForDelivery records that the driver has picked the parcel up and
// where it currently is. An empty location keeps the previous one.
func (d *Delivery) MarkOutForDelivery(location string) error {
	if d.status == StatusDelivered {
		return ErrAlreadyDelivered
	}

	if location != "" {
		d.location = location
	}
	d.status = StatusOutForDelivery
	return nil
}

// MarkDelivered completes the delivery at the given time.
func (d *Delivery) MarkDelivered(at time.Time) error {
	if d.status == StatusDelivered {
		return ErrAlreadyDelivered
	}
	if at.IsZero() {
		return errs.NewValueIsRequiredError("deliveredAt")
	}

	d.status = StatusDelivered
	d.deliveredAt = &at
	return nil
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("id", err)
	}

	d.id = id
	return nil
}

func (d *Delivery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}

	d.orderID = orderID
	return nil
}

func (d *Delivery) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("driverID", err)
	}

	d.driverID = driverID
	return nil
}

func (d *Delivery) setOTP(otp string) error {
	if otp == "" {
		return errs.NewValueIsRequiredError("otp")
	}

	d.otp = otp
	return nil
}

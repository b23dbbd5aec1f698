package product

import (
	"errors"

	"github.com/aryan26102004/Bill-Genius/internal/core/domain/model/kernel"
	"github.com/aryan26102004/Bill-Genius/internal/pkg/errs"
	"github.com/aryan26102004/Bill-Genius/internal/pkg/guard"
)

// ReservationStatus is the lifecycle state of a stock reservation.
type ReservationStatus string

const (
	ReservationStatusReserved ReservationStatus = "Reserved"
	ReservationStatusReleased ReservationStatus = "Released"
)

func (s ReservationStatus) Validate() error {
	switch s {
	case ReservationStatusReserved, ReservationStatusReleased:
		return nil
	case "":
		return errs.NewValueIsRequiredError("reservationStatus")
	default:
		return errs.NewValueIsInvalidError("reservationStatus")
	}
}

var (
	ErrReservationIsNotConstructed = errors.New(
		"Reservation must be created via NewReservation or RestoreReservation")

	ErrAlreadyReleased = errs.NewConflictError("reservation is already released")
)

// Reservation records stock held for one order line. Releases work off these
// records: only Reserved rows return stock, so releasing twice is a no-op at
// the ledger level.
type Reservation struct {
	id        kernel.UUID
	orderID   kernel.UUID
	productID kernel.UUID
	quantity  int
	status    ReservationStatus

	guard guard.ConstructorGuard
}

func NewReservation(id, orderID, productID kernel.UUID, quantity int) (*Reservation, error) {
	r := &Reservation{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setOrderID(orderID),
		r.setProductID(productID),
		r.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	r.status = ReservationStatusReserved
	return r, nil
}

func RestoreReservation(id, orderID, productID kernel.UUID, quantity int,
	status ReservationStatus) (*Reservation, error) {
	r := &Reservation{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setOrderID(orderID),
		r.setProductID(productID),
		r.setQuantity(quantity),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	r.status = status
	return r, nil
}

func (r *Reservation) Validate() error {
	if r == nil {
		return ErrReservationIsNotConstructed
	}
	return r.guard.Validate(ErrReservationIsNotConstructed)
}

func (r *Reservation) ID() kernel.UUID           { return r.id }
func (r *Reservation) OrderID() kernel.UUID      { return r.orderID }
func (r *Reservation) ProductID() kernel.UUID    { return r.productID }
func (r *Reservation) Quantity() int             { return r.quantity }
func (r *Reservation) Status() ReservationStatus { return r.status }

// Release marks the reserved stock as returned. A released reservation
// cannot be released again.
func (r *Reservation) Release() error {
	if r.status == ReservationStatusReleased {
		return ErrAlreadyReleased
	}

	r.status = ReservationStatusReleased
	return nil
}

func (r *Reservation) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("id", err)
	}

	r.id = id
	return nil
}

func (r *Reservation) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}

	r.orderID = orderID
	return nil
}

func (r *Reservation) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("productID", err)
	}

	r.productID = productID
	return nil
}

func (r *Reservation) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidError("quantity")
	}

	r.quantity = quantity
	return nil
}

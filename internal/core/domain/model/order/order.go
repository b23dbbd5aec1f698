package order

import (
	"time"

	"github.com/aryan26102004/Bill-Genius/internal/core/domain/model/kernel"
	"github.com/aryan26102004/Bill-Genius/internal/pkg/errs"
	"github.com/aryan26102004/Bill-Genius/internal/pkg/guard"
	"github.com/shopspring/decimal"
)

var (
	ErrOrderIsNotConstructed = errs.NewValueIsRequiredError(
		"order must be created via NewOrder or RestoreOrder")

	ErrNotCancellable = errs.NewConflictError(
		"order can only be cancelled while Pending or Processing")
	ErrNotDeliverable = errs.NewConflictError(
		"order is not out for delivery")
	ErrOrderFinalized = errs.NewConflictError(
		"order is already in a terminal status")
	ErrDriverAlreadyAssigned = errs.NewConflictError(
		"order already has an assigned driver")
	ErrInvalidOTP = errs.NewConflictError(
		"delivery confirmation code does not match")
	ErrConfirmationRequired = errs.NewValueIsRequiredError("confirmation")
)

// Order is the aggregate root for a customer order. It is created through the
// order coordinator with stock already reserved, then walks the status state
// machine until it is Delivered or Cancelled.
type Order struct {
	id              kernel.UUID
	customerID      kernel.UUID
	items           []Item
	totalAmount     decimal.Decimal
	status          Status
	trackingID      string
	qrCodePayload   string
	shippingAddress string

	assignedDriverID     *kernel.UUID
	deliveryConfirmation string

	paymentMode   PaymentMode
	paymentStatus PaymentStatus
	refund        *Refund

	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates a new order in the Pending status. The total amount must
// equal the sum of the line subtotals; callers recompute it from current
// product prices rather than trusting client-supplied figures.
func NewOrder(id, customerID kernel.UUID, items []Item, totalAmount decimal.Decimal,
	trackingID, qrCodePayload, shippingAddress string, paymentMode PaymentMode,
	paymentStatus PaymentStatus, createdAt time.Time) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("id", err)
	}
	if err := customerID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("customerID", err)
	}
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("items", err)
		}
	}
	if !totalAmount.Equal(sumSubtotals(items)) {
		return nil, errs.NewValueIsInvalidError("totalAmount")
	}
	if trackingID == "" {
		return nil, errs.NewValueIsRequiredError("trackingID")
	}
	if shippingAddress == "" {
		return nil, errs.NewValueIsRequiredError("shippingAddress")
	}
	if err := paymentMode.Validate(); err != nil {
		return nil, err
	}
	if err := paymentStatus.Validate(); err != nil {
		return nil, err
	}
	if createdAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("createdAt")
	}

	return &Order{
		id:              id,
		customerID:      customerID,
		items:           items,
		totalAmount:     totalAmount,
		status:          StatusPending,
		trackingID:      trackingID,
		qrCodePayload:   qrCodePayload,
		shippingAddress: shippingAddress,
		paymentMode:     paymentMode,
		paymentStatus:   paymentStatus,
		createdAt:       createdAt,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// RestoreOrder recreates an order from storage without re-running the
// creation rules. Lifecycle invariants still hold through the methods.
func RestoreOrder(id, customerID kernel.UUID, items []Item, totalAmount decimal.Decimal,
	status Status, trackingID, qrCodePayload, shippingAddress string,
	assignedDriverID *kernel.UUID, deliveryConfirmation string,
	paymentMode PaymentMode, paymentStatus PaymentStatus, refund *Refund,
	createdAt time.Time) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("id", err)
	}
	if err := customerID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("customerID", err)
	}
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if trackingID == "" {
		return nil, errs.NewValueIsRequiredError("trackingID")
	}
	if err := paymentMode.Validate(); err != nil {
		return nil, err
	}
	if err := paymentStatus.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:              id,
		customerID:      customerID,
		items:           items,
		totalAmount:     totalAmount,
		status:          status,
		trackingID:      trackingID,
		qrCodePayload:   qrCodePayload,
		shippingAddress: shippingAddress,

		assignedDriverID:     assignedDriverID,
		deliveryConfirmation: deliveryConfirmation,

		paymentMode:   paymentMode,
		paymentStatus: paymentStatus,
		refund:        refund,

		createdAt: createdAt,

		guard: guard.NewConstructorGuard(),
	}, nil
}

func (o *Order) ID() kernel.UUID              { return o.id }
func (o *Order) CustomerID() kernel.UUID      { return o.customerID }
func (o *Order) Items() []Item                { return o.items }
func (o *Order) TotalAmount() decimal.Decimal { return o.totalAmount }
func (o *Order) Status() Status               { return o.status }
func (o *Order) TrackingID() string           { return o.trackingID }
func (o *Order) QRCodePayload() string        { return o.qrCodePayload }
func (o *Order) ShippingAddress() string      { return o.shippingAddress }
func (o *Order) PaymentMode() PaymentMode     { return o.paymentMode }
func (o *Order) PaymentStatus() PaymentStatus { return o.paymentStatus }
func (o *Order) CreatedAt() time.Time         { return o.createdAt }

func (o *Order) AssignedDriverID() *kernel.UUID { return o.assignedDriverID }
func (o *Order) DeliveryConfirmation() string   { return o.deliveryConfirmation }
func (o *Order) Refund() *Refund                { return o.refund }

// IsAssignedTo reports whether the given driver is the one assigned to
// deliver this order.
func (o *Order) IsAssignedTo(driverID kernel.UUID) bool {
	return o.assignedDriverID != nil && o.assignedDriverID.IsEqual(driverID)
}

// ForceStatus sets the order status directly, as performed by back-office
// staff. Terminal orders cannot be moved. It returns the previous status so
// callers can publish the change.
func (o *Order) ForceStatus(status Status) (Status, error) {
	if err := status.Validate(); err != nil {
		return StatusUnknown, err
	}
	if o.status.IsTerminal() {
		return StatusUnknown, ErrOrderFinalized
	}

	previous := o.status
	o.status = status
	return previous, nil
}

// AssignDriver assigns a driver and moves the order to Shipped. An order can
// be assigned at most one driver.
func (o *Order) AssignDriver(driverID kernel.UUID) (Status, error) {
	if err := driverID.Validate(); err != nil {
		return StatusUnknown, errs.NewValueIsRequiredErrorWithCause("driverID", err)
	}
	if o.assignedDriverID != nil {
		return StatusUnknown, ErrDriverAlreadyAssigned
	}
	if o.status.IsTerminal() {
		return StatusUnknown, ErrOrderFinalized
	}

	previous := o.status
	o.assignedDriverID = &driverID
	o.status = StatusShipped
	return previous, nil
}

// Deliver completes the order. The confirmation is the value presented at the
// door and is stored on the order for audit.
func (o *Order) Deliver(confirmation string) (Status, error) {
	if confirmation == "" {
		return StatusUnknown, ErrConfirmationRequired
	}
	if o.status != StatusShipped {
		return StatusUnknown, ErrNotDeliverable
	}

	previous := o.status
	o.deliveryConfirmation = confirmation
	o.status = StatusDelivered
	return previous, nil
}

// ConfirmDelivery completes the order when the presented code matches the
// one issued at driver assignment. The code check runs first: a repeated
// confirmation with the original code fails on the status guard, not on the
// code, so retries after success read as "already delivered".
func (o *Order) ConfirmDelivery(code, expected string) (Status, error) {
	if code == "" {
		return StatusUnknown, ErrConfirmationRequired
	}
	if expected == "" || code != expected {
		return StatusUnknown, ErrInvalidOTP
	}
	return o.Deliver(code)
}

// Cancel aborts the order. Only Pending and Processing orders can be
// cancelled; reserved stock is released by the caller as compensation.
func (o *Order) Cancel() (Status, error) {
	if !o.status.IsCancellable() {
		return StatusUnknown, ErrNotCancellable
	}

	previous := o.status
	o.status = StatusCancelled
	return previous, nil
}

// RequiresRefund reports whether cancelling this order must refund the
// customer: only prepaid online orders qualify.
func (o *Order) RequiresRefund() bool {
	return o.paymentMode == PaymentModeOnline && o.paymentStatus == PaymentStatusPaid
}

// ApplyRefund records a processed refund and marks the payment as refunded.
// A refund can be applied at most once.
func (o *Order) ApplyRefund(refund Refund) error {
	if err := refund.Validate(); err != nil {
		return err
	}
	if o.refund != nil {
		return errs.NewConflictError("order has already been refunded")
	}

	o.refund = &refund
	o.paymentStatus = PaymentStatusRefunded
	return nil
}

func (o *Order) Validate() error {
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func sumSubtotals(items []Item) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total
}

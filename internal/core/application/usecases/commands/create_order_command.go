package commands

import (
	"errors"

	"github.com/aryan26102004/Bill-Genius/internal/core/domain/model/kernel"
	"github.com/aryan26102004/Bill-Genius/internal/core/domain/model/order"
	"github.com/aryan26102004/Bill-Genius/internal/pkg/errs"
	"github.com/aryan26102004/Bill-Genius/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// OrderLine is one requested product/quantity pair in a new order.
type OrderLine struct {
	ProductID kernel.UUID
	Quantity  int
}

// CreateOrderCommand represents a request to place a new order. The claimed
// total is what the client displayed at checkout; the handler recomputes the
// real total from current prices and rejects a mismatch.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	customerID      kernel.UUID
	lines           []OrderLine
	claimedTotal    decimal.Decimal
	shippingAddress string
	paymentMode     order.PaymentMode

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
func NewCreateOrderCommand(orderID, customerID kernel.UUID, lines []OrderLine,
	claimedTotal decimal.Decimal, shippingAddress string,
	paymentMode order.PaymentMode) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setLines(lines),
		cmd.setClaimedTotal(claimedTotal),
		cmd.setShippingAddress(shippingAddress),
		cmd.setPaymentMode(paymentMode),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID           { return c.orderID }
func (c CreateOrderCommand) CustomerID() kernel.UUID        { return c.customerID }
func (c CreateOrderCommand) Lines() []OrderLine             { return c.lines }
func (c CreateOrderCommand) ClaimedTotal() decimal.Decimal  { return c.claimedTotal }
func (c CreateOrderCommand) ShippingAddress() string        { return c.shippingAddress }
func (c CreateOrderCommand) PaymentMode() order.PaymentMode { return c.paymentMode }

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerID", err)
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for _, line := range lines {
		if err := line.ProductID.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause("productID", err)
		}
		if line.Quantity < 1 {
			return errs.NewValueIsInvalidError("quantity")
		}
	}

	c.lines = lines
	return nil
}

func (c *CreateOrderCommand) setClaimedTotal(claimedTotal decimal.Decimal) error {
	if claimedTotal.IsNegative() {
		return errs.NewValueIsInvalidError("totalAmount")
	}

	c.claimedTotal = claimedTotal
	return nil
}

func (c *CreateOrderCommand) setShippingAddress(shippingAddress string) error {
	if shippingAddress == "" {
		return errs.NewValueIsRequiredError("shippingAddress")
	}

	c.shippingAddress = shippingAddress
	return nil
}

func (c *CreateOrderCommand) setPaymentMode(paymentMode order.PaymentMode) error {
	if err := paymentMode.Validate(); err != nil {
		return err
	}

	c.paymentMode = paymentMode
	return nil
}

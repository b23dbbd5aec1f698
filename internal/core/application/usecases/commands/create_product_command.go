package commands

import (
	"errors"

	"github.com/aryan26102004/Bill-Genius/internal/core/domain/model/actor"
	"github.com/aryan26102004/Bill-Genius/internal/core/domain/model/kernel"
	"github.com/aryan26102004/Bill-Genius/internal/pkg/errs"
	"github.com/aryan26102004/Bill-Genius/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand represents a request to add a product to the catalog.
// A zero threshold falls back to the catalog default.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	actor             actor.Actor
	productID         kernel.UUID
	name              string
	price             decimal.Decimal
	stock             int
	lowStockThreshold int

	guard guard.ConstructorGuard
}

func NewCreateProductCommand(requester actor.Actor, productID kernel.UUID,
	name string, price decimal.Decimal, stock, lowStockThreshold int) (CreateProductCommand, error) {
	cmd := CreateProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := productID.Validate(); err != nil {
		return CreateProductCommand{}, err
	}
	if name == "" {
		return CreateProductCommand{}, errs.NewValueIsRequiredError("name")
	}
	if price.IsNegative() {
		return CreateProductCommand{}, errs.NewValueIsInvalidError("price")
	}
	if stock < 0 {
		return CreateProductCommand{}, errs.NewValueIsInvalidError("stock")
	}
	if lowStockThreshold < 0 {
		return CreateProductCommand{}, errs.NewValueIsInvalidError("lowStockThreshold")
	}

	cmd.actor = requester
	cmd.productID = productID
	cmd.name = name
	cmd.price = price
	cmd.stock = stock
	cmd.lowStockThreshold = lowStockThreshold
	return cmd, nil
}

func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

func (c CreateProductCommand) Actor() actor.Actor     { return c.actor }
func (c CreateProductCommand) ProductID() kernel.UUID { return c.productID }
func (c CreateProductCommand) Name() string           { return c.name }
func (c CreateProductCommand) Price() decimal.Decimal { return c.price }
func (c CreateProductCommand) Stock() int             { return c.stock }
func (c CreateProductCommand) LowStockThreshold() int { return c.lowStockThreshold }

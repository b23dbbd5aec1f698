package commands

import (
	"errors"

	"github.com/aryan26102004/Bill-Genius/internal/core/domain/model/actor"
	"github.com/aryan26102004/Bill-Genius/internal/core/domain/model/kernel"
	"github.com/aryan26102004/Bill-Genius/internal/core/domain/model/order"
	"github.com/aryan26102004/Bill-Genius/internal/pkg/guard"
)

var ErrConfirmDeliveryCommandIsNotConstructed = errors.New(
	"ConfirmDeliveryCommand must be created via NewConfirmDeliveryCommand constructor",
)

// ConfirmDeliveryCommand represents a customer confirming receipt with the
// one-time code from their delivery.
type ConfirmDeliveryCommand struct { //nolint:recvcheck //using for validation
	actor   actor.Actor
	orderID kernel.UUID
	code    string

	guard guard.ConstructorGuard
}

func NewConfirmDeliveryCommand(requester actor.Actor, orderID kernel.UUID,
	code string) (ConfirmDeliveryCommand, error) {
	cmd := ConfirmDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return ConfirmDeliveryCommand{}, err
	}
	if code == "" {
		return ConfirmDeliveryCommand{}, order.ErrConfirmationRequired
	}

	cmd.actor = requester
	cmd.orderID = orderID
	cmd.code = code
	return cmd, nil
}

func (c ConfirmDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrConfirmDeliveryCommandIsNotConstructed)
}

func (c ConfirmDeliveryCommand) Actor() actor.Actor   { return c.actor }
func (c ConfirmDeliveryCommand) OrderID() kernel.UUID { return c.orderID }
func (c ConfirmDeliveryCommand) Code() string         { return c.code }

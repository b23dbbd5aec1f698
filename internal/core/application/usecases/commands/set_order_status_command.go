package commands

import (
	"errors"

	"github.com/aryan26102004/Bill-Genius/internal/core/domain/model/actor"
	"github.com/aryan26102004/Bill-Genius/internal/core/domain/model/kernel"
	"github.com/aryan26102004/Bill-Genius/internal/core/domain/model/order"
	"github.com/aryan26102004/Bill-Genius/internal/pkg/guard"
)

var ErrSetOrderStatusCommandIsNotConstructed = errors.New(
	"SetOrderStatusCommand must be created via NewSetOrderStatusCommand constructor",
)

// SetOrderStatusCommand represents a back-office request to move an order to
// a specific status.
type SetOrderStatusCommand struct { //nolint:recvcheck //using for validation
	actor   actor.Actor
	orderID kernel.UUID
	status  order.Status

	guard guard.ConstructorGuard
}

func NewSetOrderStatusCommand(requester actor.Actor, orderID kernel.UUID,
	status order.Status) (SetOrderStatusCommand, error) {
	cmd := SetOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		status.Validate(),
	); err != nil {
		return SetOrderStatusCommand{}, err
	}

	cmd.actor = requester
	cmd.orderID = orderID
	cmd.status = status
	return cmd, nil
}

func (c SetOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetOrderStatusCommandIsNotConstructed)
}

func (c SetOrderStatusCommand) Actor() actor.Actor   { return c.actor }
func (c SetOrderStatusCommand) OrderID() kernel.UUID { return c.orderID }
func (c SetOrderStatusCommand) Status() order.Status { return c.status }

package commands

import (
	"errors"

	"github.com/aryan26102004/Bill-Genius/internal/core/domain/model/actor"
	"github.com/aryan26102004/Bill-Genius/internal/core/domain/model/kernel"
	"github.com/aryan26102004/Bill-Genius/internal/pkg/errs"
	"github.com/aryan26102004/Bill-Genius/internal/pkg/guard"
)

var ErrAssignDriverCommandIsNotConstructed = errors.New(
	"AssignDriverCommand must be created via NewAssignDriverCommand constructor",
)

// AssignDriverCommand represents a request to hand an order to a driver.
type AssignDriverCommand struct { //nolint:recvcheck //using for validation
	actor    actor.Actor
	orderID  kernel.UUID
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

func NewAssignDriverCommand(requester actor.Actor, orderID,
	driverID kernel.UUID) (AssignDriverCommand, error) {
	cmd := AssignDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return AssignDriverCommand{}, err
	}
	if err := driverID.Validate(); err != nil {
		return AssignDriverCommand{}, errs.NewValueIsRequiredErrorWithCause("driverID", err)
	}

	cmd.actor = requester
	cmd.orderID = orderID
	cmd.driverID = driverID
	return cmd, nil
}

func (c AssignDriverCommand) Validate() error {
	return c.guard.Validate(ErrAssignDriverCommandIsNotConstructed)
}

func (c AssignDriverCommand) Actor() actor.Actor    { return c.actor }
func (c AssignDriverCommand) OrderID() kernel.UUID  { return c.orderID }
func (c AssignDriverCommand) DriverID() kernel.UUID { return c.driverID }

package commands

import (
	"errors"

	"github.com/aryan26102004/Bill-Genius/internal/core/domain/model/actor"
	"github.com/aryan26102004/Bill-Genius/internal/core/domain/model/kernel"
	"github.com/aryan26102004/Bill-Genius/internal/pkg/errs"
	"github.com/aryan26102004/Bill-Genius/internal/pkg/guard"
)

var ErrCreateDriverCommandIsNotConstructed = errors.New(
	"CreateDriverCommand must be created via NewCreateDriverCommand constructor",
)

// CreateDriverCommand represents a request to register a delivery driver.
type CreateDriverCommand struct { //nolint:recvcheck //using for validation
	actor    actor.Actor
	driverID kernel.UUID
	name     string

	guard guard.ConstructorGuard
}

func NewCreateDriverCommand(requester actor.Actor, driverID kernel.UUID,
	name string) (CreateDriverCommand, error) {
	cmd := CreateDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := driverID.Validate(); err != nil {
		return CreateDriverCommand{}, err
	}
	if name == "" {
		return CreateDriverCommand{}, errs.NewValueIsRequiredError("name")
	}

	cmd.actor = requester
	cmd.driverID = driverID
	cmd.name = name
	return cmd, nil
}

func (c CreateDriverCommand) Validate() error {
	return c.guard.Validate(ErrCreateDriverCommandIsNotConstructed)
}

func (c CreateDriverCommand) Actor() actor.Actor    { return c.actor }
func (c CreateDriverCommand) DriverID() kernel.UUID { return c.driverID }
func (c CreateDriverCommand) Name() string          { return c.name }

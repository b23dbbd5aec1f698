package commands

import (
	"errors"

	"github.com/aryan26102004/Bill-Genius/internal/core/domain/model/actor"
	"github.com/aryan26102004/Bill-Genius/internal/core/domain/model/delivery"
	"github.com/aryan26102004/Bill-Genius/internal/core/domain/model/kernel"
	"github.com/aryan26102004/Bill-Genius/internal/pkg/errs"
	"github.com/aryan26102004/Bill-Genius/internal/pkg/guard"
)

var ErrUpdateDeliveryStatusCommandIsNotConstructed = errors.New(
	"UpdateDeliveryStatusCommand must be created via NewUpdateDeliveryStatusCommand constructor",
)

// UpdateDeliveryStatusCommand represents a driver reporting delivery
// progress: picking the parcel up or handing it over. Handing it over
// requires proof of handover, an OTP readout or a signature.
type UpdateDeliveryStatusCommand struct { //nolint:recvcheck //using for validation
	actor        actor.Actor
	orderID      kernel.UUID
	status       delivery.Status
	location     string
	confirmation string

	guard guard.ConstructorGuard
}

func NewUpdateDeliveryStatusCommand(requester actor.Actor, orderID kernel.UUID,
	status delivery.Status, location, confirmation string) (UpdateDeliveryStatusCommand, error) {
	cmd := UpdateDeliveryStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return UpdateDeliveryStatusCommand{}, err
	}
	if err := status.Validate(); err != nil {
		return UpdateDeliveryStatusCommand{}, err
	}
	if status == delivery.StatusAssigned {
		return UpdateDeliveryStatusCommand{},
			errs.NewValueIsInvalidError("deliveryStatus")
	}

	cmd.actor = requester
	cmd.orderID = orderID
	cmd.status = status
	cmd.location = location
	cmd.confirmation = confirmation
	return cmd, nil
}

func (c UpdateDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryStatusCommandIsNotConstructed)
}

func (c UpdateDeliveryStatusCommand) Actor() actor.Actor      { return c.actor }
func (c UpdateDeliveryStatusCommand) OrderID() kernel.UUID    { return c.orderID }
func (c UpdateDeliveryStatusCommand) Status() delivery.Status { return c.status }
func (c UpdateDeliveryStatusCommand) Location() string        { return c.location }
func (c UpdateDeliveryStatusCommand) Confirmation() string    { return c.confirmation }

package commands

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/aryan26102004/Bill-Genius/internal/core/domain/model/actor"
	"github.com/aryan26102004/Bill-Genius/internal/core/domain/model/delivery"
	"github.com/aryan26102004/Bill-Genius/internal/core/domain/model/kernel"
	"github.com/aryan26102004/Bill-Genius/internal/core/ports"
	"github.com/aryan26102004/Bill-Genius/internal/pkg/errs"
)

// ErrDriverNotActive is returned when assigning an order to a driver who is
// out of the assignment pool.
var ErrDriverNotActive = errs.NewConflictError("driver is not active")

// AssignDriverCommandHandler hands an order to a driver: the order moves to
// Shipped and a delivery record is created with a fresh confirmation code,
// all in one transaction.
type AssignDriverCommandHandler struct {
	uowFactory AssignmentUoWFactory
	notifier   ports.Notifier
}

func NewAssignDriverCommandHandler(uowFactory AssignmentUoWFactory,
	notifier ports.Notifier) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

func (h *AssignDriverCommandHandler) Handle(ctx context.Context,
	cmd AssignDriverCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Actor().Is(actor.RoleAdmin) {
		return actor.NewForbiddenError(cmd.Actor().Role, "assign drivers")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	assignee, err := uow.DriverRepository().Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}
	if !assignee.IsActive() {
		return ErrDriverNotActive
	}

	previous, err := aggregate.AssignDriver(assignee.ID())
	if err != nil {
		return err
	}

	otp, err := newDeliveryOTP()
	if err != nil {
		return err
	}

	record, err := delivery.NewDelivery(
		kernel.NewUUID(), aggregate.ID(), assignee.ID(), otp)
	if err != nil {
		return err
	}

	if err = uow.DeliveryRepository().Add(ctx, record); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.notifier.Publish(ctx, ports.Event{
		Name: ports.EventOrderStatusChanged,
		Room: aggregate.TrackingID(),
		At:   time.Now().UTC(),
		Data: map[string]any{
			"orderId":    aggregate.ID().String(),
			"trackingId": aggregate.TrackingID(),
			"from":       previous.String(),
			"to":         aggregate.Status().String(),
			"driver":     assignee.Name(),
		},
	})

	return nil
}

// newDeliveryOTP generates the six digit confirmation code the customer
// presents at the door.
func newDeliveryOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

package commands

import (
	"context"
	"time"

	"github.com/aryan26102004/Bill-Genius/internal/core/domain/model/actor"
	"github.com/aryan26102004/Bill-Genius/internal/core/domain/model/order"
	"github.com/aryan26102004/Bill-Genius/internal/core/ports"
)

// SetOrderStatusCommandHandler moves an order to a requested status on
// behalf of back-office staff. Only admins and warehouse operators may force
// transitions, and terminal orders stay where they are.
type SetOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

func NewSetOrderStatusCommandHandler(uowFactory OrderUoWFactory,
	notifier ports.Notifier) SetOrderStatusCommandHandler {
	return SetOrderStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

func (h *SetOrderStatusCommandHandler) Handle(ctx context.Context,
	cmd SetOrderStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if !cmd.Actor().Is(actor.RoleAdmin, actor.RoleWarehouse) {
		return nil, actor.NewForbiddenError(cmd.Actor().Role, "change order status")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	previous, err := aggregate.ForceStatus(cmd.Status())
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
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
		},
	})

	return aggregate, nil
}

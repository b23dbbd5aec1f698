package commands

import (
	"context"
	"time"

	"github.com/aryan26102004/Bill-Genius/internal/core/domain/model/actor"
	"github.com/aryan26102004/Bill-Genius/internal/core/ports"
)

// ConfirmDeliveryCommandHandler completes an order on the customer's side.
// The presented code is checked against the one issued at assignment, so a
// retry with the same code after success reads as "already delivered"
// rather than completing twice.
type ConfirmDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	notifier   ports.Notifier
}

func NewConfirmDeliveryCommandHandler(uowFactory DeliveryUoWFactory,
	notifier ports.Notifier) ConfirmDeliveryCommandHandler {
	return ConfirmDeliveryCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

func (h *ConfirmDeliveryCommandHandler) Handle(ctx context.Context,
	cmd ConfirmDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
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

	owns := cmd.Actor().Is(actor.RoleCustomer) && aggregate.CustomerID().IsEqual(cmd.Actor().ID)
	if !owns && !cmd.Actor().Is(actor.RoleAdmin) {
		return actor.NewForbiddenError(cmd.Actor().Role, "confirm this delivery")
	}

	record, err := uow.DeliveryRepository().GetByOrderID(ctx, aggregate.ID())
	if err != nil {
		return err
	}

	if _, err = aggregate.ConfirmDelivery(cmd.Code(), record.OTP()); err != nil {
		return err
	}
	if err = record.MarkDelivered(time.Now().UTC()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}
	if err = uow.DeliveryRepository().Update(ctx, record); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.notifier.Publish(ctx, ports.Event{
		Name: ports.EventOrderDelivered,
		Room: aggregate.TrackingID(),
		At:   time.Now().UTC(),
		Data: map[string]any{
			"orderId":    aggregate.ID().String(),
			"trackingId": aggregate.TrackingID(),
			"status":     aggregate.Status().String(),
		},
	})

	return nil
}

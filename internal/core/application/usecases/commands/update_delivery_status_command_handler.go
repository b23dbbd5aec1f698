package commands

import (
	"context"
	"time"

	"github.com/aryan26102004/Bill-Genius/internal/core/domain/model/actor"
	"github.com/aryan26102004/Bill-Genius/internal/core/domain/model/delivery"
	"github.com/aryan26102004/Bill-Genius/internal/core/ports"
)

// UpdateDeliveryStatusCommandHandler applies a driver's progress report.
// Only the driver assigned to the order may report on it. Marking the parcel
// delivered closes the order as well, recording whatever proof the driver
// collected at the door, an OTP readout or a signature. Matching the issued
// code is the customer confirmation flow's job, not the driver's.
type UpdateDeliveryStatusCommandHandler struct {
	uowFactory DeliveryUoWFactory
	notifier   ports.Notifier
}

func NewUpdateDeliveryStatusCommandHandler(uowFactory DeliveryUoWFactory,
	notifier ports.Notifier) UpdateDeliveryStatusCommandHandler {
	return UpdateDeliveryStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

func (h *UpdateDeliveryStatusCommandHandler) Handle(ctx context.Context,
	cmd UpdateDeliveryStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Actor().Is(actor.RoleDriver) {
		return actor.NewForbiddenError(cmd.Actor().Role, "report delivery progress")
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

	if !aggregate.IsAssignedTo(cmd.Actor().ID) {
		return actor.NewForbiddenError(cmd.Actor().Role, "report on this order")
	}

	record, err := uow.DeliveryRepository().GetByOrderID(ctx, aggregate.ID())
	if err != nil {
		return err
	}

	eventName := ports.EventDeliveryStatusChanged
	switch cmd.Status() {
	case delivery.StatusOutForDelivery:
		if err = record.MarkOutForDelivery(cmd.Location()); err != nil {
			return err
		}

	case delivery.StatusDelivered:
		now := time.Now().UTC()
		if _, err = aggregate.Deliver(cmd.Confirmation()); err != nil {
			return err
		}
		if err = record.MarkDelivered(now); err != nil {
			return err
		}
		if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
			return err
		}
		eventName = ports.EventOrderDelivered
	}

	if err = uow.DeliveryRepository().Update(ctx, record); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.notifier.Publish(ctx, ports.Event{
		Name: eventName,
		Room: aggregate.TrackingID(),
		At:   time.Now().UTC(),
		Data: map[string]any{
			"orderId":        aggregate.ID().String(),
			"trackingId":     aggregate.TrackingID(),
			"deliveryStatus": record.Status().String(),
			"location":       record.Location(),
		},
	})

	return nil
}

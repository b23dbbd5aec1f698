package commands

import (
	"context"
	"sort"
	"time"

	"github.com/aryan26102004/Bill-Genius/internal/core/domain/model/actor"
	"github.com/aryan26102004/Bill-Genius/internal/core/domain/model/kernel"
	"github.com/aryan26102004/Bill-Genius/internal/core/domain/model/product"
	"github.com/aryan26102004/Bill-Genius/internal/core/domain/services"
	"github.com/aryan26102004/Bill-Genius/internal/core/ports"
	"github.com/aryan26102004/Bill-Genius/internal/pkg/errs"
)

// CancelOrderCommandHandler aborts an order before shipment. Cancellation is
// all-or-nothing: the status flip, the stock release and the refund land in
// one transaction, and a refused refund rolls the whole thing back so the
// order never ends up cancelled with the customer unpaid.
//
// Stock release is idempotent through the reservation records: only rows
// still marked Reserved return stock, and they flip to Released in the same
// transaction.
type CancelOrderCommandHandler struct {
	uowFactory CancellationUoWFactory
	ledger     services.InventoryLedger
	refunds    ports.RefundProcessor
	notifier   ports.Notifier
}

func NewCancelOrderCommandHandler(uowFactory CancellationUoWFactory,
	refunds ports.RefundProcessor, notifier ports.Notifier) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		ledger:     services.NewInventoryLedger(),
		refunds:    refunds,
		notifier:   notifier,
	}
}

func (h *CancelOrderCommandHandler) Handle(ctx context.Context,
	cmd CancelOrderCommand) error {
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
		return actor.NewForbiddenError(cmd.Actor().Role, "cancel this order")
	}

	previous, err := aggregate.Cancel()
	if err != nil {
		return err
	}

	if err = h.releaseStock(ctx, uow, aggregate.ID()); err != nil {
		return err
	}

	refunded := false
	if aggregate.RequiresRefund() {
		refund, rErr := h.refunds.Process(ctx, aggregate.ID(), aggregate.TotalAmount())
		if rErr != nil {
			return errs.NewExternalFailureError("payment provider", rErr)
		}
		if err = aggregate.ApplyRefund(refund); err != nil {
			return err
		}
		refunded = true
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	now := time.Now().UTC()
	data := map[string]any{
		"orderId":    aggregate.ID().String(),
		"trackingId": aggregate.TrackingID(),
		"from":       previous.String(),
		"to":         aggregate.Status().String(),
		"refunded":   refunded,
	}
	_ = h.notifier.Publish(ctx, ports.Event{
		Name: ports.EventOrderCancelled,
		Room: aggregate.TrackingID(),
		At:   now,
		Data: data,
	})
	_ = h.notifier.Publish(ctx, ports.Event{
		Name: ports.EventOrderStatusChanged,
		Room: aggregate.TrackingID(),
		At:   now,
		Data: data,
	})

	return nil
}

// releaseStock returns stock held by the order's still-reserved records. An
// order with no reserved rows left releases nothing.
func (h *CancelOrderCommandHandler) releaseStock(ctx context.Context,
	uow CancellationUoW, orderID kernel.UUID) error {
	reservations, err := uow.ReservationRepository().GetReservedByOrder(ctx, orderID)
	if err != nil {
		return err
	}
	if len(reservations) == 0 {
		return nil
	}

	sort.Slice(reservations, func(i, j int) bool {
		return reservations[i].ProductID().String() < reservations[j].ProductID().String()
	})

	products := make([]*product.Product, 0, len(reservations))
	lines := make([]services.ReservationLine, 0, len(reservations))
	for _, r := range reservations {
		p, pErr := uow.ProductRepository().GetForUpdate(ctx, r.ProductID())
		if pErr != nil {
			return pErr
		}
		products = append(products, p)
		lines = append(lines, services.ReservationLine{
			ProductID: r.ProductID(),
			Quantity:  r.Quantity(),
		})
	}

	if err = h.ledger.Release(products, lines); err != nil {
		return err
	}

	for _, p := range products {
		if err = uow.ProductRepository().Update(ctx, p); err != nil {
			return err
		}
	}

	for _, r := range reservations {
		if err = r.Release(); err != nil {
			return err
		}
		if err = uow.ReservationRepository().Update(ctx, r); err != nil {
			return err
		}
	}

	return nil
}

package commands

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/aryan26102004/Bill-Genius/internal/core/domain/model/kernel"
	"github.com/aryan26102004/Bill-Genius/internal/core/domain/model/order"
	"github.com/aryan26102004/Bill-Genius/internal/core/domain/model/product"
	"github.com/aryan26102004/Bill-Genius/internal/core/domain/services"
	"github.com/aryan26102004/Bill-Genius/internal/core/ports"
	"github.com/aryan26102004/Bill-Genius/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateOrderCommandHandler places new orders. It reserves stock for every
// line, writes the reservation records and the order in one transaction, and
// publishes lifecycle events only after the commit succeeds. Any failure
// inside the transaction rolls everything back: there is no path that leaves
// stock decremented without a matching order.
type CreateOrderCommandHandler struct {
	uowFactory      CheckoutUoWFactory
	ledger          services.InventoryLedger
	qrGenerator     ports.QRCodeGenerator
	notifier        ports.Notifier
	alerter         ports.Alerter
	trackingBaseURL string
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(uowFactory CheckoutUoWFactory,
	qrGenerator ports.QRCodeGenerator, notifier ports.Notifier,
	alerter ports.Alerter, trackingBaseURL string) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:      uowFactory,
		ledger:          services.NewInventoryLedger(),
		qrGenerator:     qrGenerator,
		notifier:        notifier,
		alerter:         alerter,
		trackingBaseURL: trackingBaseURL,
	}
}

// Handle processes the order placement command and returns the created order.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context,
	cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	products, err := h.lockProducts(ctx, uow.ProductRepository(), cmd.Lines())
	if err != nil {
		return nil, err
	}

	items, err := buildItems(cmd.Lines(), products)
	if err != nil {
		return nil, err
	}

	total := sumItemSubtotals(items)
	if !total.Equal(cmd.ClaimedTotal()) {
		return nil, errs.NewValueIsInvalidError("totalAmount")
	}

	lines := make([]services.ReservationLine, 0, len(cmd.Lines()))
	for _, line := range cmd.Lines() {
		lines = append(lines, services.ReservationLine{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		})
	}

	alerts, err := h.ledger.Reserve(products, lines)
	if err != nil {
		return nil, err
	}

	for _, p := range products {
		if err = uow.ProductRepository().Update(ctx, p); err != nil {
			return nil, err
		}
	}

	trackingID := uuid.NewString()
	qrPayload, err := h.qrGenerator.DataURL(h.trackingBaseURL + "/track/" + trackingID)
	if err != nil {
		return nil, err
	}

	paymentStatus := order.PaymentStatusUnpaid
	if cmd.PaymentMode() == order.PaymentModeOnline {
		paymentStatus = order.PaymentStatusPaid
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(), cmd.CustomerID(), items, total,
		trackingID, qrPayload, cmd.ShippingAddress(),
		cmd.PaymentMode(), paymentStatus, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		reservation, rErr := product.NewReservation(
			kernel.NewUUID(), aggregate.ID(), item.ProductID(), item.Quantity())
		if rErr != nil {
			return nil, rErr
		}
		if err = uow.ReservationRepository().Add(ctx, reservation); err != nil {
			return nil, err
		}
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	// Post-commit notifications are fire-and-forget: the order exists even
	// when a consumer is down.
	_ = h.notifier.Publish(ctx, ports.Event{
		Name: ports.EventOrderCreated,
		Room: aggregate.TrackingID(),
		At:   time.Now().UTC(),
		Data: map[string]any{
			"orderId":    aggregate.ID().String(),
			"trackingId": aggregate.TrackingID(),
			"status":     aggregate.Status().String(),
		},
	})

	for _, alert := range alerts {
		_ = h.alerter.Alert(ctx,
			"Low stock: "+alert.ProductName,
			fmt.Sprintf("%s is down to %d units", alert.ProductName, alert.Remaining))
	}

	return aggregate, nil
}

// lockProducts loads every referenced product with a row lock, in a stable
// order so concurrent checkouts cannot deadlock on each other.
func (h *CreateOrderCommandHandler) lockProducts(ctx context.Context,
	repo ports.ProductRepository, lines []OrderLine) ([]*product.Product, error) {
	ids := make([]string, 0, len(lines))
	seen := make(map[string]bool, len(lines))
	for _, line := range lines {
		id := line.ProductID.String()
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	products := make([]*product.Product, 0, len(ids))
	index := make(map[string]OrderLine, len(lines))
	for _, line := range lines {
		index[line.ProductID.String()] = line
	}

	for _, id := range ids {
		p, err := repo.GetForUpdate(ctx, index[id].ProductID)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, nil
}

func buildItems(lines []OrderLine, products []*product.Product) ([]order.Item, error) {
	prices := make(map[string]*product.Product, len(products))
	for _, p := range products {
		prices[p.ID().String()] = p
	}

	items := make([]order.Item, 0, len(lines))
	for _, line := range lines {
		p, ok := prices[line.ProductID.String()]
		if !ok {
			return nil, errs.NewObjectNotFoundError("productID", line.ProductID)
		}

		item, err := order.NewItem(line.ProductID, line.Quantity, p.Price())
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

func sumItemSubtotals(items []order.Item) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total
}

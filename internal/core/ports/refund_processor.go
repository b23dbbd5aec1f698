package ports

import (
	"context"

	"github.com/aryan26102004/Bill-Genius/internal/core/domain/model/kernel"
	"github.com/aryan26102004/Bill-Genius/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// RefundProcessor issues refunds through the payment provider. A failed
// refund aborts the surrounding cancellation: the order must not end up
// cancelled with the customer unpaid.
type RefundProcessor interface {
	Process(ctx context.Context, orderID kernel.UUID, amount decimal.Decimal) (order.Refund, error)
}

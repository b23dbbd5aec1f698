// Package refund provides a simulated payment provider. It stands in for a
// real gateway integration and occasionally fails so that the cancellation
// abort path stays exercised end to end.
package refund

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/aryan26102004/Bill-Genius/internal/core/domain/model/kernel"
	"github.com/aryan26102004/Bill-Genius/internal/core/domain/model/order"
	"github.com/aryan26102004/Bill-Genius/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Simulator implements the RefundProcessor port without talking to a real
// provider. failureRate in [0, 1) controls how often Process reports a
// provider failure; zero makes it deterministic for tests.
type Simulator struct {
	failureRate float64
	now         func() time.Time
}

func NewSimulator(failureRate float64) *Simulator {
	return &Simulator{
		failureRate: failureRate,
		now:         time.Now,
	}
}

// Process issues a simulated refund. A simulated provider outage is returned
// as an external failure so the caller aborts the cancellation instead of
// leaving the order cancelled and unpaid.
func (s *Simulator) Process(_ context.Context, orderID kernel.UUID, amount decimal.Decimal) (order.Refund, error) {
	if s.failureRate > 0 && rand.Float64() < s.failureRate {
		return order.Refund{}, errs.NewExternalFailureError("refund provider",
			fmt.Errorf("refund for order %s declined", orderID))
	}

	refundID := fmt.Sprintf("REF-%d", s.now().UnixNano())

	return order.NewRefund(refundID, amount, s.now())
}

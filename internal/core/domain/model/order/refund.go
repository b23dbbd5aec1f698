package order

import (
	"time"

	"github.com/aryan26102004/Bill-Genius/internal/pkg/errs"
	"github.com/aryan26102004/Bill-Genius/internal/pkg/guard"
	"github.com/shopspring/decimal"
)

// RefundStatus is the state reported by the payment processor for a refund.
type RefundStatus string

const (
	RefundStatusProcessing RefundStatus = "Processing"
	RefundStatusProcessed  RefundStatus = "Processed"
	RefundStatusFailed     RefundStatus = "Failed"
)

func (s RefundStatus) Validate() error {
	switch s {
	case RefundStatusProcessing, RefundStatusProcessed, RefundStatusFailed:
		return nil
	case "":
		return errs.NewValueIsRequiredError("refundStatus")
	default:
		return errs.NewValueIsInvalidError("refundStatus")
	}
}

var ErrRefundIsNotConstructed = errs.NewValueIsRequiredError(
	"refund must be created via NewRefund or RestoreRefund")

// Refund records the outcome of a refund issued for a cancelled order.
type Refund struct {
	refundID   string
	status     RefundStatus
	amount     decimal.Decimal
	refundedAt time.Time

	guard guard.ConstructorGuard
}

// NewRefund creates a processed refund as reported by the payment processor.
func NewRefund(refundID string, amount decimal.Decimal, refundedAt time.Time) (Refund, error) {
	if refundID == "" {
		return Refund{}, errs.NewValueIsRequiredError("refundID")
	}
	if amount.IsNegative() {
		return Refund{}, errs.NewValueIsInvalidError("amount")
	}
	if refundedAt.IsZero() {
		return Refund{}, errs.NewValueIsRequiredError("refundedAt")
	}

	return Refund{
		refundID:   refundID,
		status:     RefundStatusProcessed,
		amount:     amount,
		refundedAt: refundedAt,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// RestoreRefund recreates a refund from storage without re-running creation rules.
func RestoreRefund(refundID string, status RefundStatus, amount decimal.Decimal,
	refundedAt time.Time) (Refund, error) {
	if refundID == "" {
		return Refund{}, errs.NewValueIsRequiredError("refundID")
	}
	if err := status.Validate(); err != nil {
		return Refund{}, err
	}

	return Refund{
		refundID:   refundID,
		status:     status,
		amount:     amount,
		refundedAt: refundedAt,

		guard: guard.NewConstructorGuard(),
	}, nil
}

func (r Refund) RefundID() string        { return r.refundID }
func (r Refund) Status() RefundStatus    { return r.status }
func (r Refund) Amount() decimal.Decimal { return r.amount }
func (r Refund) RefundedAt() time.Time   { return r.refundedAt }

func (r Refund) Validate() error {
	return r.guard.Validate(ErrRefundIsNotConstructed)
}

package order

import (
	"github.com/aryan26102004/Bill-Genius/internal/pkg/errs"
)

// PaymentMode is how the customer pays for the order.
type PaymentMode string

const (
	PaymentModeOnline PaymentMode = "Online"
	PaymentModeCOD    PaymentMode = "COD"
)

func (m PaymentMode) Validate() error {
	switch m {
	case PaymentModeOnline, PaymentModeCOD:
		return nil
	case "":
		return errs.NewValueIsRequiredError("paymentMode")
	default:
		return errs.NewValueIsInvalidError("paymentMode")
	}
}

// PaymentStatus tracks whether the order has been paid or refunded.
type PaymentStatus string

const (
	PaymentStatusPaid     PaymentStatus = "Paid"
	PaymentStatusUnpaid   PaymentStatus = "Unpaid"
	PaymentStatusRefunded PaymentStatus = "Refunded"
)

func (s PaymentStatus) Validate() error {
	switch s {
	case PaymentStatusPaid, PaymentStatusUnpaid, PaymentStatusRefunded:
		return nil
	case "":
		return errs.NewValueIsRequiredError("paymentStatus")
	default:
		return errs.NewValueIsInvalidError("paymentStatus")
	}
}

package order_test

import (
	"testing"
	"time"

	"github.com/aryan26102004/Bill-Genius/internal/core/domain/model/kernel"
	"github.com/aryan26102004/Bill-Genius/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestItems(t *testing.T) []order.Item {
	t.Helper()

	first, err := order.NewItem(kernel.NewUUID(), 2, decimal.NewFromInt(150))
	require.NoError(t, err)
	second, err := order.NewItem(kernel.NewUUID(), 1, decimal.NewFromInt(99))
	require.NoError(t, err)

	return []order.Item{first, second}
}

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()

	items := newTestItems(t)
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), items, decimal.NewFromInt(399),
		"c2f4e6a8-0000-4000-8000-000000000001", "data:image/png;base64,AAAA",
		"221B Baker Street", order.PaymentModeOnline, order.PaymentStatusPaid,
		time.Now().UTC())
	require.NoError(t, err)

	return o
}

func TestNewItem(t *testing.T) {
	productID := kernel.NewUUID()
	price := decimal.NewFromFloat(12.50)

	t.Run("should create valid item", func(t *testing.T) {
		item, err := order.NewItem(productID, 3, price)

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.True(t, item.ProductID().IsEqual(productID))
		assert.Equal(t, 3, item.Quantity())
		assert.True(t, item.Subtotal().Equal(decimal.NewFromFloat(37.50)))
	})

	t.Run("should fail with zero quantity", func(t *testing.T) {
		_, err := order.NewItem(productID, 0, price)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "quantity")
	})

	t.Run("should fail with negative price", func(t *testing.T) {
		_, err := order.NewItem(productID, 1, decimal.NewFromInt(-1))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unitPrice")
	})

	t.Run("should fail with unconstructed product ID", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := order.NewItem(invalidID, 1, price)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "productID")
	})
}

func TestNewOrder(t *testing.T) {
	now := time.Now().UTC()

	t.Run("should create pending order with all valid parameters", func(t *testing.T) {
		customerID := kernel.NewUUID()
		items := newTestItems(t)

		o, err := order.NewOrder(
			kernel.NewUUID(), customerID, items, decimal.NewFromInt(399),
			"tracking-1", "qr-payload", "221B Baker Street",
			order.PaymentModeCOD, order.PaymentStatusUnpaid, now)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.StatusPending, o.Status())
		assert.True(t, o.CustomerID().IsEqual(customerID))
		assert.Equal(t, "tracking-1", o.TrackingID())
		assert.Nil(t, o.AssignedDriverID())
		assert.Nil(t, o.Refund())
	})

	t.Run("should fail without items", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), nil, decimal.Zero,
			"tracking-1", "qr", "addr",
			order.PaymentModeCOD, order.PaymentStatusUnpaid, now)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "items")
	})

	t.Run("should fail when total does not match line subtotals", func(t *testing.T) {
		items := newTestItems(t)

		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), items, decimal.NewFromInt(400),
			"tracking-1", "qr", "addr",
			order.PaymentModeCOD, order.PaymentStatusUnpaid, now)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "totalAmount")
	})

	t.Run("should fail without tracking identifier", func(t *testing.T) {
		items := newTestItems(t)

		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), items, decimal.NewFromInt(399),
			"", "qr", "addr",
			order.PaymentModeCOD, order.PaymentStatusUnpaid, now)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "trackingID")
	})

	t.Run("should fail with unknown payment mode", func(t *testing.T) {
		items := newTestItems(t)

		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), items, decimal.NewFromInt(399),
			"tracking-1", "qr", "addr",
			order.PaymentMode("Cheque"), order.PaymentStatusUnpaid, now)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "paymentMode")
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should fail validation for zero value order", func(t *testing.T) {
		var o order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})
}

func TestOrder_ForceStatus(t *testing.T) {
	t.Run("should move pending order to processing", func(t *testing.T) {
		o := newTestOrder(t)

		previous, err := o.ForceStatus(order.StatusProcessing)

		require.NoError(t, err)
		assert.Equal(t, order.StatusPending, previous)
		assert.Equal(t, order.StatusProcessing, o.Status())
	})

	t.Run("should reject terminal orders", func(t *testing.T) {
		o := newTestOrder(t)
		_, err := o.Cancel()
		require.NoError(t, err)

		_, err = o.ForceStatus(order.StatusProcessing)

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderFinalized, err)
		assert.Equal(t, order.StatusCancelled, o.Status())
	})

	t.Run("should reject invalid target status", func(t *testing.T) {
		o := newTestOrder(t)

		_, err := o.ForceStatus(order.StatusUnknown)

		require.Error(t, err)
		assert.Equal(t, order.StatusPending, o.Status())
	})
}

func TestOrder_AssignDriver(t *testing.T) {
	t.Run("should assign driver and ship the order", func(t *testing.T) {
		o := newTestOrder(t)
		driverID := kernel.NewUUID()

		previous, err := o.AssignDriver(driverID)

		require.NoError(t, err)
		assert.Equal(t, order.StatusPending, previous)
		assert.Equal(t, order.StatusShipped, o.Status())
		require.NotNil(t, o.AssignedDriverID())
		assert.True(t, o.AssignedDriverID().IsEqual(driverID))
		assert.True(t, o.IsAssignedTo(driverID))
	})

	t.Run("should reject second assignment", func(t *testing.T) {
		o := newTestOrder(t)
		first := kernel.NewUUID()
		_, err := o.AssignDriver(first)
		require.NoError(t, err)

		_, err = o.AssignDriver(kernel.NewUUID())

		require.Error(t, err)
		assert.Equal(t, order.ErrDriverAlreadyAssigned, err)
		assert.True(t, o.AssignedDriverID().IsEqual(first))
	})

	t.Run("should reject assignment on cancelled order", func(t *testing.T) {
		o := newTestOrder(t)
		_, err := o.Cancel()
		require.NoError(t, err)

		_, err = o.AssignDriver(kernel.NewUUID())

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderFinalized, err)
	})

	t.Run("should reject unconstructed driver ID", func(t *testing.T) {
		o := newTestOrder(t)
		var invalidID kernel.UUID

		_, err := o.AssignDriver(invalidID)

		require.Error(t, err)
		assert.Nil(t, o.AssignedDriverID())
		assert.Equal(t, order.StatusPending, o.Status())
	})
}

func TestOrder_ConfirmDelivery(t *testing.T) {
	shipped := func(t *testing.T) *order.Order {
		o := newTestOrder(t)
		_, err := o.AssignDriver(kernel.NewUUID())
		require.NoError(t, err)
		return o
	}

	t.Run("should deliver shipped order with matching code", func(t *testing.T) {
		o := shipped(t)

		previous, err := o.ConfirmDelivery("482913", "482913")

		require.NoError(t, err)
		assert.Equal(t, order.StatusShipped, previous)
		assert.Equal(t, order.StatusDelivered, o.Status())
		assert.Equal(t, "482913", o.DeliveryConfirmation())
	})

	t.Run("should reject mismatched code without changing state", func(t *testing.T) {
		o := shipped(t)

		_, err := o.ConfirmDelivery("000000", "482913")

		require.Error(t, err)
		assert.Equal(t, order.ErrInvalidOTP, err)
		assert.Equal(t, order.StatusShipped, o.Status())
		assert.Empty(t, o.DeliveryConfirmation())
	})

	t.Run("should reject repeat confirmation after delivery", func(t *testing.T) {
		o := shipped(t)
		_, err := o.ConfirmDelivery("482913", "482913")
		require.NoError(t, err)

		_, err = o.ConfirmDelivery("482913", "482913")

		require.Error(t, err)
		assert.Equal(t, order.ErrNotDeliverable, err)
		assert.Equal(t, order.StatusDelivered, o.Status())
	})

	t.Run("should reject empty code", func(t *testing.T) {
		o := shipped(t)

		_, err := o.ConfirmDelivery("", "482913")

		require.Error(t, err)
		assert.Equal(t, order.ErrConfirmationRequired, err)
	})

	t.Run("should reject confirmation before shipment", func(t *testing.T) {
		o := newTestOrder(t)

		_, err := o.ConfirmDelivery("482913", "482913")

		require.Error(t, err)
		assert.Equal(t, order.ErrNotDeliverable, err)
		assert.Equal(t, order.StatusPending, o.Status())
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("should cancel pending order", func(t *testing.T) {
		o := newTestOrder(t)

		previous, err := o.Cancel()

		require.NoError(t, err)
		assert.Equal(t, order.StatusPending, previous)
		assert.Equal(t, order.StatusCancelled, o.Status())
	})

	t.Run("should cancel processing order", func(t *testing.T) {
		o := newTestOrder(t)
		_, err := o.ForceStatus(order.StatusProcessing)
		require.NoError(t, err)

		previous, err := o.Cancel()

		require.NoError(t, err)
		assert.Equal(t, order.StatusProcessing, previous)
	})

	t.Run("should reject cancellation after shipment", func(t *testing.T) {
		o := newTestOrder(t)
		_, err := o.AssignDriver(kernel.NewUUID())
		require.NoError(t, err)

		_, err = o.Cancel()

		require.Error(t, err)
		assert.Equal(t, order.ErrNotCancellable, err)
		assert.Equal(t, order.StatusShipped, o.Status())
	})

	t.Run("should reject double cancellation", func(t *testing.T) {
		o := newTestOrder(t)
		_, err := o.Cancel()
		require.NoError(t, err)

		_, err = o.Cancel()

		require.Error(t, err)
		assert.Equal(t, order.ErrNotCancellable, err)
	})
}

func TestOrder_Refund(t *testing.T) {
	t.Run("should require refund only for paid online orders", func(t *testing.T) {
		paid := newTestOrder(t)
		assert.True(t, paid.RequiresRefund())

		items := newTestItems(t)
		cod, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), items, decimal.NewFromInt(399),
			"tracking-2", "qr", "addr",
			order.PaymentModeCOD, order.PaymentStatusUnpaid, time.Now().UTC())
		require.NoError(t, err)
		assert.False(t, cod.RequiresRefund())
	})

	t.Run("should apply processed refund and mark payment refunded", func(t *testing.T) {
		o := newTestOrder(t)
		refund, err := order.NewRefund("REF-1756600000", o.TotalAmount(), time.Now().UTC())
		require.NoError(t, err)

		err = o.ApplyRefund(refund)

		require.NoError(t, err)
		require.NotNil(t, o.Refund())
		assert.Equal(t, order.RefundStatusProcessed, o.Refund().Status())
		assert.Equal(t, order.PaymentStatusRefunded, o.PaymentStatus())
	})

	t.Run("should apply refund at most once", func(t *testing.T) {
		o := newTestOrder(t)
		refund, err := order.NewRefund("REF-1756600000", o.TotalAmount(), time.Now().UTC())
		require.NoError(t, err)
		require.NoError(t, o.ApplyRefund(refund))

		second, err := order.NewRefund("REF-1756600001", o.TotalAmount(), time.Now().UTC())
		require.NoError(t, err)
		err = o.ApplyRefund(second)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "already been refunded")
		assert.Equal(t, "REF-1756600000", o.Refund().RefundID())
	})

	t.Run("should reject unconstructed refund", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.ApplyRefund(order.Refund{})

		require.Error(t, err)
		assert.Nil(t, o.Refund())
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore shipped order with driver and confirmation", func(t *testing.T) {
		items := newTestItems(t)
		driverID := kernel.NewUUID()

		o, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), items, decimal.NewFromInt(399),
			order.StatusShipped, "tracking-3", "qr", "addr",
			&driverID, "", order.PaymentModeOnline, order.PaymentStatusPaid,
			nil, time.Now().UTC())

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.StatusShipped, o.Status())
		assert.True(t, o.IsAssignedTo(driverID))
	})

	t.Run("should restore refunded order", func(t *testing.T) {
		items := newTestItems(t)
		refund, err := order.RestoreRefund(
			"REF-1756600000", order.RefundStatusProcessed,
			decimal.NewFromInt(399), time.Now().UTC())
		require.NoError(t, err)

		o, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), items, decimal.NewFromInt(399),
			order.StatusCancelled, "tracking-4", "qr", "addr",
			nil, "", order.PaymentModeOnline, order.PaymentStatusRefunded,
			&refund, time.Now().UTC())

		require.NoError(t, err)
		require.NotNil(t, o.Refund())
		assert.Equal(t, "REF-1756600000", o.Refund().RefundID())
	})

	t.Run("should fail with unknown status", func(t *testing.T) {
		items := newTestItems(t)

		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), items, decimal.NewFromInt(399),
			order.StatusUnknown, "tracking-5", "qr", "addr",
			nil, "", order.PaymentModeOnline, order.PaymentStatusPaid,
			nil, time.Now().UTC())

		require.Error(t, err)
	})
}

package commands_test

import (
	"testing"
	"time"

	"github.com/aryan26102004/Bill-Genius/internal/core/application/usecases/commands"
	"github.com/aryan26102004/Bill-Genius/internal/core/domain/model/actor"
	"github.com/aryan26102004/Bill-Genius/internal/core/domain/model/delivery"
	"github.com/aryan26102004/Bill-Genius/internal/core/domain/model/kernel"
	"github.com/aryan26102004/Bill-Genius/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func shippedOrderForDriver(t *testing.T, driverID kernel.UUID,
	otp string) (*order.Order, *delivery.Delivery) {
	t.Helper()

	item, err := order.NewItem(kernel.NewUUID(), 1, decimal.NewFromInt(50))
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), []order.Item{item}, decimal.NewFromInt(50),
		"tracking-driver", "qr", "221B Baker Street",
		order.PaymentModeCOD, order.PaymentStatusUnpaid, time.Now().UTC())
	require.NoError(t, err)

	_, err = o.AssignDriver(driverID)
	require.NoError(t, err)

	d, err := delivery.NewDelivery(kernel.NewUUID(), o.ID(), driverID, otp)
	require.NoError(t, err)

	return o, d
}

func TestUpdateDeliveryStatusCommandHandler_Handle_OutForDelivery(t *testing.T) {
	ctx := t.Context()

	driverID := kernel.NewUUID()
	testOrder, record := shippedOrderForDriver(t, driverID, "482913")
	assignee, err := actor.NewActor(driverID, actor.RoleDriver)
	require.NoError(t, err)

	cmd, err := commands.NewUpdateDeliveryStatusCommand(
		assignee, testOrder.ID(), delivery.StatusOutForDelivery, "Sector 12 hub", "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("DeliveryRepository").Return(deliveryRepo)
	orderRepo.On("GetForUpdate", ctx, testOrder.ID()).Return(testOrder, nil).Once()
	deliveryRepo.On("GetByOrderID", ctx, testOrder.ID()).Return(record, nil).Once()
	deliveryRepo.On("Update", ctx, record).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil)

	notifier := new(MockNotifier)
	notifier.On("Publish", ctx, mock.Anything).Return(nil)

	handler := commands.NewUpdateDeliveryStatusCommandHandler(
		deliveryUoWFactory{uow: uow}, notifier)

	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, delivery.StatusOutForDelivery, record.Status())
	assert.Equal(t, "Sector 12 hub", record.Location())
	assert.Equal(t, order.StatusShipped, testOrder.Status())
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateDeliveryStatusCommandHandler_Handle_DeliveredWithCode(t *testing.T) {
	ctx := t.Context()

	driverID := kernel.NewUUID()
	testOrder, record := shippedOrderForDriver(t, driverID, "482913")
	assignee, err := actor.NewActor(driverID, actor.RoleDriver)
	require.NoError(t, err)

	cmd, err := commands.NewUpdateDeliveryStatusCommand(
		assignee, testOrder.ID(), delivery.StatusDelivered, "", "482913")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("DeliveryRepository").Return(deliveryRepo)
	orderRepo.On("GetForUpdate", ctx, testOrder.ID()).Return(testOrder, nil).Once()
	deliveryRepo.On("GetByOrderID", ctx, testOrder.ID()).Return(record, nil).Once()
	orderRepo.On("Update", ctx, testOrder).Return(nil).Once()
	deliveryRepo.On("Update", ctx, record).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil)

	notifier := new(MockNotifier)
	notifier.On("Publish", ctx, mock.Anything).Return(nil)

	handler := commands.NewUpdateDeliveryStatusCommandHandler(
		deliveryUoWFactory{uow: uow}, notifier)

	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.StatusDelivered, testOrder.Status())
	assert.Equal(t, delivery.StatusDelivered, record.Status())
}

func TestUpdateDeliveryStatusCommandHandler_Handle_DeliveredWithSignature(t *testing.T) {
	ctx := t.Context()

	driverID := kernel.NewUUID()
	testOrder, record := shippedOrderForDriver(t, driverID, "482913")
	assignee, err := actor.NewActor(driverID, actor.RoleDriver)
	require.NoError(t, err)

	// Any proof of handover closes the order; it does not have to match the
	// OTP issued at assignment.
	cmd, err := commands.NewUpdateDeliveryStatusCommand(
		assignee, testOrder.ID(), delivery.StatusDelivered, "", "signed: J. Doe")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("DeliveryRepository").Return(deliveryRepo)
	orderRepo.On("GetForUpdate", ctx, testOrder.ID()).Return(testOrder, nil).Once()
	deliveryRepo.On("GetByOrderID", ctx, testOrder.ID()).Return(record, nil).Once()
	orderRepo.On("Update", ctx, testOrder).Return(nil).Once()
	deliveryRepo.On("Update", ctx, record).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil)

	notifier := new(MockNotifier)
	notifier.On("Publish", ctx, mock.Anything).Return(nil)

	handler := commands.NewUpdateDeliveryStatusCommandHandler(
		deliveryUoWFactory{uow: uow}, notifier)

	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.StatusDelivered, testOrder.Status())
	assert.Equal(t, "signed: J. Doe", testOrder.DeliveryConfirmation())
}

func TestUpdateDeliveryStatusCommandHandler_Handle_DeliveredWithoutConfirmation(t *testing.T) {
	ctx := t.Context()

	driverID := kernel.NewUUID()
	testOrder, record := shippedOrderForDriver(t, driverID, "482913")
	assignee, err := actor.NewActor(driverID, actor.RoleDriver)
	require.NoError(t, err)

	cmd, err := commands.NewUpdateDeliveryStatusCommand(
		assignee, testOrder.ID(), delivery.StatusDelivered, "", "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("DeliveryRepository").Return(deliveryRepo)
	orderRepo.On("GetForUpdate", ctx, testOrder.ID()).Return(testOrder, nil).Once()
	deliveryRepo.On("GetByOrderID", ctx, testOrder.ID()).Return(record, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewUpdateDeliveryStatusCommandHandler(
		deliveryUoWFactory{uow: uow}, new(MockNotifier))

	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrConfirmationRequired)
	assert.Equal(t, order.StatusShipped, testOrder.Status())
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestUpdateDeliveryStatusCommandHandler_Handle_NotAssignedDriver(t *testing.T) {
	ctx := t.Context()

	testOrder, _ := shippedOrderForDriver(t, kernel.NewUUID(), "482913")
	otherDriver, err := actor.NewActor(kernel.NewUUID(), actor.RoleDriver)
	require.NoError(t, err)

	cmd, err := commands.NewUpdateDeliveryStatusCommand(
		otherDriver, testOrder.ID(), delivery.StatusOutForDelivery, "", "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	orderRepo.On("GetForUpdate", ctx, testOrder.ID()).Return(testOrder, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewUpdateDeliveryStatusCommandHandler(
		deliveryUoWFactory{uow: uow}, new(MockNotifier))

	err = handler.Handle(ctx, cmd)

	require.Error(t, err)

	var forbidden *actor.ForbiddenError
	require.ErrorAs(t, err, &forbidden)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestUpdateDeliveryStatusCommand_RejectsAssignedTarget(t *testing.T) {
	assignee, err := actor.NewActor(kernel.NewUUID(), actor.RoleDriver)
	require.NoError(t, err)

	_, err = commands.NewUpdateDeliveryStatusCommand(
		assignee, kernel.NewUUID(), delivery.StatusAssigned, "", "")

	require.Error(t, err)
}

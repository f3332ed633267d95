package commands_test

import (
	"testing"

	"bookmarket/internal/core/application/usecases/commands"
	"bookmarket/internal/core/domain/model/kernel"
	"bookmarket/internal/core/domain/model/order"
	"bookmarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewShipOrderCommand_RequiresShipmentDetails(t *testing.T) {
	seller := userActor(t, testSellerID)
	version := kernel.RowVersionFromCounter(2)

	_, err := commands.NewShipOrderCommand(1, seller, "", "TRACK-1", version)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewShipOrderCommand(1, seller, "PostNL", "", version)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestShipOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	seller := userActor(t, testSellerID)
	ready := orderAt(t, order.PendingShipment, 2)

	cmd, err := commands.NewShipOrderCommand(ready.ID(), seller, "PostNL", "TRACK-1", kernel.RowVersionFromCounter(2))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, ready.ID()).Return(ready, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)
	notifier.On("NotifyOrderChanged", ctx, mock.AnythingOfType("ports.OrderEvent")).Return(nil).Once()

	handler := commands.NewShipOrderCommandHandler(factory, notifier)
	shipped, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Shipped, shipped.Status())
	require.NotNil(t, shipped.ShippingProvider())
	assert.Equal(t, "PostNL", *shipped.ShippingProvider())
	require.NotNil(t, shipped.TrackingNumber())
	assert.Equal(t, "TRACK-1", *shipped.TrackingNumber())

	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestShipOrderCommandHandler_Handle_InvalidStateBeforePayment(t *testing.T) {
	ctx := t.Context()
	seller := userActor(t, testSellerID)
	awaiting := orderAt(t, order.AwaitingOfflinePayment, 1)

	cmd, err := commands.NewShipOrderCommand(awaiting.ID(), seller, "PostNL", "TRACK-1", kernel.RowVersionFromCounter(1))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, awaiting.ID()).Return(awaiting, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewShipOrderCommandHandler(factory, new(MockNotifier))
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidState)
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

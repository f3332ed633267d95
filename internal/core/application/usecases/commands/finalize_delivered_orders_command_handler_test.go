package commands_test

import (
	"testing"
	"time"

	"bookmarket/internal/core/application/usecases/commands"
	"bookmarket/internal/core/domain/model/order"
	"bookmarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewFinalizeDeliveredOrdersCommand_RequiresCutoff(t *testing.T) {
	_, err := commands.NewFinalizeDeliveredOrdersCommand(time.Time{})

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestFinalizeDeliveredOrdersCommandHandler_Handle_CompletesDeliveredOrders(t *testing.T) {
	ctx := t.Context()
	cutoff := time.Now().UTC().Add(-7 * 24 * time.Hour)

	cmd, err := commands.NewFinalizeDeliveredOrdersCommand(cutoff)
	require.NoError(t, err)

	first := orderAt(t, order.Delivered, 6)
	second := orderAt(t, order.Delivered, 4)
	eligible := []*order.Order{first, second}

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetAllDeliveredBefore", ctx, cutoff).Return(eligible, nil).Once(),
		orderRepo.On("Update", ctx, first).Return(nil).Once(),
		orderRepo.On("Update", ctx, second).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewFinalizeDeliveredOrdersCommandHandler(factory)
	finalized, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 2, finalized)
	assert.Equal(t, order.Completed, first.Status())
	assert.Equal(t, order.Completed, second.Status())

	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestFinalizeDeliveredOrdersCommandHandler_Handle_SkipsConflictedOrders(t *testing.T) {
	ctx := t.Context()
	cutoff := time.Now().UTC().Add(-7 * 24 * time.Hour)

	cmd, err := commands.NewFinalizeDeliveredOrdersCommand(cutoff)
	require.NoError(t, err)

	first := orderAt(t, order.Delivered, 6)
	second := orderAt(t, order.Delivered, 4)
	eligible := []*order.Order{first, second}

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetAllDeliveredBefore", ctx, cutoff).Return(eligible, nil).Once(),
		orderRepo.On("Update", ctx, first).
			Return(errs.NewConcurrencyConflictError("order", "Bg==", "Bw==")).Once(),
		orderRepo.On("Update", ctx, second).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewFinalizeDeliveredOrdersCommandHandler(factory)
	finalized, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 1, finalized)
}

func TestFinalizeDeliveredOrdersCommandHandler_Handle_NothingToFinalize(t *testing.T) {
	ctx := t.Context()
	cutoff := time.Now().UTC()

	cmd, err := commands.NewFinalizeDeliveredOrdersCommand(cutoff)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetAllDeliveredBefore", ctx, cutoff).Return([]*order.Order{}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewFinalizeDeliveredOrdersCommandHandler(factory)
	finalized, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 0, finalized)
}

package commands_test

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
)

func completedOrder(t *testing.T, customerID kernel.UUID) *order.Order {
	t.Helper()
	item, err := order.NewLineItem(kernel.NewUUID(), kernel.NewUUID(), 1, 100)
	require.NoError(t, err)
	anOrder, err := order.NewOrder(kernel.NewUUID(), customerID, kernel.NewUUID(), kernel.NewUUID(),
		[]*order.LineItem{item})
	require.NoError(t, err)
	for _, status := range []order.Status{order.Preparing, order.Delivering, order.Completed} {
		require.NoError(t, anOrder.ChangeStatus(status))
	}
	return anOrder
}

func TestRateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	customer := customerActor(t)
	anOrder := completedOrder(t, customer.ID())

	cmd, err := commands.NewRateOrderCommand(customer, anOrder.ID(), 5)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("GetForUpdate", mock.Anything, anOrder.ID()).Return(anOrder, nil).Once()
	repo.On("Update", mock.Anything, anOrder).Return(nil).Once()

	uow, factory := orderUoWWithRepo(repo)
	uow.On("Commit", mock.Anything).Return(nil).Once()

	h := commands.NewRateOrderCommandHandler(factory)
	rated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, rated.Rating())
	require.Equal(t, 5, *rated.Rating())

	uow.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestRateOrderCommandHandler_Handle_NotCompleted(t *testing.T) {
	ctx := t.Context()
	customer := customerActor(t)

	item, err := order.NewLineItem(kernel.NewUUID(), kernel.NewUUID(), 1, 100)
	require.NoError(t, err)
	anOrder, err := order.NewOrder(kernel.NewUUID(), customer.ID(), kernel.NewUUID(), kernel.NewUUID(),
		[]*order.LineItem{item})
	require.NoError(t, err)

	cmd, err := commands.NewRateOrderCommand(customer, anOrder.ID(), 4)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("GetForUpdate", mock.Anything, anOrder.ID()).Return(anOrder, nil).Once()

	uow, factory := orderUoWWithRepo(repo)

	h := commands.NewRateOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrOrderNotCompleted)
	uow.AssertExpectations(t)
}

func TestRateOrderCommandHandler_Handle_RatingOutOfRange(t *testing.T) {
	ctx := t.Context()
	customer := customerActor(t)
	anOrder := completedOrder(t, customer.ID())

	cmd, err := commands.NewRateOrderCommand(customer, anOrder.ID(), 9)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("GetForUpdate", mock.Anything, anOrder.ID()).Return(anOrder, nil).Once()

	uow, factory := orderUoWWithRepo(repo)

	h := commands.NewRateOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.Nil(t, anOrder.Rating())
	uow.AssertExpectations(t)
}

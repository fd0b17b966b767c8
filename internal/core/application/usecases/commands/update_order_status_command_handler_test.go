package commands_test

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/catalog"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/services"
)

func TestUpdateOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	owner := ownerActor(t)
	restaurant, err := catalog.NewRestaurant(kernel.NewUUID(), owner.ID())
	require.NoError(t, err)

	item, err := order.NewLineItem(kernel.NewUUID(), kernel.NewUUID(), 1, 100)
	require.NoError(t, err)
	anOrder, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), restaurant.ID(), kernel.NewUUID(),
		[]*order.LineItem{item})
	require.NoError(t, err)

	cmd, err := commands.NewUpdateOrderStatusCommand(owner, anOrder.ID(), order.Preparing)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("GetForUpdate", mock.Anything, anOrder.ID()).Return(anOrder, nil).Once()
	repo.On("Update", mock.Anything, anOrder).Return(nil).Once()

	uow, factory := orderUoWWithRepo(repo)
	uow.On("Commit", mock.Anything).Return(nil).Once()

	reader := new(MockCatalogReader)
	reader.On("GetRestaurant", mock.Anything, restaurant.ID()).Return(restaurant, nil).Once()

	publisher := new(MockEventPublisher)
	publisher.On("Publish", mock.Anything, mock.AnythingOfType("ports.OrderEvent")).Return(nil).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory, reader, publisher)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, order.Preparing, updated.Status())

	uow.AssertExpectations(t)
	repo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_IllegalTransition(t *testing.T) {
	ctx := t.Context()
	owner := ownerActor(t)
	restaurant, err := catalog.NewRestaurant(kernel.NewUUID(), owner.ID())
	require.NoError(t, err)
	anOrder := preparingOrder(t, restaurant.ID())

	// Preparing cannot jump straight to Completed.
	cmd, err := commands.NewUpdateOrderStatusCommand(owner, anOrder.ID(), order.Completed)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("GetForUpdate", mock.Anything, anOrder.ID()).Return(anOrder, nil).Once()

	uow, factory := orderUoWWithRepo(repo)

	reader := new(MockCatalogReader)
	reader.On("GetRestaurant", mock.Anything, restaurant.ID()).Return(restaurant, nil).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory, reader, new(MockEventPublisher))
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrInvalidStatusTransition)
	require.Equal(t, order.Preparing, anOrder.Status())
	uow.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_NotOwner(t *testing.T) {
	ctx := t.Context()
	restaurant, err := catalog.NewRestaurant(kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)
	anOrder := preparingOrder(t, restaurant.ID())

	cmd, err := commands.NewUpdateOrderStatusCommand(ownerActor(t), anOrder.ID(), order.Delivering)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("GetForUpdate", mock.Anything, anOrder.ID()).Return(anOrder, nil).Once()

	uow, factory := orderUoWWithRepo(repo)

	reader := new(MockCatalogReader)
	reader.On("GetRestaurant", mock.Anything, restaurant.ID()).Return(restaurant, nil).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory, reader, new(MockEventPublisher))
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, services.ErrPermissionDenied)
	uow.AssertExpectations(t)
}

func TestNewUpdateOrderStatusCommand_InvalidStatus(t *testing.T) {
	_, err := commands.NewUpdateOrderStatusCommand(ownerActor(t), kernel.NewUUID(), order.Unknown)
	require.Error(t, err)
}

package commands_test

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/payment"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/pkg/errs"
)

func paidOrder(t *testing.T, customerID kernel.UUID, price int) *order.Order {
	t.Helper()
	item, err := order.NewLineItem(kernel.NewUUID(), kernel.NewUUID(), 1, price)
	require.NoError(t, err)
	anOrder, err := order.NewOrder(kernel.NewUUID(), customerID, kernel.NewUUID(), kernel.NewUUID(),
		[]*order.LineItem{item})
	require.NoError(t, err)
	return anOrder
}

func paymentUoW(orderRepo *MockOrderRepository, paymentRepo *MockPaymentRepository) (*MockUoW, *MockUoWFactory) {
	uow := new(MockUoW)
	uow.On("Begin", mock.Anything).Return(nil).Once()
	uow.On("Rollback", mock.Anything).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("PaymentRepository").Return(paymentRepo).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()
	return uow, factory
}

func TestProcessPaymentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	actor := customerActor(t)
	anOrder := paidOrder(t, actor.ID(), 400)

	cmd, err := commands.NewProcessPaymentCommand(actor, kernel.NewUUID(), anOrder.ID(), 400,
		payment.MethodCreditCard, "TXN-CLIENT-42")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("GetForUpdate", mock.Anything, anOrder.ID()).Return(anOrder, nil).Once()

	var persisted *payment.Payment
	paymentRepo := new(MockPaymentRepository)
	paymentRepo.On("GetByOrderID", mock.Anything, anOrder.ID()).
		Return(nil, errs.NewObjectNotFoundError("orderID", anOrder.ID())).Once()
	paymentRepo.On("Add", mock.Anything, mock.AnythingOfType("*payment.Payment")).
		Run(func(args mock.Arguments) {
			persisted = args.Get(1).(*payment.Payment)
		}).Return(nil).Once()

	uow, factory := paymentUoW(orderRepo, paymentRepo)
	uow.On("Commit", mock.Anything).Return(nil).Once()

	gateway := new(MockPaymentGateway)
	gateway.On("Authorize", mock.Anything, 400, "TXN-CLIENT-42").Return(true, nil).Once()

	h := commands.NewProcessPaymentCommandHandler(factory, gateway)
	settled, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, settled)
	require.Equal(t, payment.StatusSuccess, settled.Status())
	require.Equal(t, 400, settled.Amount())

	// The caller's transaction reference is stored as-is so the payment
	// stays retrievable by it.
	require.NotNil(t, persisted)
	require.Equal(t, "TXN-CLIENT-42", persisted.TransactionID())
	require.Equal(t, 400, persisted.Amount())

	uow.AssertExpectations(t)
	gateway.AssertExpectations(t)
	paymentRepo.AssertExpectations(t)
}

func TestProcessPaymentCommandHandler_Handle_Declined(t *testing.T) {
	ctx := t.Context()
	actor := customerActor(t)
	anOrder := paidOrder(t, actor.ID(), 401)

	cmd, err := commands.NewProcessPaymentCommand(actor, kernel.NewUUID(), anOrder.ID(), 401,
		payment.MethodCreditCard, "TXN-CLIENT-43")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("GetForUpdate", mock.Anything, anOrder.ID()).Return(anOrder, nil).Once()

	paymentRepo := new(MockPaymentRepository)
	paymentRepo.On("GetByOrderID", mock.Anything, anOrder.ID()).
		Return(nil, errs.NewObjectNotFoundError("orderID", anOrder.ID())).Once()
	paymentRepo.On("Add", mock.Anything, mock.AnythingOfType("*payment.Payment")).Return(nil).Once()

	uow, factory := paymentUoW(orderRepo, paymentRepo)
	// The failed payment is still committed before the error surfaces.
	uow.On("Commit", mock.Anything).Return(nil).Once()

	gateway := new(MockPaymentGateway)
	gateway.On("Authorize", mock.Anything, 401, "TXN-CLIENT-43").Return(false, nil).Once()

	h := commands.NewProcessPaymentCommandHandler(factory, gateway)
	settled, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, payment.ErrPaymentDeclined)
	require.NotNil(t, settled)
	require.Equal(t, payment.StatusFailed, settled.Status())
	require.Equal(t, "TXN-CLIENT-43", settled.TransactionID())

	uow.AssertExpectations(t)
	paymentRepo.AssertExpectations(t)
}

func TestProcessPaymentCommandHandler_Handle_DuplicatePayment(t *testing.T) {
	ctx := t.Context()
	actor := customerActor(t)
	anOrder := paidOrder(t, actor.ID(), 400)

	cmd, err := commands.NewProcessPaymentCommand(actor, kernel.NewUUID(), anOrder.ID(), 400,
		payment.MethodCash, "TXN-2")
	require.NoError(t, err)

	existing, err := payment.NewPayment(kernel.NewUUID(), anOrder.ID(), 400, payment.MethodCash, "TXN-1")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("GetForUpdate", mock.Anything, anOrder.ID()).Return(anOrder, nil).Once()

	paymentRepo := new(MockPaymentRepository)
	paymentRepo.On("GetByOrderID", mock.Anything, anOrder.ID()).Return(existing, nil).Once()

	uow, factory := paymentUoW(orderRepo, paymentRepo)

	gateway := new(MockPaymentGateway)

	h := commands.NewProcessPaymentCommandHandler(factory, gateway)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, payment.ErrPaymentAlreadyExists)

	gateway.AssertNotCalled(t, "Authorize")
	uow.AssertExpectations(t)
}

func TestProcessPaymentCommandHandler_Handle_PermissionDenied(t *testing.T) {
	ctx := t.Context()
	actor := customerActor(t)
	anOrder := paidOrder(t, kernel.NewUUID(), 400)

	cmd, err := commands.NewProcessPaymentCommand(actor, kernel.NewUUID(), anOrder.ID(), 400,
		payment.MethodCreditCard, "TXN-3")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("GetForUpdate", mock.Anything, anOrder.ID()).Return(anOrder, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", mock.Anything).Return(nil).Once()
	uow.On("Rollback", mock.Anything).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewProcessPaymentCommandHandler(factory, new(MockPaymentGateway))
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, services.ErrPermissionDenied)
	uow.AssertExpectations(t)
}

func TestProcessPaymentCommand_NotConstructed(t *testing.T) {
	var cmd commands.ProcessPaymentCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrProcessPaymentCommandIsNotConstructed)

	_, err := commands.NewProcessPaymentCommand(account.Actor{}, kernel.NewUUID(), kernel.NewUUID(), 100,
		payment.MethodCash, "TXN-4")
	require.Error(t, err)
}

func TestProcessPaymentCommand_RejectsBadAmountAndTransactionID(t *testing.T) {
	actor := customerActor(t)

	_, err := commands.NewProcessPaymentCommand(actor, kernel.NewUUID(), kernel.NewUUID(), 0,
		payment.MethodCash, "TXN-5")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewProcessPaymentCommand(actor, kernel.NewUUID(), kernel.NewUUID(), 100,
		payment.MethodCash, "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

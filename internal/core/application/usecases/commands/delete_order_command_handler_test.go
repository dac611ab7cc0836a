package commands_test

import (
	"testing"

	"library/internal/core/application/usecases/commands"
	"library/internal/core/domain/model/kernel"
	"library/internal/core/domain/model/order"
	"library/internal/core/domain/model/user"
	"library/internal/core/domain/services"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDeleteOrderCommand(t *testing.T, orderID, actorID kernel.UUID, role user.Role) commands.DeleteOrderCommand {
	t.Helper()
	cmd, err := commands.NewDeleteOrderCommand(orderID, actorID, role)
	require.NoError(t, err)
	return cmd
}

func TestDeleteOrderCommandHandler_Handle_OwnerDeletesPending(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	theOrder := testOrderInStatus(t, ownerID, kernel.NewUUID(), order.Pending)
	cmd := newDeleteOrderCommand(t, theOrder.ID(), ownerID, user.Student)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, theOrder.ID()).Return(theOrder, nil).Once(),
		orderRepo.On("Delete", ctx, theOrder.ID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteOrderCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeleteOrderCommandHandler_Handle_LibrarianDeletesTerminal(t *testing.T) {
	ctx := t.Context()
	theOrder := testOrderInStatus(t, kernel.NewUUID(), kernel.NewUUID(), order.Rejected)
	cmd := newDeleteOrderCommand(t, theOrder.ID(), kernel.NewUUID(), user.Librarian)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, theOrder.ID()).Return(theOrder, nil).Once(),
		orderRepo.On("Delete", ctx, theOrder.ID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteOrderCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
}

func TestDeleteOrderCommandHandler_Handle_LibrarianCannotDeleteFulfilled(t *testing.T) {
	ctx := t.Context()
	theOrder := testOrderInStatus(t, kernel.NewUUID(), kernel.NewUUID(), order.Fulfilled)
	cmd := newDeleteOrderCommand(t, theOrder.ID(), kernel.NewUUID(), user.Librarian)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, theOrder.ID()).Return(theOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteOrderCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, services.ErrForbidden)
	orderRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteOrderCommandHandler_Handle_StrangerForbidden(t *testing.T) {
	ctx := t.Context()
	theOrder := testOrderInStatus(t, kernel.NewUUID(), kernel.NewUUID(), order.Pending)
	cmd := newDeleteOrderCommand(t, theOrder.ID(), kernel.NewUUID(), user.Student)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, theOrder.ID()).Return(theOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteOrderCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, services.ErrForbidden)
}

package commands_test

import (
	"errors"
	"testing"

	"library/internal/core/application/usecases/commands"
	"library/internal/core/domain/model/book"
	"library/internal/core/domain/model/kernel"
	"library/internal/core/domain/model/order"
	"library/internal/core/domain/model/user"
	"library/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUpdateOrderCommand(
	t *testing.T,
	orderID, actorID kernel.UUID,
	role user.Role,
	target order.Status,
) commands.UpdateOrderCommand {
	t.Helper()
	cmd, err := commands.NewUpdateOrderCommand(orderID, actorID, role, target, nil, nil)
	require.NoError(t, err)
	return cmd
}

func TestUpdateOrderCommandHandler_Handle_FulfillReservesCopy(t *testing.T) {
	ctx := t.Context()
	librarianID := kernel.NewUUID()
	theBook := testBook(t, 2)
	theOrder := testOrderInStatus(t, kernel.NewUUID(), theBook.ID(), order.Pending)
	cmd := newUpdateOrderCommand(t, theOrder.ID(), librarianID, user.Librarian, order.Fulfilled)

	orderRepo := new(MockOrderRepository)
	bookRepo := new(MockBookRepository)
	uow := new(MockUoW)
	publisher := new(MockOrderEventPublisher)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, theOrder.ID()).Return(theOrder, nil).Once(),
		uow.On("BookRepository").Return(bookRepo).Once(),
		bookRepo.On("GetForUpdate", ctx, theBook.ID()).Return(theBook, nil).Once(),
		bookRepo.On("Update", ctx, theBook).Return(nil).Once(),
		orderRepo.On("Update", ctx, theOrder).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		publisher.On("PublishOrderStatusChanged", ctx, theOrder).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateOrderCommandHandler(factory, publisher)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Fulfilled, theOrder.Status())
	assert.Equal(t, 1, theBook.Quantity())
	assert.Equal(t, 1, theBook.OrdersQuantity())
	orderRepo.AssertExpectations(t)
	bookRepo.AssertExpectations(t)
	publisher.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_CancelFulfilledReleasesCopy(t *testing.T) {
	ctx := t.Context()
	theBook := testBook(t, 0)
	theOrder := testOrderInStatus(t, kernel.NewUUID(), theBook.ID(), order.Fulfilled)
	cmd := newUpdateOrderCommand(t, theOrder.ID(), kernel.NewUUID(), user.Librarian, order.Cancelled)

	orderRepo := new(MockOrderRepository)
	bookRepo := new(MockBookRepository)
	uow := new(MockUoW)
	publisher := new(MockOrderEventPublisher)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, theOrder.ID()).Return(theOrder, nil).Once(),
		uow.On("BookRepository").Return(bookRepo).Once(),
		bookRepo.On("GetForUpdate", ctx, theBook.ID()).Return(theBook, nil).Once(),
		bookRepo.On("Update", ctx, theBook).Return(nil).Once(),
		orderRepo.On("Update", ctx, theOrder).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		publisher.On("PublishOrderStatusChanged", ctx, theOrder).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateOrderCommandHandler(factory, publisher)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, theOrder.Status())
	assert.Equal(t, 1, theBook.Quantity())
}

func TestUpdateOrderCommandHandler_Handle_OwnerEditDoesNotTouchInventory(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	theOrder := testOrderInStatus(t, ownerID, kernel.NewUUID(), order.Pending)

	newComment := "please hold it at the front desk"
	newDueDate := testDueDate(t)
	cmd, err := commands.NewUpdateOrderCommand(
		theOrder.ID(), ownerID, user.Student, order.Pending, &newComment, &newDueDate,
	)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	publisher := new(MockOrderEventPublisher)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, theOrder.ID()).Return(theOrder, nil).Once(),
		orderRepo.On("Update", ctx, theOrder).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		publisher.On("PublishOrderStatusChanged", ctx, theOrder).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateOrderCommandHandler(factory, publisher)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Pending, theOrder.Status())
	assert.Equal(t, newComment, theOrder.Comment())
	assert.True(t, newDueDate.IsEqual(theOrder.DueTime()))
	uow.AssertNotCalled(t, "BookRepository")
}

func TestUpdateOrderCommandHandler_Handle_ForeignOrderForbidden(t *testing.T) {
	ctx := t.Context()
	theOrder := testOrderInStatus(t, kernel.NewUUID(), kernel.NewUUID(), order.Pending)
	strangerID := kernel.NewUUID()
	cmd := newUpdateOrderCommand(t, theOrder.ID(), strangerID, user.Student, order.Cancelled)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	publisher := new(MockOrderEventPublisher)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, theOrder.ID()).Return(theOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateOrderCommandHandler(factory, publisher)
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, services.ErrForbidden)
	assert.Equal(t, order.Pending, theOrder.Status())
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	publisher.AssertNotCalled(t, "PublishOrderStatusChanged", mock.Anything, mock.Anything)
}

func TestUpdateOrderCommandHandler_Handle_TerminalOrderImmutable(t *testing.T) {
	ctx := t.Context()
	theOrder := testOrderInStatus(t, kernel.NewUUID(), kernel.NewUUID(), order.Cancelled)
	cmd := newUpdateOrderCommand(t, theOrder.ID(), kernel.NewUUID(), user.Librarian, order.Pending)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	publisher := new(MockOrderEventPublisher)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, theOrder.ID()).Return(theOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateOrderCommandHandler(factory, publisher)
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrImmutable)
	assert.Equal(t, order.Cancelled, theOrder.Status())
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestUpdateOrderCommandHandler_Handle_FulfillLastCopyGone(t *testing.T) {
	ctx := t.Context()
	theBook := testBook(t, 0)
	theOrder := testOrderInStatus(t, kernel.NewUUID(), theBook.ID(), order.Pending)
	cmd := newUpdateOrderCommand(t, theOrder.ID(), kernel.NewUUID(), user.Librarian, order.Fulfilled)

	orderRepo := new(MockOrderRepository)
	bookRepo := new(MockBookRepository)
	uow := new(MockUoW)
	publisher := new(MockOrderEventPublisher)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, theOrder.ID()).Return(theOrder, nil).Once(),
		uow.On("BookRepository").Return(bookRepo).Once(),
		bookRepo.On("GetForUpdate", ctx, theBook.ID()).Return(theBook, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateOrderCommandHandler(factory, publisher)
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, book.ErrOutOfStock)
	assert.Equal(t, 0, theBook.Quantity())
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	publisher.AssertNotCalled(t, "PublishOrderStatusChanged", mock.Anything, mock.Anything)
}

func TestUpdateOrderCommandHandler_Handle_PublishFailureDoesNotFail(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	theOrder := testOrderInStatus(t, ownerID, kernel.NewUUID(), order.Pending)
	cmd := newUpdateOrderCommand(t, theOrder.ID(), ownerID, user.Student, order.Cancelled)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	publisher := new(MockOrderEventPublisher)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, theOrder.ID()).Return(theOrder, nil).Once(),
		orderRepo.On("Update", ctx, theOrder).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		publisher.On("PublishOrderStatusChanged", ctx, theOrder).
			Return(errors.New("broker down")).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateOrderCommandHandler(factory, publisher)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, theOrder.Status())
}

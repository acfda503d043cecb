package commands_test

import (
	"testing"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRemoveItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	target := newOpenOrder(t)
	item := newOrderItem(t, target.ID(), "5.00")
	cmd, err := commands.NewRemoveItemCommand(item.ID())
	require.NoError(t, err)

	itemRepo := new(MockItemRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ItemRepository").Return(itemRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		itemRepo.On("Get", mock.Anything, item.ID()).Return(item, nil).Once(),
		orderRepo.On("Get", mock.Anything, target.ID()).Return(target, nil).Once(),
		itemRepo.On("Delete", mock.Anything, item.ID()).Return(nil).Once(),
		orderRepo.On("Update", mock.Anything, target).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderItemsUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRemoveItemCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	itemRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestRemoveItemCommandHandler_Handle_OrderNotOpen(t *testing.T) {
	ctx := t.Context()
	target := restoreOrderInStatus(t, order.Paid, mustMoney(t, "5.00"))
	item := newOrderItem(t, target.ID(), "5.00")
	cmd, err := commands.NewRemoveItemCommand(item.ID())
	require.NoError(t, err)

	itemRepo := new(MockItemRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ItemRepository").Return(itemRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		itemRepo.On("Get", mock.Anything, item.ID()).Return(item, nil).Once(),
		orderRepo.On("Get", mock.Anything, target.ID()).Return(target, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderItemsUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRemoveItemCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrOperationNotSupported)
	itemRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

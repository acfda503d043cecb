package commands_test

import (
	"errors"
	"log/slog"
	"testing"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestCheckoutOrderCommandHandler_Handle_SumsSnapshots(t *testing.T) {
	ctx := t.Context()
	target := newOpenOrder(t)
	items := []*order.Item{
		newOrderItem(t, target.ID(), "5.00"),
		newOrderItem(t, target.ID(), "6.00"),
		newOrderItem(t, target.ID(), "7.00"),
	}
	cmd, err := commands.NewCheckoutOrderCommand(target.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	itemRepo := new(MockItemRepository)
	uow := new(MockUoW)
	notifier := new(MockQueueNotifier)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, target.ID()).Return(target, nil).Once(),
		uow.On("ItemRepository").Return(itemRepo).Once(),
		itemRepo.On("GetAllByOrder", mock.Anything, target.ID()).Return(items, nil).Once(),
		orderRepo.On("Update", mock.Anything, target).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("Enqueue", mock.Anything, target.ID(), target.CustomerID()).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderItemsUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCheckoutOrderCommandHandler(factory, notifier, discardLogger())
	checked, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, order.Received, checked.Status())
	require.Equal(t, "18.00", checked.Total().String())
	orderRepo.AssertExpectations(t)
	itemRepo.AssertExpectations(t)
	notifier.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCheckoutOrderCommandHandler_Handle_EmptyOrder(t *testing.T) {
	ctx := t.Context()
	target := newOpenOrder(t)
	cmd, err := commands.NewCheckoutOrderCommand(target.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	itemRepo := new(MockItemRepository)
	uow := new(MockUoW)
	notifier := new(MockQueueNotifier)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, target.ID()).Return(target, nil).Once(),
		uow.On("ItemRepository").Return(itemRepo).Once(),
		itemRepo.On("GetAllByOrder", mock.Anything, target.ID()).Return([]*order.Item{}, nil).Once(),
		orderRepo.On("Update", mock.Anything, target).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("Enqueue", mock.Anything, target.ID(), target.CustomerID()).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderItemsUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCheckoutOrderCommandHandler(factory, notifier, discardLogger())
	checked, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, order.Received, checked.Status())
	require.Equal(t, "0.00", checked.Total().String())
}

func TestCheckoutOrderCommandHandler_Handle_NotifierFailureKeepsCheckout(t *testing.T) {
	ctx := t.Context()
	target := newOpenOrder(t)
	cmd, err := commands.NewCheckoutOrderCommand(target.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	itemRepo := new(MockItemRepository)
	uow := new(MockUoW)
	notifier := new(MockQueueNotifier)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, target.ID()).Return(target, nil).Once(),
		uow.On("ItemRepository").Return(itemRepo).Once(),
		itemRepo.On("GetAllByOrder", mock.Anything, target.ID()).Return([]*order.Item{}, nil).Once(),
		orderRepo.On("Update", mock.Anything, target).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("Enqueue", mock.Anything, target.ID(), target.CustomerID()).
			Return(errors.New("broker unavailable")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderItemsUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCheckoutOrderCommandHandler(factory, notifier, discardLogger())
	checked, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, order.Received, checked.Status())
	notifier.AssertExpectations(t)
}

func TestCheckoutOrderCommandHandler_Handle_SecondCheckoutRejected(t *testing.T) {
	ctx := t.Context()
	target := restoreOrderInStatus(t, order.Received, mustMoney(t, "18.00"))
	cmd, err := commands.NewCheckoutOrderCommand(target.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	itemRepo := new(MockItemRepository)
	uow := new(MockUoW)
	notifier := new(MockQueueNotifier)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, target.ID()).Return(target, nil).Once(),
		uow.On("ItemRepository").Return(itemRepo).Once(),
		itemRepo.On("GetAllByOrder", mock.Anything, target.ID()).Return([]*order.Item{}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderItemsUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCheckoutOrderCommandHandler(factory, notifier, discardLogger())
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrInvalidStateTransition)
	require.Equal(t, "18.00", target.Total().String())
	notifier.AssertNotCalled(t, "Enqueue", mock.Anything, mock.Anything, mock.Anything)
}

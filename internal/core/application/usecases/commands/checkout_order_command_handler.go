package commands

import (
	"context"
	"log/slog"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"
)

// CheckoutOrderCommandHandler handles the checkout workflow step.
// Inside one transaction it sums the order's item price snapshots, records
// the total, and advances the status to Received. After the commit it
// notifies the fulfillment queue; that call is best-effort and a failure is
// logged without undoing the checkout.
type CheckoutOrderCommandHandler struct {
	uowFactory OrderItemsUoWFactory
	notifier   ports.QueueNotifier
	logger     *slog.Logger
}

// NewCheckoutOrderCommandHandler creates a handler for checkout operations.
func NewCheckoutOrderCommandHandler(
	uowFactory OrderItemsUoWFactory,
	notifier ports.QueueNotifier,
	logger *slog.Logger,
) CheckoutOrderCommandHandler {
	return CheckoutOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "checkout_handler"),
	}
}

// Handle processes the checkout command and returns the updated order.
// An order with zero items checks out with a 0.00 total; a second checkout
// of the same order fails on the status guard.
func (h CheckoutOrderCommandHandler) Handle(ctx context.Context, cmd CheckoutOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	target, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	items, err := uow.ItemRepository().GetAllByOrder(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	total := kernel.ZeroMoney()
	for _, item := range items {
		total, err = total.Add(item.Price())
		if err != nil {
			return nil, err
		}
	}

	if err = target.Checkout(total); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, target); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	// Runs after Commit; a queue failure never rolls back the checkout.
	if err = h.notifier.Enqueue(ctx, target.ID(), target.CustomerID()); err != nil {
		h.logger.ErrorContext(ctx, "failed to enqueue order for fulfillment",
			"order_id", target.ID().String(), "error", err)
	}

	return target, nil
}

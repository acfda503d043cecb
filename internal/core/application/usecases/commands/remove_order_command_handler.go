package commands

import (
	"context"
)

// RemoveOrderCommandHandler deletes an Open order and its items.
// The cascade is explicit rather than delegated to the database: items go
// first, then the order, all in one transaction.
type RemoveOrderCommandHandler struct {
	uowFactory OrderItemsUoWFactory
}

// NewRemoveOrderCommandHandler creates a handler for order removal.
func NewRemoveOrderCommandHandler(uowFactory OrderItemsUoWFactory) RemoveOrderCommandHandler {
	return RemoveOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the remove-order command.
func (h RemoveOrderCommandHandler) Handle(ctx context.Context, cmd RemoveOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	target, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = target.EnsureOpen("removeOrder"); err != nil {
		return err
	}

	if err = uow.ItemRepository().DeleteAllByOrder(ctx, target.ID()); err != nil {
		return err
	}

	if err = orderRepo.Delete(ctx, target.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"
)

// RemoveItemCommandHandler handles deleting one line from an order.
// Deleting from an order that already left Open is rejected with an
// operation-not-supported error.
type RemoveItemCommandHandler struct {
	uowFactory OrderItemsUoWFactory
}

// NewRemoveItemCommandHandler creates a handler for item removal operations.
func NewRemoveItemCommandHandler(uowFactory OrderItemsUoWFactory) RemoveItemCommandHandler {
	return RemoveItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the remove-item command: lookup, open-status guard, delete,
// and the owning order's last-modified bump, all in one transaction.
func (h RemoveItemCommandHandler) Handle(ctx context.Context, cmd RemoveItemCommand) error {
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

	itemRepo := uow.ItemRepository()
	orderRepo := uow.OrderRepository()

	item, err := itemRepo.Get(ctx, cmd.ItemID())
	if err != nil {
		return err
	}

	owner, err := orderRepo.Get(ctx, item.OrderID())
	if err != nil {
		return err
	}

	if err = owner.EnsureOpen("removeItem"); err != nil {
		return err
	}

	if err = itemRepo.Delete(ctx, item.ID()); err != nil {
		return err
	}

	owner.Touch()
	if err = orderRepo.Update(ctx, owner); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

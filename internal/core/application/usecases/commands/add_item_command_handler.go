package commands

import (
	"context"

	"foodorder/internal/core/domain/model/order"
)

// AddItemCommandHandler handles attaching a product line to an order.
// The order must still be Open; the product must exist in the catalog.
type AddItemCommandHandler struct {
	uowFactory UoWFactory
}

// NewAddItemCommandHandler creates a handler for item addition operations.
func NewAddItemCommandHandler(uowFactory UoWFactory) AddItemCommandHandler {
	return AddItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add-item command. Order lookup, the open-status guard,
// the price snapshot, the item insert, and the order's last-modified bump all
// run in one transaction.
func (h AddItemCommandHandler) Handle(ctx context.Context, cmd AddItemCommand) (*order.Item, error) {
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

	if err = target.EnsureOpen("addItem"); err != nil {
		return nil, err
	}

	catalogProduct, err := uow.ProductRepository().Get(ctx, cmd.ProductID())
	if err != nil {
		return nil, err
	}

	item, err := order.NewItem(cmd.ItemID(), cmd.OrderID(), cmd.ProductID(), catalogProduct.Price(), cmd.Note())
	if err != nil {
		return nil, err
	}

	if err = uow.ItemRepository().Add(ctx, item); err != nil {
		return nil, err
	}

	target.Touch()
	if err = orderRepo.Update(ctx, target); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return item, nil
}

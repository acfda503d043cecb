package commands

import (
	"context"

	"foodorder/internal/core/domain/model/order"
)

// EditItemCommandHandler handles edits to an existing order line.
// Re-validates the owning order is still Open before touching anything,
// and re-snapshots the price when the product changes.
type EditItemCommandHandler struct {
	uowFactory UoWFactory
}

// NewEditItemCommandHandler creates a handler for item edit operations.
func NewEditItemCommandHandler(uowFactory UoWFactory) EditItemCommandHandler {
	return EditItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the edit-item command in one transaction.
func (h EditItemCommandHandler) Handle(ctx context.Context, cmd EditItemCommand) (*order.Item, error) {
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

	itemRepo := uow.ItemRepository()
	orderRepo := uow.OrderRepository()

	item, err := itemRepo.Get(ctx, cmd.ItemID())
	if err != nil {
		return nil, err
	}

	owner, err := orderRepo.Get(ctx, item.OrderID())
	if err != nil {
		return nil, err
	}

	if err = owner.EnsureOpen("editItem"); err != nil {
		return nil, err
	}

	if newProductID := cmd.NewProductID(); newProductID != nil {
		catalogProduct, productErr := uow.ProductRepository().Get(ctx, *newProductID)
		if productErr != nil {
			return nil, productErr
		}
		if err = item.ChangeProduct(*newProductID, catalogProduct.Price()); err != nil {
			return nil, err
		}
	}

	if newNote := cmd.NewNote(); newNote != nil {
		item.ChangeNote(*newNote)
	}

	if err = itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	owner.Touch()
	if err = orderRepo.Update(ctx, owner); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return item, nil
}

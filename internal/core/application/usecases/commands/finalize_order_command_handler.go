package commands

import (
	"context"

	"foodorder/internal/core/domain/model/order"
)

// FinalizeOrderCommandHandler moves a Paid order into its terminal status.
type FinalizeOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewFinalizeOrderCommandHandler creates a handler for order finalization.
func NewFinalizeOrderCommandHandler(uowFactory OrderUoWFactory) FinalizeOrderCommandHandler {
	return FinalizeOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the finalize command. Once committed the order is frozen
// for good: no command moves it out of a terminal status.
func (h FinalizeOrderCommandHandler) Handle(ctx context.Context, cmd FinalizeOrderCommand) (*order.Order, error) {
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

	if err = target.Finalize(cmd.TargetStatus()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, target); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return target, nil
}

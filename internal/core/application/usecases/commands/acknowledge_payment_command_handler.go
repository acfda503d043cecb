package commands

import (
	"context"
	"log/slog"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"
)

// AcknowledgePaymentCommandHandler moves a Confirmed order to Paid.
// Before applying the transition it consults the payment service. The answer
// is advisory: a missing or unreachable payment record is logged and the
// acknowledgment still proceeds, since the caller owns the decision.
type AcknowledgePaymentCommandHandler struct {
	uowFactory     OrderUoWFactory
	paymentChecker ports.PaymentChecker
	logger         *slog.Logger
}

// NewAcknowledgePaymentCommandHandler creates a handler for payment acknowledgment.
func NewAcknowledgePaymentCommandHandler(
	uowFactory OrderUoWFactory,
	paymentChecker ports.PaymentChecker,
	logger *slog.Logger,
) AcknowledgePaymentCommandHandler {
	return AcknowledgePaymentCommandHandler{
		uowFactory:     uowFactory,
		paymentChecker: paymentChecker,
		logger:         logger.With("component", "acknowledge_payment_handler"),
	}
}

// Handle processes the acknowledge-payment command.
func (h AcknowledgePaymentCommandHandler) Handle(
	ctx context.Context, cmd AcknowledgePaymentCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	confirmed, err := h.paymentChecker.IsConfirmed(ctx, cmd.OrderID())
	if err != nil {
		h.logger.WarnContext(ctx, "payment lookup failed, proceeding on caller's word",
			"order_id", cmd.OrderID().String(), "error", err)
	} else if !confirmed {
		h.logger.WarnContext(ctx, "no confirmed payment record for order",
			"order_id", cmd.OrderID().String())
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
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

	if err = target.AcknowledgePayment(); err != nil {
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

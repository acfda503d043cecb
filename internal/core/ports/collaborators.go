package ports

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
)

// QueueNotifier places a checked-out order into the external fulfillment
// queue. Calls happen strictly outside the checkout transaction: failures
// are logged and never roll back the checkout.
type QueueNotifier interface {
	Enqueue(ctx context.Context, orderID kernel.UUID, customerID kernel.UUID) error
}

// PaymentChecker reports whether an external payment record exists for an
// order. The read is advisory: the state machine trusts the caller's
// AcknowledgePayment command either way.
type PaymentChecker interface {
	IsConfirmed(ctx context.Context, orderID kernel.UUID) (bool, error)
}

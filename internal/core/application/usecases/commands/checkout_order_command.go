package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrCheckoutOrderCommandIsNotConstructed = errors.New(
	"CheckoutOrderCommand must be created via NewCheckoutOrderCommand constructor",
)

// CheckoutOrderCommand represents the one-way checkout of an Open order:
// freeze the item set, compute the total from the recorded price snapshots,
// and move the order to Received.
type CheckoutOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCheckoutOrderCommand creates a command to check out an order.
func NewCheckoutOrderCommand(orderID kernel.UUID) (CheckoutOrderCommand, error) {
	cmd := CheckoutOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return CheckoutOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckoutOrderCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to check out.
func (c CheckoutOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *CheckoutOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

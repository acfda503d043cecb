package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrRemoveOrderCommandIsNotConstructed = errors.New(
	"RemoveOrderCommand must be created via NewRemoveOrderCommand constructor",
)

// RemoveOrderCommand represents deletion of an Open order together with all
// of its line items. Orders past Open cannot be removed.
type RemoveOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveOrderCommand creates a command to remove an order.
func NewRemoveOrderCommand(orderID kernel.UUID) (RemoveOrderCommand, error) {
	cmd := RemoveOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return RemoveOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveOrderCommand) Validate() error {
	return c.guard.Validate(ErrRemoveOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to remove.
func (c RemoveOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *RemoveOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

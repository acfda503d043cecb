package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrAddItemCommandIsNotConstructed = errors.New(
	"AddItemCommand must be created via NewAddItemCommand constructor",
)

// AddItemCommand represents a request to attach a product line to an order.
// The product's current catalog price is snapshotted onto the line; later
// catalog changes do not move it.
type AddItemCommand struct { //nolint:recvcheck //using for validation
	itemID    kernel.UUID
	orderID   kernel.UUID
	productID kernel.UUID
	note      string

	guard guard.ConstructorGuard
}

// NewAddItemCommand creates a command to add a line item.
// The note is optional free text.
func NewAddItemCommand(itemID kernel.UUID, orderID kernel.UUID, productID kernel.UUID, note string) (AddItemCommand, error) {
	cmd := AddItemCommand{
		note:  note,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItemID(itemID),
		cmd.setOrderID(orderID),
		cmd.setProductID(productID),
	); err != nil {
		return AddItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddItemCommand) Validate() error {
	return c.guard.Validate(ErrAddItemCommandIsNotConstructed)
}

// ItemID returns the identifier for the new line item.
func (c AddItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// OrderID returns the identifier of the target order.
func (c AddItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ProductID returns the identifier of the product to record.
func (c AddItemCommand) ProductID() kernel.UUID {
	return c.productID
}

// Note returns the optional free-text note.
func (c AddItemCommand) Note() string {
	return c.note
}

func (c *AddItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	c.itemID = itemID
	return nil
}

func (c *AddItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *AddItemCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	c.productID = productID
	return nil
}

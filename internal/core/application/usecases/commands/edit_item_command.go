package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrEditItemCommandIsNotConstructed = errors.New(
	"EditItemCommand must be created via NewEditItemCommand constructor",
)

// EditItemCommand represents a request to change an existing order line:
// point it at a different product (re-snapshotting the price), replace its
// note, or both. At least one change must be supplied.
type EditItemCommand struct { //nolint:recvcheck //using for validation
	itemID       kernel.UUID
	newProductID *kernel.UUID
	newNote      *string

	guard guard.ConstructorGuard
}

// NewEditItemCommand creates a command to edit a line item.
// Nil means "leave as is"; supplying neither change is an error.
func NewEditItemCommand(itemID kernel.UUID, newProductID *kernel.UUID, newNote *string) (EditItemCommand, error) {
	cmd := EditItemCommand{
		newNote: newNote,
		guard:   guard.NewConstructorGuard(),
	}

	if newProductID == nil && newNote == nil {
		return EditItemCommand{}, errs.NewValueIsRequiredError("at least one of newProductID or newNote")
	}

	if err := errors.Join(
		cmd.setItemID(itemID),
		cmd.setNewProductID(newProductID),
	); err != nil {
		return EditItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c EditItemCommand) Validate() error {
	return c.guard.Validate(ErrEditItemCommandIsNotConstructed)
}

// ItemID returns the identifier of the line to edit.
func (c EditItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// NewProductID returns the replacement product, or nil when unchanged.
func (c EditItemCommand) NewProductID() *kernel.UUID {
	return c.newProductID
}

// NewNote returns the replacement note, or nil when unchanged.
func (c EditItemCommand) NewNote() *string {
	return c.newNote
}

func (c *EditItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	c.itemID = itemID
	return nil
}

func (c *EditItemCommand) setNewProductID(newProductID *kernel.UUID) error {
	if newProductID == nil {
		return nil
	}
	if err := newProductID.Validate(); err != nil {
		return err
	}
	c.newProductID = newProductID
	return nil
}

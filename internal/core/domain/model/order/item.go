package order

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
)

var (
	// ErrItemIsNotConstructed is returned when an Item instance was not created
	// through the NewItem or RestoreItem factory methods.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem constructor")
)

// Item is one product line within an order. It is exclusively owned by its
// Order: removed individually only while the order is Open, and deleted with
// the order when the order is removed.
//
// The price is a snapshot taken from the catalog at the time the item was
// added. It is never re-read from the catalog afterwards - a later catalog
// price change must not move an already-recorded line. The only way the
// snapshot changes is ChangeProduct, which records the replacement product's
// price, and the workflow re-validates the owning order is still Open before
// calling it.
type Item struct {
	id        kernel.UUID
	orderID   kernel.UUID
	productID kernel.UUID
	price     kernel.Money
	note      string

	isConstructed bool
}

// NewItem creates a new order line for the given product with its price
// snapshot. The note is optional free text.
func NewItem(id kernel.UUID, orderID kernel.UUID, productID kernel.UUID, price kernel.Money, note string) (*Item, error) {
	item := &Item{
		note:          note,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setOrderID(orderID),
		item.setProduct(productID, price),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem reconstructs an Item from persistence.
func RestoreItem(id kernel.UUID, orderID kernel.UUID, productID kernel.UUID, price kernel.Money, note string) (*Item, error) {
	return NewItem(id, orderID, productID, price, note)
}

// Validate ensures the Item instance was properly constructed through a factory.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// OrderID returns the identifier of the owning order.
func (i *Item) OrderID() kernel.UUID {
	return i.orderID
}

// ProductID returns the identifier of the product this line records.
func (i *Item) ProductID() kernel.UUID {
	return i.productID
}

// Price returns the unit price snapshot recorded when the item was added
// or last re-pointed at a different product.
func (i *Item) Price() kernel.Money {
	return i.price
}

// Note returns the optional free-text note attached to the line.
func (i *Item) Note() string {
	return i.note
}

// ChangeProduct re-points the line at a different product and records that
// product's price as the new snapshot.
func (i *Item) ChangeProduct(productID kernel.UUID, price kernel.Money) error {
	return i.setProduct(productID, price)
}

// ChangeNote replaces the free-text note.
func (i *Item) ChangeNote(note string) {
	i.note = note
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	i.orderID = orderID
	return nil
}

func (i *Item) setProduct(productID kernel.UUID, price kernel.Money) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	if err := price.Validate(); err != nil {
		return err
	}
	i.productID = productID
	i.price = price
	return nil
}

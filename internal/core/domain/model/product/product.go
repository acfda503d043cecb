// Package product contains the product catalog aggregate. The core workflow
// only reads it: AddItem snapshots the current price onto the order line.
package product

import (
	"errors"
	"fmt"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// MaxNameLength bounds the product name.
const MaxNameLength = 80

// MaxDescriptionLength bounds the free-text description.
const MaxDescriptionLength = 255

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through the NewProduct or RestoreProduct factory methods.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct constructor")

// Type classifies a catalog entry on the menu.
type Type int

const (
	TypeUnknown Type = iota
	TypeSnack
	TypeSide
	TypeDrink
	TypeDessert
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		TypeUnknown: "Unknown",
		TypeSnack:   "Snack",
		TypeSide:    "Side",
		TypeDrink:   "Drink",
		TypeDessert: "Dessert",
	}
}

// String returns the human-readable name of the product type.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}

// Validate checks if the Type value is one of the defined menu categories.
func (t Type) Validate() error {
	if t < TypeSnack || t > TypeDessert {
		return errs.NewValueIsInvalidErrorWithCause("productType",
			fmt.Errorf("%d is not a valid product type", t))
	}
	return nil
}

// Product is one catalog entry: a named menu item with a current price.
// The price recorded here is what AddItem snapshots onto an order line;
// changing it later never moves already-recorded lines.
type Product struct {
	id          kernel.UUID
	name        string
	description string
	productType Type
	price       kernel.Money

	isConstructed bool
}

// NewProduct creates a catalog entry with a validated name, description,
// type, and price.
func NewProduct(id kernel.UUID, name string, description string, productType Type, price kernel.Money) (*Product, error) {
	p := &Product{
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setDescription(description),
		p.setType(productType),
		p.setPrice(price),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct reconstructs a Product from persistence.
func RestoreProduct(id kernel.UUID, name string, description string, productType Type, price kernel.Money) (*Product, error) {
	return NewProduct(id, name, description, productType, price)
}

// Validate ensures the Product instance was properly constructed through a factory.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID { return p.id }

// Name returns the menu name.
func (p *Product) Name() string { return p.name }

// Description returns the free-text description.
func (p *Product) Description() string { return p.description }

// Type returns the menu category.
func (p *Product) Type() Type { return p.productType }

// Price returns the current catalog price.
func (p *Product) Price() kernel.Money { return p.price }

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if len(name) > MaxNameLength {
		return errs.NewValueIsInvalidErrorWithCause("name",
			fmt.Errorf("length %d exceeds %d", len(name), MaxNameLength))
	}
	p.name = name
	return nil
}

func (p *Product) setDescription(description string) error {
	if len(description) > MaxDescriptionLength {
		return errs.NewValueIsInvalidErrorWithCause("description",
			fmt.Errorf("length %d exceeds %d", len(description), MaxDescriptionLength))
	}
	p.description = description
	return nil
}

func (p *Product) setType(productType Type) error {
	if err := productType.Validate(); err != nil {
		return err
	}
	p.productType = productType
	return nil
}

func (p *Product) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	p.price = price
	return nil
}

package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/product"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand registers a new catalog entry on the menu.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	name        string
	description string
	productType product.Type
	price       kernel.Money

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to register a product.
func NewCreateProductCommand(
	name string, description string, productType product.Type, price kernel.Money,
) (CreateProductCommand, error) {
	cmd := CreateProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setType(productType),
		cmd.setPrice(price),
	); err != nil {
		return CreateProductCommand{}, err
	}
	cmd.description = description

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// Name returns the menu name.
func (c CreateProductCommand) Name() string { return c.name }

// Description returns the free-text description.
func (c CreateProductCommand) Description() string { return c.description }

// ProductType returns the menu category.
func (c CreateProductCommand) ProductType() product.Type { return c.productType }

// Price returns the catalog price.
func (c CreateProductCommand) Price() kernel.Money { return c.price }

func (c *CreateProductCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *CreateProductCommand) setType(productType product.Type) error {
	if err := productType.Validate(); err != nil {
		return err
	}
	c.productType = productType
	return nil
}

func (c *CreateProductCommand) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	c.price = price
	return nil
}

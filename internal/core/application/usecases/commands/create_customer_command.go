package commands

import (
	"errors"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrCreateCustomerCommandIsNotConstructed = errors.New(
	"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
)

// CreateCustomerCommand registers a new customer.
type CreateCustomerCommand struct { //nolint:recvcheck //using for validation
	name     string
	email    string
	document string

	guard guard.ConstructorGuard
}

// NewCreateCustomerCommand creates a command to register a customer.
func NewCreateCustomerCommand(name string, email string, document string) (CreateCustomerCommand, error) {
	cmd := CreateCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setEmail(email),
		cmd.setDocument(document),
	); err != nil {
		return CreateCustomerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

// Name returns the customer's name.
func (c CreateCustomerCommand) Name() string { return c.name }

// Email returns the contact email.
func (c CreateCustomerCommand) Email() string { return c.email }

// Document returns the identity document number.
func (c CreateCustomerCommand) Document() string { return c.document }

func (c *CreateCustomerCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *CreateCustomerCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}

func (c *CreateCustomerCommand) setDocument(document string) error {
	if document == "" {
		return errs.NewValueIsRequiredError("document")
	}
	c.document = document
	return nil
}

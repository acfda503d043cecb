// Package customer contains the customer aggregate. The order workflow only
// references customers by identifier; registration and lookup are plain
// boundary CRUD.
package customer

import (
	"errors"
	"fmt"
	"strings"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// MaxNameLength bounds the customer name.
const MaxNameLength = 120

// ErrCustomerIsNotConstructed is returned when a Customer instance was not
// created through the NewCustomer or RestoreCustomer factory methods.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer or RestoreCustomer constructor")

// Customer is a registered buyer: a name, a contact email, and a national
// identity document used to deduplicate registrations.
type Customer struct {
	id       kernel.UUID
	name     string
	email    string
	document string

	isConstructed bool
}

// NewCustomer creates a customer with a validated name, email, and document.
func NewCustomer(id kernel.UUID, name string, email string, document string) (*Customer, error) {
	c := &Customer{
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setEmail(email),
		c.setDocument(document),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCustomer reconstructs a Customer from persistence.
func RestoreCustomer(id kernel.UUID, name string, email string, document string) (*Customer, error) {
	return NewCustomer(id, name, email, document)
}

// Validate ensures the Customer instance was properly constructed through a factory.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID { return c.id }

// Name returns the customer's name.
func (c *Customer) Name() string { return c.name }

// Email returns the contact email.
func (c *Customer) Email() string { return c.email }

// Document returns the identity document number.
func (c *Customer) Document() string { return c.document }

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if len(name) > MaxNameLength {
		return errs.NewValueIsInvalidErrorWithCause("name",
			fmt.Errorf("length %d exceeds %d", len(name), MaxNameLength))
	}
	c.name = name
	return nil
}

func (c *Customer) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidErrorWithCause("email",
			fmt.Errorf("%q is not an email address", email))
	}
	c.email = email
	return nil
}

func (c *Customer) setDocument(document string) error {
	if document == "" {
		return errs.NewValueIsRequiredError("document")
	}
	c.document = document
	return nil
}

package ports

import (
	"context"

	"foodorder/internal/core/domain/model/customer"
	"foodorder/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customers.
type CustomerRepository interface {
	// Add persists a new customer.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a customer by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// GetByDocument retrieves a customer by identity document.
	GetByDocument(ctx context.Context, document string) (*customer.Customer, error)

	// GetAll retrieves every registered customer.
	GetAll(ctx context.Context) ([]*customer.Customer, error)
}

package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrGetCustomersQueryIsNotConstructed = errors.New(
	"GetCustomersQuery must be created via NewGetCustomersQuery constructor",
)

// GetCustomersQuery retrieves every registered customer.
type GetCustomersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetCustomersQuery creates a query for the customer roster.
func NewGetCustomersQuery() GetCustomersQuery {
	return GetCustomersQuery{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetCustomersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomersQueryIsNotConstructed)
}

// GetCustomersQueryResponse is one registered customer.
type GetCustomersQueryResponse struct {
	ID       kernel.UUID
	Name     string
	Email    string
	Document string
}

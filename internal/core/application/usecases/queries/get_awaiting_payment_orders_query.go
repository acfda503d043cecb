package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrGetAwaitingPaymentOrdersQueryIsNotConstructed = errors.New(
	"GetAwaitingPaymentOrdersQuery must be created via NewGetAwaitingPaymentOrdersQuery constructor",
)

// GetAwaitingPaymentOrdersQuery retrieves every Confirmed order, the ones
// the payment reconciliation job polls the payment service for.
type GetAwaitingPaymentOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAwaitingPaymentOrdersQuery creates a parameterless query for orders
// awaiting payment.
func NewGetAwaitingPaymentOrdersQuery() GetAwaitingPaymentOrdersQuery {
	return GetAwaitingPaymentOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAwaitingPaymentOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAwaitingPaymentOrdersQueryIsNotConstructed)
}

// GetAwaitingPaymentOrdersQueryResponse is one order waiting on payment.
type GetAwaitingPaymentOrdersQueryResponse struct {
	ID kernel.UUID
}

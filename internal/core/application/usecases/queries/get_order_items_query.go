package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrGetOrderItemsQueryIsNotConstructed = errors.New(
	"GetOrderItemsQuery must be created via NewGetOrderItemsQuery constructor",
)

// GetOrderItemsQuery retrieves every line of one order with its recorded
// price snapshot.
type GetOrderItemsQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderItemsQuery creates a query for the lines of an order.
func NewGetOrderItemsQuery(orderID kernel.UUID) (GetOrderItemsQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderItemsQuery{}, err
	}

	return GetOrderItemsQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderItemsQueryIsNotConstructed)
}

// OrderID returns the identifier of the order whose lines are requested.
func (q GetOrderItemsQuery) OrderID() kernel.UUID { return q.orderID }

// GetOrderItemsQueryResponse is one order line joined with its product name.
type GetOrderItemsQueryResponse struct {
	ID          kernel.UUID
	ProductID   kernel.UUID
	ProductName string
	Price       kernel.Money
	Note        string
}

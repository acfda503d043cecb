// Package queries contains read-only operations in the CQRS architecture.
// Query handlers bypass the aggregates and read projection rows straight
// from the database.
package queries

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

// DefaultPageSize is used when the caller does not specify a page size.
const DefaultPageSize = 20

// MaxPageSize caps a single page of results.
const MaxPageSize = 100

var ErrGetOpenOrdersQueryIsNotConstructed = errors.New(
	"GetOpenOrdersQuery must be created via NewGetOpenOrdersQuery constructor",
)

// GetOpenOrdersQuery retrieves the active board: every order not yet in a
// terminal status, page by page. Pages are zero-based.
type GetOpenOrdersQuery struct {
	page     int
	pageSize int

	guard guard.ConstructorGuard
}

// NewGetOpenOrdersQuery creates a query for one page of active orders.
// A non-positive pageSize falls back to DefaultPageSize.
func NewGetOpenOrdersQuery(page int, pageSize int) (GetOpenOrdersQuery, error) {
	if page < 0 {
		return GetOpenOrdersQuery{}, errs.NewValueIsInvalidError("page")
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	return GetOpenOrdersQuery{
		page:     page,
		pageSize: pageSize,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOpenOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOpenOrdersQueryIsNotConstructed)
}

// Page returns the zero-based page index.
func (q GetOpenOrdersQuery) Page() int { return q.page }

// PageSize returns the number of rows per page.
func (q GetOpenOrdersQuery) PageSize() int { return q.pageSize }

// GetOpenOrdersQueryResponse is one row of the active order board.
type GetOpenOrdersQueryResponse struct {
	ID         kernel.UUID
	CustomerID kernel.UUID
	Status     order.Status
	Total      kernel.Money
	CreatedAt  time.Time
}

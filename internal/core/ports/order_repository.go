// Package ports defines the contracts between the application core and
// infrastructure: repositories, the unit of work, and outbound collaborators.
// These interfaces enable dependency inversion and testability.
package ports

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Returns a not-found error when no row was touched, so a transition
	// that lost a race surfaces instead of silently overwriting.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete removes an order row. Cascading item deletion is the caller's
	// job: items first, then the order, inside one transaction.
	Delete(ctx context.Context, id kernel.UUID) error
}

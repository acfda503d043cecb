package ports

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
)

// ItemRepository defines the persistence contract for order line items.
type ItemRepository interface {
	// Add persists a new item.
	Add(ctx context.Context, item *order.Item) error

	// Update persists changes to an existing item.
	Update(ctx context.Context, item *order.Item) error

	// Get retrieves an item by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Item, error)

	// Delete removes a single item.
	Delete(ctx context.Context, id kernel.UUID) error

	// GetAllByOrder retrieves every item attached to the given order.
	GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*order.Item, error)

	// DeleteAllByOrder removes every item attached to the given order.
	// Used by order deletion as the first half of the explicit cascade.
	DeleteAllByOrder(ctx context.Context, orderID kernel.UUID) error
}

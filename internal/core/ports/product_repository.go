package ports

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for the product catalog.
// The order workflow reads it to snapshot prices; registration is boundary CRUD.
type ProductRepository interface {
	// Add persists a new catalog entry.
	Add(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetAllByType retrieves every product in one menu category.
	GetAllByType(ctx context.Context, productType product.Type) ([]*product.Product, error)
}

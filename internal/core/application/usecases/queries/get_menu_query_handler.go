package queries

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/product"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetMenuQueryHandler reads the product catalog from the database.
type GetMenuQueryHandler struct {
	db *gorm.DB
}

// NewGetMenuQueryHandler creates a handler for menu queries.
func NewGetMenuQueryHandler(db *gorm.DB) GetMenuQueryHandler {
	return GetMenuQueryHandler{db: db}
}

// Handle executes the query and returns the matching catalog entries.
func (h GetMenuQueryHandler) Handle(
	ctx context.Context,
	query GetMenuQuery,
) ([]GetMenuQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT id, name, description, product_type, price
		FROM products
	`
	args := make([]any, 0, 1)
	if pt := query.ProductType(); pt != nil {
		sql += " WHERE product_type = ?"
		args = append(args, int(*pt))
	}
	sql += " ORDER BY product_type, name"

	entries := make([]GetMenuQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var name, description, price string
		var productType int

		if err = rows.Scan(&id, &name, &description, &productType, &price); err != nil {
			return nil, err
		}

		entryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		entryPrice, priceErr := kernel.MoneyFromString(price)
		if priceErr != nil {
			return nil, priceErr
		}

		entries = append(entries, GetMenuQueryResponse{
			ID:          entryID,
			Name:        name,
			Description: description,
			ProductType: product.Type(productType),
			Price:       entryPrice,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

package queries

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderItemsQueryHandler reads the lines of one order, joined with the
// catalog for display names. The price column is the snapshot taken when the
// line was added, not the product's current price.
type GetOrderItemsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderItemsQueryHandler creates a handler for order line queries.
func NewGetOrderItemsQueryHandler(db *gorm.DB) GetOrderItemsQueryHandler {
	return GetOrderItemsQueryHandler{db: db}
}

// Handle executes the query and returns the order's lines.
func (h GetOrderItemsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderItemsQuery,
) ([]GetOrderItemsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items := make([]GetOrderItemsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			i.id,
			i.product_id,
			p.name,
			i.price,
			i.note
		FROM order_items i
		JOIN products p ON p.id = i.product_id
		WHERE i.order_id = ?
		ORDER BY i.id
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id, productID uuid.UUID
		var name, price, note string

		if err = rows.Scan(&id, &productID, &name, &price, &note); err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		prodID, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return nil, idErr
		}
		snapshot, priceErr := kernel.MoneyFromString(price)
		if priceErr != nil {
			return nil, priceErr
		}

		items = append(items, GetOrderItemsQueryResponse{
			ID:          itemID,
			ProductID:   prodID,
			ProductName: name,
			Price:       snapshot,
			Note:        note,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

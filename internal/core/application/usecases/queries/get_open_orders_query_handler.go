package queries

import (
	"context"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOpenOrdersQueryHandler reads the active order board from the database.
// Terminal orders never show up here; the rest come out grouped by how far
// along the workflow they are, oldest first within each status.
type GetOpenOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOpenOrdersQueryHandler creates a handler for active order queries.
func NewGetOpenOrdersQueryHandler(db *gorm.DB) GetOpenOrdersQueryHandler {
	return GetOpenOrdersQueryHandler{db: db}
}

// Handle executes the query and returns one page of active orders.
func (h GetOpenOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOpenOrdersQuery,
) ([]GetOpenOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetOpenOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			status,
			total,
			created_at
		FROM orders
		WHERE status NOT IN (?, ?, ?)
		ORDER BY status, created_at
		LIMIT ? OFFSET ?
	`, order.Delivered, order.Returned, order.Failed,
		query.PageSize(), query.Page()*query.PageSize()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id, customerID uuid.UUID
		var status int
		var total string
		var createdAt time.Time

		if err = rows.Scan(&id, &customerID, &status, &total, &createdAt); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		buyerID, idErr := kernel.UUIDFromBytes(customerID[:])
		if idErr != nil {
			return nil, idErr
		}
		orderTotal, totalErr := kernel.MoneyFromString(total)
		if totalErr != nil {
			return nil, totalErr
		}

		orders = append(orders, GetOpenOrdersQueryResponse{
			ID:         orderID,
			CustomerID: buyerID,
			Status:     order.Status(status),
			Total:      orderTotal,
			CreatedAt:  createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

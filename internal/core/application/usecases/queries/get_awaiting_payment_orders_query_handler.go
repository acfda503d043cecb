package queries

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAwaitingPaymentOrdersQueryHandler reads the identifiers of Confirmed
// orders for the payment reconciliation job.
type GetAwaitingPaymentOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAwaitingPaymentOrdersQueryHandler creates a handler for
// awaiting-payment queries.
func NewGetAwaitingPaymentOrdersQueryHandler(db *gorm.DB) GetAwaitingPaymentOrdersQueryHandler {
	return GetAwaitingPaymentOrdersQueryHandler{db: db}
}

// Handle executes the query and returns the awaiting-payment order IDs.
func (h GetAwaitingPaymentOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAwaitingPaymentOrdersQuery,
) ([]GetAwaitingPaymentOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetAwaitingPaymentOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id
		FROM orders
		WHERE status = ?
		ORDER BY created_at
	`, order.Confirmed).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID

		if err = rows.Scan(&id); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		orders = append(orders, GetAwaitingPaymentOrdersQueryResponse{ID: orderID})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

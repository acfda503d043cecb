package queries

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCustomersQueryHandler reads the customer roster from the database.
type GetCustomersQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomersQueryHandler creates a handler for customer roster queries.
func NewGetCustomersQueryHandler(db *gorm.DB) GetCustomersQueryHandler {
	return GetCustomersQueryHandler{db: db}
}

// Handle executes the query and returns every registered customer.
func (h GetCustomersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomersQuery,
) ([]GetCustomersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	customers := make([]GetCustomersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, email, document
		FROM customers
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var name, email, document string

		if err = rows.Scan(&id, &name, &email, &document); err != nil {
			return nil, err
		}

		customerID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		customers = append(customers, GetCustomersQueryResponse{
			ID:       customerID,
			Name:     name,
			Email:    email,
			Document: document,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return customers, nil
}

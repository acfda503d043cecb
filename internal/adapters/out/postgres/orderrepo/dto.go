// Package orderrepo implements order persistence over GORM, mapping the
// order aggregate to and from its relational representation.
package orderrepo

import (
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database row for an order aggregate.
// Status is indexed because the board query and the reconciliation job both
// filter on it.
type OrderDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID    uuid.UUID       `gorm:"type:uuid;index"`
	Status        int             `gorm:"index"`
	PaymentStatus int
	Total         decimal.Decimal `gorm:"type:numeric(14,2)"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:            aggregate.ID().Bytes(),
		CustomerID:    aggregate.CustomerID().Bytes(),
		Status:        int(aggregate.Status()),
		PaymentStatus: int(aggregate.PaymentStatus()),
		Total:         aggregate.Total().Amount(),
		CreatedAt:     aggregate.CreatedAt(),
		UpdatedAt:     aggregate.UpdatedAt(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		customerID,
		order.Status(dto.Status),
		order.PaymentStatus(dto.PaymentStatus),
		total,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}

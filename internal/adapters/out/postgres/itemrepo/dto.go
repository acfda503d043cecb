// Package itemrepo implements order line persistence over GORM.
package itemrepo

import (
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ItemDTO represents the database row for one order line. Price is the
// snapshot recorded when the line was added.
type ItemDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;index"`
	ProductID uuid.UUID       `gorm:"type:uuid"`
	Price     decimal.Decimal `gorm:"type:numeric(14,2)"`
	Note      string
}

// TableName overrides GORM's default naming to use "order_items".
func (ItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(item *order.Item) ItemDTO {
	return ItemDTO{
		ID:        item.ID().Bytes(),
		OrderID:   item.OrderID().Bytes(),
		ProductID: item.ProductID().Bytes(),
		Price:     item.Price().Amount(),
		Note:      item.Note(),
	}
}

func toDomain(dto ItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return order.RestoreItem(id, orderID, productID, price, dto.Note)
}

// Package customerrepo implements customer persistence over GORM.
package customerrepo

import (
	"foodorder/internal/core/domain/model/customer"
	"foodorder/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO represents the database row for one customer. Document is
// unique: registration deduplicates on it.
type CustomerDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string
	Email    string
	Document string `gorm:"uniqueIndex"`
}

// TableName overrides GORM's default naming to use "customers".
func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(aggregate *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:       aggregate.ID().Bytes(),
		Name:     aggregate.Name(),
		Email:    aggregate.Email(),
		Document: aggregate.Document(),
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(id, dto.Name, dto.Email, dto.Document)
}

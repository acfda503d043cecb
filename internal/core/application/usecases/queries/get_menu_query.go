package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/product"
	"foodorder/internal/pkg/guard"
)

var ErrGetMenuQueryIsNotConstructed = errors.New(
	"GetMenuQuery must be created via NewGetMenuQuery constructor",
)

// GetMenuQuery retrieves the catalog, optionally narrowed to one category.
type GetMenuQuery struct {
	productType *product.Type

	guard guard.ConstructorGuard
}

// NewGetMenuQuery creates a query for the menu. A nil productType returns
// every category.
func NewGetMenuQuery(productType *product.Type) (GetMenuQuery, error) {
	if productType != nil {
		if err := productType.Validate(); err != nil {
			return GetMenuQuery{}, err
		}
	}

	return GetMenuQuery{
		productType: productType,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuQueryIsNotConstructed)
}

// ProductType returns the optional category filter.
func (q GetMenuQuery) ProductType() *product.Type { return q.productType }

// GetMenuQueryResponse is one catalog entry on the menu.
type GetMenuQueryResponse struct {
	ID          kernel.UUID
	Name        string
	Description string
	ProductType product.Type
	Price       kernel.Money
}

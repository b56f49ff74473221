package queries

import (
	"errors"
	"fmt"

	"microshop/internal/core/domain/model/kernel"
	"microshop/internal/pkg/errs"
	"microshop/internal/pkg/guard"
)

var ErrGetProductQueryIsNotConstructed = errors.New(
	"GetProductQuery must be created via NewGetProductQuery constructor",
)

// GetProductQuery retrieves a single catalog product by identity.
type GetProductQuery struct {
	id int64

	guard guard.ConstructorGuard
}

// NewGetProductQuery creates a query to retrieve one product.
func NewGetProductQuery(id int64) (GetProductQuery, error) {
	if id <= 0 {
		return GetProductQuery{}, errs.NewValueIsInvalidErrorWithCause("id",
			fmt.Errorf("%d is not greater than 0", id))
	}

	return GetProductQuery{
		id:    id,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProductQuery) Validate() error {
	return q.guard.Validate(ErrGetProductQueryIsNotConstructed)
}

// ID returns the identity of the product to project.
func (q GetProductQuery) ID() int64 {
	return q.id
}

// GetProductQueryResponse represents a catalog product projection.
type GetProductQueryResponse struct {
	ID          int64
	Name        string
	Description string
	Price       kernel.Money
	SKU         string
}

package queries

import (
	"errors"

	"microshop/internal/core/domain/model/kernel"
	"microshop/internal/pkg/errs"
	"microshop/internal/pkg/guard"
)

var ErrGetProductsQueryIsNotConstructed = errors.New(
	"GetProductsQuery must be created via NewGetProductsQuery constructor",
)

const (
	// MinPageSize is the smallest allowed page size for product listings.
	MinPageSize = 1
	// MaxPageSize caps product listing pages to keep result sets bounded.
	MaxPageSize = 100
)

// ProductFilter narrows a product listing. Zero-valued fields are ignored;
// name and SKU match case-insensitive substrings, prices bound the range
// inclusively.
type ProductFilter struct {
	Name     string
	SKU      string
	MinPrice *kernel.Money
	MaxPrice *kernel.Money
}

// GetProductsQuery retrieves a filtered, paginated catalog listing.
//
// Example:
//
//	query, _ := NewGetProductsQuery(ProductFilter{Name: "widget"}, 20, 0)
//	handler := NewGetProductsQueryHandler(db)
//
//	page, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list products: %w", err)
//	}
//	fmt.Printf("%d of %d products\n", len(page.Products), page.Total)
type GetProductsQuery struct {
	filter ProductFilter
	limit  int
	offset int

	guard guard.ConstructorGuard
}

// NewGetProductsQuery creates a query to list catalog products.
// The limit must lie within [MinPageSize, MaxPageSize] and the offset must
// not be negative.
func NewGetProductsQuery(filter ProductFilter, limit, offset int) (GetProductsQuery, error) {
	if limit < MinPageSize || limit > MaxPageSize {
		return GetProductsQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, MinPageSize, MaxPageSize)
	}
	if offset < 0 {
		return GetProductsQuery{}, errs.NewValueIsOutOfRangeError("offset", offset, 0, "unbounded")
	}

	return GetProductsQuery{
		filter: filter,
		limit:  limit,
		offset: offset,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetProductsQueryIsNotConstructed)
}

// Filter returns the listing filter.
func (q GetProductsQuery) Filter() ProductFilter {
	return q.filter
}

// Limit returns the page size.
func (q GetProductsQuery) Limit() int {
	return q.limit
}

// Offset returns the number of products to skip.
func (q GetProductsQuery) Offset() int {
	return q.offset
}

// GetProductsQueryResponse represents one page of the catalog listing.
// Total counts all products matching the filter, not just the page.
type GetProductsQueryResponse struct {
	Products []GetProductQueryResponse
	Total    int64
	Limit    int
	Offset   int
}

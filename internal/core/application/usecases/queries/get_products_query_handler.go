package queries

import (
	"context"
	"strings"

	"microshop/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GetProductsQueryHandler projects a filtered page of catalog products.
type GetProductsQueryHandler struct {
	db *gorm.DB
}

// NewGetProductsQueryHandler creates a handler for product listing queries.
func NewGetProductsQueryHandler(db *gorm.DB) GetProductsQueryHandler {
	return GetProductsQueryHandler{db: db}
}

// Handle executes the listing query. Results are sorted by product id for
// consistent pagination.
func (h GetProductsQueryHandler) Handle(
	ctx context.Context,
	query GetProductsQuery,
) (GetProductsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetProductsQueryResponse{}, err
	}

	where, args := buildProductFilter(query.Filter())

	var total int64
	if err := h.db.WithContext(ctx).
		Raw(`SELECT COUNT(*) FROM products`+where, args...).
		Scan(&total).Error; err != nil {
		return GetProductsQueryResponse{}, err
	}

	listArgs := append(args, query.Limit(), query.Offset())
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			description,
			price,
			sku
		FROM products`+where+`
		ORDER BY id
		LIMIT ? OFFSET ?
	`, listArgs...).Rows()
	if err != nil {
		return GetProductsQueryResponse{}, err
	}
	defer rows.Close()

	products := make([]GetProductQueryResponse, 0, query.Limit())
	for rows.Next() {
		var (
			productResp GetProductQueryResponse
			price       string
		)

		if err = rows.Scan(&productResp.ID, &productResp.Name,
			&productResp.Description, &price, &productResp.SKU); err != nil {
			return GetProductsQueryResponse{}, err
		}

		productResp.Price, err = kernel.MoneyFromString(price)
		if err != nil {
			return GetProductsQueryResponse{}, err
		}

		products = append(products, productResp)
	}

	if err = rows.Err(); err != nil {
		return GetProductsQueryResponse{}, err
	}

	return GetProductsQueryResponse{
		Products: products,
		Total:    total,
		Limit:    query.Limit(),
		Offset:   query.Offset(),
	}, nil
}

// buildProductFilter assembles the WHERE clause shared by the count and the
// page queries. The clause starts with a leading space when non-empty.
func buildProductFilter(filter ProductFilter) (string, []any) {
	conditions := make([]string, 0, 4)
	args := make([]any, 0, 4)

	if filter.Name != "" {
		conditions = append(conditions, "name ILIKE ?")
		args = append(args, "%"+filter.Name+"%")
	}
	if filter.SKU != "" {
		conditions = append(conditions, "sku ILIKE ?")
		args = append(args, "%"+filter.SKU+"%")
	}
	if filter.MinPrice != nil {
		conditions = append(conditions, "price >= ?")
		args = append(args, filter.MinPrice.Amount())
	}
	if filter.MaxPrice != nil {
		conditions = append(conditions, "price <= ?")
		args = append(args, filter.MaxPrice.Amount())
	}

	if len(conditions) == 0 {
		return "", args
	}

	return " WHERE " + strings.Join(conditions, " AND "), args
}

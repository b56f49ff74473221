package queries

import (
	"context"
	"database/sql"
	"errors"

	"microshop/internal/core/domain/model/kernel"
	"microshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetProductQueryHandler projects a single catalog product from the database.
type GetProductQueryHandler struct {
	db *gorm.DB
}

// NewGetProductQueryHandler creates a handler for single product projections.
func NewGetProductQueryHandler(db *gorm.DB) GetProductQueryHandler {
	return GetProductQueryHandler{db: db}
}

// Handle executes the query. Returns an object-not-found error when no product
// matches the identity.
func (h GetProductQueryHandler) Handle(
	ctx context.Context,
	query GetProductQuery,
) (GetProductQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetProductQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			description,
			price,
			sku
		FROM products
		WHERE id = ?
	`, query.ID()).Row()

	var (
		resp  GetProductQueryResponse
		price string
	)

	err := row.Scan(&resp.ID, &resp.Name, &resp.Description, &price, &resp.SKU)
	if errors.Is(err, sql.ErrNoRows) || errors.Is(err, gorm.ErrRecordNotFound) {
		return GetProductQueryResponse{}, errs.NewObjectNotFoundError("id", query.ID())
	}
	if err != nil {
		return GetProductQueryResponse{}, err
	}

	resp.Price, err = kernel.MoneyFromString(price)
	if err != nil {
		return GetProductQueryResponse{}, err
	}

	return resp, nil
}

package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"microshop/internal/core/domain/model/kernel"
	"microshop/internal/core/domain/model/order"
	"microshop/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler projects a single order with its line items straight
// from the database, bypassing the aggregate.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order projections.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns an object-not-found error when no order
// matches the order number. Items are sorted by product id for consistent
// output.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp, err := h.loadOrder(ctx, query.OrderNumber())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	items, err := h.loadItems(ctx, query.OrderNumber())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.Items = items

	return resp, nil
}

func (h GetOrderQueryHandler) loadOrder(
	ctx context.Context,
	orderNumber kernel.OrderNumber,
) (GetOrderQueryResponse, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			order_number,
			customer_id,
			status,
			payment_method,
			payment_reference,
			currency,
			total_amount,
			created_at
		FROM orders
		WHERE order_number = ?
	`, orderNumber.Value()).Row()

	var (
		id               uuid.UUID
		customerID       string
		status           string
		paymentMethod    string
		paymentReference string
		currency         string
		totalAmount      string
		createdAt        time.Time
	)

	err := row.Scan(&id, &customerID, &status, &paymentMethod,
		&paymentReference, &currency, &totalAmount, &createdAt)
	if errors.Is(err, sql.ErrNoRows) || errors.Is(err, gorm.ErrRecordNotFound) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderNumber", orderNumber.String())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp := GetOrderQueryResponse{
		CustomerID:       customerID,
		PaymentReference: paymentReference,
		Currency:         currency,
		CreatedAt:        createdAt,
	}

	resp.OrderNumber, err = kernel.OrderNumberFromString(id.String())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp.Status, err = order.StatusFromString(status)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if paymentMethod != "" {
		resp.PaymentMethod, err = order.PaymentMethodFromString(paymentMethod)
		if err != nil {
			return GetOrderQueryResponse{}, err
		}
	}

	resp.TotalAmount, err = kernel.MoneyFromString(totalAmount)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return resp, nil
}

func (h GetOrderQueryHandler) loadItems(
	ctx context.Context,
	orderNumber kernel.OrderNumber,
) ([]GetOrderItemResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			sku,
			price,
			quantity
		FROM order_items
		WHERE order_number = ?
		ORDER BY product_id
	`, orderNumber.Value()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]GetOrderItemResponse, 0)
	for rows.Next() {
		var (
			productID int64
			sku       string
			price     string
			quantity  int
		)

		if err = rows.Scan(&productID, &sku, &price, &quantity); err != nil {
			return nil, err
		}

		money, moneyErr := kernel.MoneyFromString(price)
		if moneyErr != nil {
			return nil, moneyErr
		}

		items = append(items, GetOrderItemResponse{
			ProductID: productID,
			SKU:       sku,
			Price:     money,
			Quantity:  quantity,
			Subtotal:  money.MulQuantity(quantity),
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

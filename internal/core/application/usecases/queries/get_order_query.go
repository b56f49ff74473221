// Package queries contains read-only operations that project system state.
// Implements the Query side of the CQRS architecture: handlers read the
// database directly and never go through domain aggregates.
package queries

import (
	"errors"
	"time"

	"microshop/internal/core/domain/model/kernel"
	"microshop/internal/core/domain/model/order"

	"microshop/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order projection by its order number.
//
// Example:
//
//	query, _ := NewGetOrderQuery(orderNumber)
//	handler := NewGetOrderQueryHandler(db)
//
//	projection, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order: %w", err)
//	}
//	fmt.Printf("order %s total %s\n", projection.OrderNumber, projection.TotalAmount)
type GetOrderQuery struct {
	orderNumber kernel.OrderNumber

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to retrieve one order with its items.
func NewGetOrderQuery(orderNumber kernel.OrderNumber) (GetOrderQuery, error) {
	if err := orderNumber.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderNumber: orderNumber,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderNumber returns the natural key of the order to project.
func (q GetOrderQuery) OrderNumber() kernel.OrderNumber {
	return q.orderNumber
}

// GetOrderItemResponse represents one line item within an order projection.
type GetOrderItemResponse struct {
	ProductID int64
	SKU       string
	Price     kernel.Money
	Quantity  int
	Subtotal  kernel.Money
}

// GetOrderQueryResponse represents the full order projection including items.
type GetOrderQueryResponse struct {
	OrderNumber      kernel.OrderNumber
	CustomerID       string
	Status           order.Status
	PaymentMethod    order.PaymentMethod
	PaymentReference string
	Currency         string
	TotalAmount      kernel.Money
	CreatedAt        time.Time
	Items            []GetOrderItemResponse
}

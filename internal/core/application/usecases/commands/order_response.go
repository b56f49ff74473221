package commands

import (
	"microshop/internal/core/domain/model/kernel"
	"microshop/internal/core/domain/model/order"
)

// OrderResponse is the projection of an order returned by every mutating
// order operation. Mirrors the state of the aggregate after the change was
// committed.
type OrderResponse struct {
	OrderNumber kernel.OrderNumber
	Status      order.Status
	Currency    string
	TotalAmount kernel.Money
}

func orderResponseFrom(aggregate *order.Order) OrderResponse {
	return OrderResponse{
		OrderNumber: aggregate.OrderNumber(),
		Status:      aggregate.Status(),
		Currency:    aggregate.Currency(),
		TotalAmount: aggregate.TotalAmount(),
	}
}

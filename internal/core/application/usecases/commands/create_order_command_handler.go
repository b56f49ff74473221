package commands

import (
	"context"

	"microshop/internal/core/domain/model/kernel"
	"microshop/internal/core/domain/model/order"
)

// CreateOrderResponse is the projection of a freshly created order returned
// to the caller.
type CreateOrderResponse struct {
	OrderNumber kernel.OrderNumber
	Status      order.Status
	Currency    string
	TotalAmount kernel.Money
}

// CreateOrderCommandHandler handles the business logic for order creation.
// Generates a fresh unique order number, constructs the aggregate with the
// given items, and persists it in "created" status.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand("customer-1", items)
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	fmt.Printf("order %s created, total %s", created.OrderNumber, created.TotalAmount)
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// Uses a transaction to ensure the order and its items are persisted together
// or rolled back on error. Returns the projection of the created order.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResponse, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResponse{}, err
	}

	aggregate, err := order.NewOrder(kernel.NewOrderNumber(), cmd.CustomerID(), cmd.Items())
	if err != nil {
		return CreateOrderResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return CreateOrderResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return CreateOrderResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResponse{}, err
	}

	return CreateOrderResponse{
		OrderNumber: aggregate.OrderNumber(),
		Status:      aggregate.Status(),
		Currency:    aggregate.Currency(),
		TotalAmount: aggregate.TotalAmount(),
	}, nil
}

package commands

import (
	"context"
)

// PayOrderCommandHandler handles order payment.
// Assigning the payment details and confirming the payment happen on the same
// loaded aggregate, so a payment against an order that is not placed fails
// before anything is written.
type PayOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewPayOrderCommandHandler creates a handler for order payment operations.
func NewPayOrderCommandHandler(uowFactory OrderUoWFactory) PayOrderCommandHandler {
	return PayOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order payment command.
func (h *PayOrderCommandHandler) Handle(ctx context.Context, cmd PayOrderCommand) (OrderResponse, error) {
	if err := cmd.Validate(); err != nil {
		return OrderResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return OrderResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().GetByOrderNumber(ctx, cmd.OrderNumber())
	if err != nil {
		return OrderResponse{}, err
	}

	if err = aggregate.AssignPayment(cmd.PaymentMethod(), cmd.PaymentReference()); err != nil {
		return OrderResponse{}, err
	}

	if err = aggregate.Pay(); err != nil {
		return OrderResponse{}, err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return OrderResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return OrderResponse{}, err
	}

	return orderResponseFrom(aggregate), nil
}

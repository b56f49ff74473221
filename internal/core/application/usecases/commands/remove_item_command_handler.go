package commands

import (
	"context"
)

// RemoveItemCommandHandler handles item removal from orders.
// The aggregate refuses to remove the last remaining item, so a committed
// removal always leaves the order with at least one line item.
type RemoveItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRemoveItemCommandHandler creates a handler for item removal operations.
func NewRemoveItemCommandHandler(uowFactory OrderUoWFactory) RemoveItemCommandHandler {
	return RemoveItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the item removal command.
func (h *RemoveItemCommandHandler) Handle(ctx context.Context, cmd RemoveItemCommand) (OrderResponse, error) {
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

	if err = aggregate.RemoveItem(cmd.ProductID()); err != nil {
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

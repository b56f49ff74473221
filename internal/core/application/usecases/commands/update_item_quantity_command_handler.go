package commands

import (
	"context"
)

// UpdateItemQuantityCommandHandler handles quantity changes on order items.
// Loads the order, applies the new quantity (removal when non-positive), and
// persists the order together with its recalculated total in one transaction.
type UpdateItemQuantityCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateItemQuantityCommandHandler creates a handler for item quantity changes.
func NewUpdateItemQuantityCommandHandler(uowFactory OrderUoWFactory) UpdateItemQuantityCommandHandler {
	return UpdateItemQuantityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the item quantity change command.
// Fails when the order is not in a status that allows item mutation or when
// the item is missing from the order.
func (h *UpdateItemQuantityCommandHandler) Handle(ctx context.Context, cmd UpdateItemQuantityCommand) (OrderResponse, error) {
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

	if err = aggregate.UpdateItemQuantity(cmd.ProductID(), cmd.Quantity()); err != nil {
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

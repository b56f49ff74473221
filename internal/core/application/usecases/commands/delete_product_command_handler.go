package commands

import (
	"context"
)

// DeleteProductCommandHandler handles catalog product removal.
type DeleteProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewDeleteProductCommandHandler creates a handler for product deletion operations.
func NewDeleteProductCommandHandler(uowFactory ProductUoWFactory) DeleteProductCommandHandler {
	return DeleteProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the product deletion command.
// Verifies the product exists first so a missing product surfaces as a
// not-found error rather than a silent no-op.
func (h *DeleteProductCommandHandler) Handle(ctx context.Context, cmd DeleteProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.ProductRepository().GetByID(ctx, cmd.ID()); err != nil {
		return err
	}

	if err := uow.ProductRepository().Delete(ctx, cmd.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"

	"microshop/internal/pkg/errs"
)

// UpdateProductCommandHandler handles catalog product updates.
type UpdateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewUpdateProductCommandHandler creates a handler for product update operations.
func NewUpdateProductCommandHandler(uowFactory ProductUoWFactory) UpdateProductCommandHandler {
	return UpdateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the product update command.
// Fails with an already-exists error when the new SKU belongs to another
// product, and with a not-found error when the product does not exist.
func (h *UpdateProductCommandHandler) Handle(ctx context.Context, cmd UpdateProductCommand) (ProductResponse, error) {
	if err := cmd.Validate(); err != nil {
		return ProductResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ProductResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	entity, err := uow.ProductRepository().GetByID(ctx, cmd.ID())
	if err != nil {
		return ProductResponse{}, err
	}

	taken, err := uow.ProductRepository().ExistsBySKU(ctx, cmd.SKU(), cmd.ID())
	if err != nil {
		return ProductResponse{}, err
	}
	if taken {
		return ProductResponse{}, errs.NewObjectAlreadyExistsError("sku", cmd.SKU())
	}

	if err = entity.Update(cmd.Name(), cmd.Description(), cmd.Price(), cmd.SKU()); err != nil {
		return ProductResponse{}, err
	}

	if err = uow.ProductRepository().Update(ctx, entity); err != nil {
		return ProductResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ProductResponse{}, err
	}

	return productResponseFrom(entity), nil
}

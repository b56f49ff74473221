package commands

import (
	"context"

	"microshop/internal/core/domain/model/kernel"
	"microshop/internal/core/domain/model/product"
	"microshop/internal/pkg/errs"
)

// ProductResponse is the projection of a catalog product returned by every
// mutating product operation.
type ProductResponse struct {
	ID          int64
	Name        string
	Description string
	Price       kernel.Money
	SKU         string
}

func productResponseFrom(entity *product.Product) ProductResponse {
	return ProductResponse{
		ID:          entity.ID(),
		Name:        entity.Name(),
		Description: entity.Description(),
		Price:       entity.Price(),
		SKU:         entity.SKU(),
	}
}

// CreateProductCommandHandler handles catalog product registration.
// The SKU uniqueness check and the insert run in the same transaction.
type CreateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewCreateProductCommandHandler creates a handler for product registration.
func NewCreateProductCommandHandler(uowFactory ProductUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the product registration command.
// Fails with an already-exists error when another product carries the SKU.
func (h *CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) (ProductResponse, error) {
	if err := cmd.Validate(); err != nil {
		return ProductResponse{}, err
	}

	entity, err := product.NewProduct(cmd.Name(), cmd.Description(), cmd.Price(), cmd.SKU())
	if err != nil {
		return ProductResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return ProductResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	taken, err := uow.ProductRepository().ExistsBySKU(ctx, cmd.SKU(), 0)
	if err != nil {
		return ProductResponse{}, err
	}
	if taken {
		return ProductResponse{}, errs.NewObjectAlreadyExistsError("sku", cmd.SKU())
	}

	created, err := uow.ProductRepository().Add(ctx, entity)
	if err != nil {
		return ProductResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ProductResponse{}, err
	}

	return productResponseFrom(created), nil
}

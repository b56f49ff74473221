package ports

import (
	"context"

	"microshop/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for catalog entries.
type ProductRepository interface {
	// Add persists a new product and returns it with its database-assigned
	// identity filled in.
	Add(ctx context.Context, entity *product.Product) (*product.Product, error)

	// Update persists changes to an existing product.
	// Returns an object-not-found error if the product does not exist.
	Update(ctx context.Context, entity *product.Product) error

	// Delete removes a product by identity. Deleting a product that does not
	// exist is not an error.
	Delete(ctx context.Context, id int64) error

	// GetByID retrieves a product by identity.
	// Returns an object-not-found error if no product matches.
	GetByID(ctx context.Context, id int64) (*product.Product, error)

	// ExistsBySKU reports whether a product other than excludeID carries the
	// given SKU. Pass excludeID zero when creating a new product.
	ExistsBySKU(ctx context.Context, sku string, excludeID int64) (bool, error)
}

// Package ports defines repository and unit-of-work interfaces consumed by the
// application layer. These interfaces establish contracts between the domain
// and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"microshop/internal/core/domain/model/kernel"
	"microshop/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
//
// Every load produces an independent in-memory copy of the aggregate with its
// items eagerly included. Writes are arbitrated through the optimistic
// concurrency token: Update verifies that the stored version still matches the
// version read at load time and increments it atomically, so at most one
// successful write per version is ever committed.
type OrderRepository interface {
	// Add persists a new order aggregate together with its items.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate under the
	// version check. Returns an object-not-found error if the order no
	// longer exists and a version-conflict error if another writer updated
	// the order since it was loaded; in the conflict case nothing is written.
	Update(ctx context.Context, aggregate *order.Order) error

	// GetByOrderNumber retrieves an order aggregate by its natural key,
	// eagerly including its items. Returns an object-not-found error if no
	// order matches.
	GetByOrderNumber(ctx context.Context, orderNumber kernel.OrderNumber) (*order.Order, error)

	// GetAllCreatedBefore retrieves orders still in Created status whose
	// creation time is before the cutoff. Used by the stale-order
	// cancellation job.
	GetAllCreatedBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}

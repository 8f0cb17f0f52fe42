// Package ports defines the contracts between the order engine and its
// infrastructure: order persistence, the food item catalog, the restaurant
// directory and the unit of work that binds them into one transaction.
package ports

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// An order is always saved and loaded together with its items.
type OrderRepository interface {
	// Add persists a new order aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order, items included. The write
	// succeeds only if the stored version equals aggregate.Version(); otherwise
	// it returns errs.ErrConcurrentModification. On success the aggregate's
	// version is advanced.
	Update(ctx context.Context, aggregate *order.Order) error

	// Delete removes the order and its items.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves an order by id. Missing orders yield errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// FindByCustomer returns the customer's orders, newest first.
	FindByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error)

	// FindByRestaurant returns the restaurant's orders, newest first.
	FindByRestaurant(ctx context.Context, restaurantID kernel.UUID) ([]*order.Order, error)

	// FindByStatuses returns orders in any of statuses, newest first.
	FindByStatuses(ctx context.Context, statuses ...order.Status) ([]*order.Order, error)

	// FindPendingCreatedBefore returns up to limit PENDING orders created before
	// the given time, oldest first. Used by the abandoned cart cleanup.
	FindPendingCreatedBefore(ctx context.Context, before time.Time, limit int) ([]*order.Order, error)
}

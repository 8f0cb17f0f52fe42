package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/restaurant"
)

// RestaurantDirectory resolves restaurants owned by the restaurant subsystem.
type RestaurantDirectory interface {
	// Get returns the restaurant or errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error)
}

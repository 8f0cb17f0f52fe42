package ports

import (
	"context"

	"ordering/internal/core/domain/model/catalog"
	"ordering/internal/core/domain/model/kernel"
)

// FoodItemCatalog is the inventory side of a restaurant's menu.
type FoodItemCatalog interface {
	// Get returns the current state of a food item or errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.UUID) (*catalog.FoodItem, error)

	// DecrementStock removes quantity units in one atomic step. It fails with a
	// *catalog.InsufficientStockError (or the unavailable-item error) and leaves
	// stock untouched if the item cannot supply quantity right now.
	DecrementStock(ctx context.Context, id kernel.UUID, quantity int) error

	// RestoreStock adds quantity units back.
	RestoreStock(ctx context.Context, id kernel.UUID, quantity int) error
}

package commands

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/catalog"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
	"ordering/internal/core/ports"
)

// placeOrder confirms o and decrements stock for every line. The caller's unit
// of work makes the decrements all-or-nothing: a failed decrement is returned
// before commit and the rollback undoes the ones that already succeeded.
func placeOrder(ctx context.Context, uow UoW, o *order.Order, now time.Time) error {
	r, err := uow.RestaurantDirectory().Get(ctx, o.RestaurantID())
	if err != nil {
		return err
	}

	foodItemCatalog := uow.FoodItemCatalog()
	foodItems, err := loadFoodItems(ctx, foodItemCatalog, o)
	if err != nil {
		return err
	}

	if err = services.NewOrderPlacer().Place(o, r, foodItems, now); err != nil {
		return err
	}

	for _, line := range o.Items() {
		if err = foodItemCatalog.DecrementStock(ctx, line.FoodItemID(), line.Quantity()); err != nil {
			return err
		}
	}

	return nil
}

// cancelOrder cancels o and, if stock had been decremented for it, restores
// every line by the same quantity.
func cancelOrder(ctx context.Context, uow UoW, o *order.Order, reason string) error {
	reserved := o.StockReserved()

	if err := o.Cancel(reason); err != nil {
		return err
	}

	if !reserved {
		return nil
	}

	foodItemCatalog := uow.FoodItemCatalog()
	for _, line := range o.Items() {
		if err := foodItemCatalog.RestoreStock(ctx, line.FoodItemID(), line.Quantity()); err != nil {
			return err
		}
	}

	return nil
}

func loadFoodItems(
	ctx context.Context,
	foodItemCatalog ports.FoodItemCatalog,
	o *order.Order,
) (map[kernel.UUID]*catalog.FoodItem, error) {
	foodItems := make(map[kernel.UUID]*catalog.FoodItem, len(o.Items()))
	for _, line := range o.Items() {
		item, err := foodItemCatalog.Get(ctx, line.FoodItemID())
		if err != nil {
			return nil, err
		}
		foodItems[item.ID()] = item
	}
	return foodItems, nil
}

// productOf snapshots a catalog entry for the cart.
func productOf(item *catalog.FoodItem) (order.Product, error) {
	return order.NewProduct(item.ID(), item.RestaurantID(), item.Name(), item.Price())
}

package services

import (
	"errors"
	"fmt"
	"time"

	"ordering/internal/core/domain/model/catalog"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/restaurant"
	"ordering/internal/pkg/errs"
)

// OrderPlacer is a domain service that takes a PENDING order to CONFIRMED.
//
// Business rules:
//   - only PENDING orders can be placed
//   - empty orders cannot be placed
//   - the restaurant must still accept orders
//   - every line is re-validated against the catalog as it is now, since stock
//     may have moved after the item was put in the cart
//
// Stock is not decremented here. The caller decrements it through the catalog
// in the same unit of work and rolls everything back if any decrement fails.
//
// Example usage:
//
//	placer := services.NewOrderPlacer()
//	if err := placer.Place(o, r, foodItems, time.Now()); err != nil {
//	    return err
//	}
//	for _, item := range o.Items() {
//	    // decrement stock for item.FoodItemID() by item.Quantity()
//	}
type OrderPlacer struct{}

func NewOrderPlacer() OrderPlacer {
	return OrderPlacer{}
}

// Place validates o against r and foodItems and confirms it at now.
//
// Parameters:
//   - o: the order to place
//   - r: the order's restaurant
//   - foodItems: the current catalog entries for every line, keyed by food item id
//   - now: confirmation time, used for the estimated delivery time
//
// Returns an invalid-argument error for rule violations, a not-found error for
// a line whose food item is missing from foodItems, and nil once o is CONFIRMED.
func (p OrderPlacer) Place(
	o *order.Order,
	r *restaurant.Restaurant,
	foodItems map[kernel.UUID]*catalog.FoodItem,
	now time.Time,
) error {
	if err := errors.Join(o.Validate(), r.Validate()); err != nil {
		return err
	}

	if o.Status() != order.Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("order cannot be placed, current status: %s", o.Status()),
		)
	}

	if o.IsEmpty() {
		return errs.NewValueIsInvalidErrorWithCause("order", errors.New("cannot place empty order"))
	}

	if !r.ID().IsEqual(o.RestaurantID()) {
		return errs.NewValueIsInvalidErrorWithCause("restaurant", fmt.Errorf("order belongs to restaurant %s", o.RestaurantID()))
	}

	if err := r.EnsureOrderable(); err != nil {
		return err
	}

	for _, line := range o.Items() {
		if err := p.checkLine(line, foodItems[line.FoodItemID()]); err != nil {
			return err
		}
	}

	return o.Confirm(now)
}

func (p OrderPlacer) checkLine(line order.Item, foodItem *catalog.FoodItem) error {
	if foodItem == nil {
		return errs.NewObjectNotFoundError("food item", line.FoodItemID().String())
	}

	if !foodItem.IsAvailable() {
		return errs.NewValueIsInvalidErrorWithCause(
			"item",
			fmt.Errorf("item %s is not available", foodItem.Name()),
		)
	}

	if line.Quantity() > foodItem.StockQuantity() {
		return catalog.NewInsufficientStockError(foodItem.ID(), foodItem.Name(), foodItem.StockQuantity(), line.Quantity())
	}

	return nil
}

package commands

import (
	"context"

	"ordering/internal/core/domain/model/catalog"
	"ordering/internal/core/domain/model/order"
)

// AddItemToCartCommandHandler adds a catalog item to a cart.
//
// The item must belong to the order's restaurant, be available and have enough
// stock for the resulting line quantity. Stock is only checked here; it is
// decremented when the order is placed.
//
// Example:
//
//	handler := NewAddItemToCartCommandHandler(uowFactory, locks)
//	cmd, _ := NewAddItemToCartCommand(orderID, pizzaID, 2)
//	o, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // order or item does not exist
//	}
type AddItemToCartCommandHandler struct {
	mutator orderMutator
}

// NewAddItemToCartCommandHandler creates the handler. locks must be shared by
// every handler that mutates orders.
func NewAddItemToCartCommandHandler(uowFactory UoWFactory, locks *OrderLocks) AddItemToCartCommandHandler {
	return AddItemToCartCommandHandler{
		mutator: newOrderMutator(uowFactory, locks),
	}
}

// Handle returns the updated order.
func (h AddItemToCartCommandHandler) Handle(ctx context.Context, cmd AddItemToCartCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.mutator.mutate(ctx, cmd.OrderID(), func(ctx context.Context, uow UoW, o *order.Order) error {
		item, err := uow.FoodItemCatalog().Get(ctx, cmd.ItemID())
		if err != nil {
			return err
		}

		if err = o.EnsureEditable(); err != nil {
			return err
		}

		if !item.BelongsTo(o.RestaurantID()) {
			return order.ErrItemFromAnotherRestaurant
		}

		if err = item.EnsureCanAdd(quantityInCart(o, item), cmd.Quantity()); err != nil {
			return err
		}

		product, err := productOf(item)
		if err != nil {
			return err
		}

		return o.AddItem(product, cmd.Quantity())
	})
}

func quantityInCart(o *order.Order, item *catalog.FoodItem) int {
	if line, found := o.Item(item.ID()); found {
		return line.Quantity()
	}
	return 0
}

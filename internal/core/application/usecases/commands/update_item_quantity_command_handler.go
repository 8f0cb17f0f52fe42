package commands

import (
	"context"

	"ordering/internal/core/domain/model/order"
)

// UpdateItemQuantityCommandHandler sets the quantity of a cart line, applying
// the same checks as adding an item. A removal only requires the catalog item to exist.
type UpdateItemQuantityCommandHandler struct {
	mutator orderMutator
}

func NewUpdateItemQuantityCommandHandler(uowFactory UoWFactory, locks *OrderLocks) UpdateItemQuantityCommandHandler {
	return UpdateItemQuantityCommandHandler{
		mutator: newOrderMutator(uowFactory, locks),
	}
}

func (h UpdateItemQuantityCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateItemQuantityCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.mutator.mutate(ctx, cmd.OrderID(), func(ctx context.Context, uow UoW, o *order.Order) error {
		item, err := uow.FoodItemCatalog().Get(ctx, cmd.ItemID())
		if err != nil {
			return err
		}

		if cmd.IsRemoval() {
			return o.RemoveItem(item.ID())
		}

		if err = o.EnsureEditable(); err != nil {
			return err
		}

		if !item.BelongsTo(o.RestaurantID()) {
			return order.ErrItemFromAnotherRestaurant
		}

		if err = item.EnsureCanSupply(cmd.Quantity()); err != nil {
			return err
		}

		product, err := productOf(item)
		if err != nil {
			return err
		}

		return o.SetItemQuantity(product, cmd.Quantity())
	})
}

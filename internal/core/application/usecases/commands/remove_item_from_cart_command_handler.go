package commands

import (
	"context"

	"ordering/internal/core/domain/model/order"
)

// RemoveItemFromCartCommandHandler removes a line from a cart. The item must
// exist in the catalog; if it is not in the cart the order is left unchanged.
type RemoveItemFromCartCommandHandler struct {
	mutator orderMutator
}

func NewRemoveItemFromCartCommandHandler(uowFactory UoWFactory, locks *OrderLocks) RemoveItemFromCartCommandHandler {
	return RemoveItemFromCartCommandHandler{
		mutator: newOrderMutator(uowFactory, locks),
	}
}

func (h RemoveItemFromCartCommandHandler) Handle(
	ctx context.Context,
	cmd RemoveItemFromCartCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.mutator.mutate(ctx, cmd.OrderID(), func(ctx context.Context, uow UoW, o *order.Order) error {
		if _, err := uow.FoodItemCatalog().Get(ctx, cmd.ItemID()); err != nil {
			return err
		}

		return o.RemoveItem(cmd.ItemID())
	})
}

package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var ErrRemoveItemFromCartCommandIsNotConstructed = errors.New(
	"RemoveItemFromCartCommand must be created via NewRemoveItemFromCartCommand constructor",
)

// RemoveItemFromCartCommand drops a food item from a PENDING order.
type RemoveItemFromCartCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	itemID  kernel.UUID

	guard guard.ConstructorGuard
}

func NewRemoveItemFromCartCommand(orderID, itemID kernel.UUID) (RemoveItemFromCartCommand, error) {
	if err := errors.Join(orderID.Validate(), itemID.Validate()); err != nil {
		return RemoveItemFromCartCommand{}, err
	}

	return RemoveItemFromCartCommand{
		orderID: orderID,
		itemID:  itemID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c RemoveItemFromCartCommand) Validate() error {
	return c.guard.Validate(ErrRemoveItemFromCartCommandIsNotConstructed)
}

func (c RemoveItemFromCartCommand) OrderID() kernel.UUID { return c.orderID }
func (c RemoveItemFromCartCommand) ItemID() kernel.UUID  { return c.itemID }

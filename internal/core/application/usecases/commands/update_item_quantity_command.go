package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var ErrUpdateItemQuantityCommandIsNotConstructed = errors.New(
	"UpdateItemQuantityCommand must be created via NewUpdateItemQuantityCommand constructor",
)

// UpdateItemQuantityCommand sets a cart line to exactly quantity units.
// Zero or a negative quantity removes the line.
type UpdateItemQuantityCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	itemID   kernel.UUID
	quantity int

	guard guard.ConstructorGuard
}

func NewUpdateItemQuantityCommand(orderID, itemID kernel.UUID, quantity int) (UpdateItemQuantityCommand, error) {
	if err := errors.Join(orderID.Validate(), itemID.Validate()); err != nil {
		return UpdateItemQuantityCommand{}, err
	}

	return UpdateItemQuantityCommand{
		orderID:  orderID,
		itemID:   itemID,
		quantity: quantity,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateItemQuantityCommand) Validate() error {
	return c.guard.Validate(ErrUpdateItemQuantityCommandIsNotConstructed)
}

func (c UpdateItemQuantityCommand) OrderID() kernel.UUID { return c.orderID }
func (c UpdateItemQuantityCommand) ItemID() kernel.UUID  { return c.itemID }
func (c UpdateItemQuantityCommand) Quantity() int        { return c.quantity }

// IsRemoval reports whether the command removes the line.
func (c UpdateItemQuantityCommand) IsRemoval() bool {
	return c.quantity <= 0
}

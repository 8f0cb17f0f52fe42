package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	ErrAddItemToCartCommandIsNotConstructed = errors.New(
		"AddItemToCartCommand must be created via NewAddItemToCartCommand constructor",
	)
	ErrQuantityMustBePositive = errs.NewValueIsInvalidErrorWithCause(
		"quantity", errors.New("must be greater than 0"),
	)
)

// AddItemToCartCommand puts quantity units of a food item into a PENDING order.
type AddItemToCartCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	itemID   kernel.UUID
	quantity int

	guard guard.ConstructorGuard
}

func NewAddItemToCartCommand(orderID, itemID kernel.UUID, quantity int) (AddItemToCartCommand, error) {
	cmd := AddItemToCartCommand{guard: guard.NewConstructorGuard()}

	var quantityErr error
	if quantity <= 0 {
		quantityErr = ErrQuantityMustBePositive
	}

	if err := errors.Join(orderID.Validate(), itemID.Validate(), quantityErr); err != nil {
		return AddItemToCartCommand{}, err
	}

	cmd.orderID = orderID
	cmd.itemID = itemID
	cmd.quantity = quantity
	return cmd, nil
}

func (c AddItemToCartCommand) Validate() error {
	return c.guard.Validate(ErrAddItemToCartCommandIsNotConstructed)
}

func (c AddItemToCartCommand) OrderID() kernel.UUID { return c.orderID }
func (c AddItemToCartCommand) ItemID() kernel.UUID  { return c.itemID }
func (c AddItemToCartCommand) Quantity() int        { return c.quantity }

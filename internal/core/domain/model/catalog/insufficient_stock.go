package catalog

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

var ErrInsufficientStock = errors.New("insufficient stock")

// InsufficientStockError names the item and both counts. It is an invalid-argument error.
// InCart is the quantity a cart already holds when Requested more were asked for.
type InsufficientStockError struct {
	ItemID    kernel.UUID
	ItemName  string
	Available int
	Requested int
	InCart    int
}

func NewInsufficientStockError(itemID kernel.UUID, itemName string, available, requested int) *InsufficientStockError {
	return &InsufficientStockError{ItemID: itemID, ItemName: itemName, Available: available, Requested: requested}
}

func (e *InsufficientStockError) Error() string {
	name := e.ItemName
	if name == "" {
		name = e.ItemID.String()
	}
	msg := fmt.Sprintf("%s for item %s: available %d, requested %d", ErrInsufficientStock, name, e.Available, e.Requested)
	if e.InCart > 0 {
		msg += fmt.Sprintf(", already in cart %d", e.InCart)
	}
	return msg
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

func (e *InsufficientStockError) Is(target error) bool {
	return target == errs.ErrInvalidArgument
}

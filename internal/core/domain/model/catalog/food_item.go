// Package catalog models food items as seen by the order engine: a price, an
// availability flag and a stock count owned by the restaurant's menu.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrFoodItemIsNotConstructed = errors.New("FoodItem must be created via NewFoodItem constructor")
	// ErrItemIsNotAvailable is returned for items switched off on the menu.
	ErrItemIsNotAvailable = errs.NewValueIsInvalidErrorWithCause("item", errors.New("item is not available"))
)

// FoodItem is a menu entry. Stock changes go through TakeStock and ReturnStock so
// the count never becomes negative.
type FoodItem struct {
	id           kernel.UUID
	restaurantID kernel.UUID
	name         string
	price        decimal.Decimal
	available    bool
	stock        int
	guard        guard.ConstructorGuard
}

func NewFoodItem(
	id, restaurantID kernel.UUID,
	name string,
	price decimal.Decimal,
	available bool,
	stock int,
) (*FoodItem, error) {
	var nameErr, priceErr, stockErr error
	if strings.TrimSpace(name) == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}
	if price.IsNegative() {
		priceErr = errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is negative", price))
	}
	if stock < 0 {
		stockErr = errs.NewValueIsInvalidErrorWithCause("stock quantity", fmt.Errorf("%d is negative", stock))
	}

	if err := errors.Join(id.Validate(), restaurantID.Validate(), nameErr, priceErr, stockErr); err != nil {
		return nil, err
	}

	return &FoodItem{
		id:           id,
		restaurantID: restaurantID,
		name:         name,
		price:        price,
		available:    available,
		stock:        stock,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (f *FoodItem) Validate() error {
	if f == nil {
		return ErrFoodItemIsNotConstructed
	}
	return f.guard.Validate(ErrFoodItemIsNotConstructed)
}

func (f *FoodItem) ID() kernel.UUID           { return f.id }
func (f *FoodItem) RestaurantID() kernel.UUID { return f.restaurantID }
func (f *FoodItem) Name() string              { return f.name }
func (f *FoodItem) Price() decimal.Decimal    { return f.price }
func (f *FoodItem) IsAvailable() bool         { return f.available }
func (f *FoodItem) StockQuantity() int        { return f.stock }

// BelongsTo reports whether the item is on the menu of restaurantID.
func (f *FoodItem) BelongsTo(restaurantID kernel.UUID) bool {
	return f.restaurantID.IsEqual(restaurantID)
}

// EnsureCanSupply checks availability and that quantity does not exceed stock.
func (f *FoodItem) EnsureCanSupply(quantity int) error {
	if !f.available {
		return ErrItemIsNotAvailable
	}
	if quantity > f.stock {
		return NewInsufficientStockError(f.id, f.name, f.stock, quantity)
	}
	return nil
}

// EnsureCanAdd checks that quantity more units fit in stock next to the
// inCart units a cart already holds.
func (f *FoodItem) EnsureCanAdd(inCart, quantity int) error {
	if !f.available {
		return ErrItemIsNotAvailable
	}
	if inCart+quantity > f.stock {
		stockErr := NewInsufficientStockError(f.id, f.name, f.stock, quantity)
		stockErr.InCart = inCart
		return stockErr
	}
	return nil
}

// TakeStock atomically (from the caller's point of view) checks and decrements stock.
func (f *FoodItem) TakeStock(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if err := f.EnsureCanSupply(quantity); err != nil {
		return err
	}
	f.stock -= quantity
	return nil
}

// ReturnStock adds quantity back, used when a confirmed order is cancelled.
func (f *FoodItem) ReturnStock(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	f.stock += quantity
	return nil
}

// SetAvailable switches the item on or off the menu.
func (f *FoodItem) SetAvailable(available bool) {
	f.available = available
}

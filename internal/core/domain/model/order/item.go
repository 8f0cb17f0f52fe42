package order

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrProductIsNotConstructed = errs.NewValueIsRequiredError("item")

// Product is the snapshot of a food item taken when it is put in the cart.
type Product struct {
	foodItemID   kernel.UUID
	restaurantID kernel.UUID
	name         string
	price        decimal.Decimal
	guard        guard.ConstructorGuard
}

func NewProduct(foodItemID, restaurantID kernel.UUID, name string, price decimal.Decimal) (Product, error) {
	var priceErr error
	if price.IsNegative() {
		priceErr = errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is negative", price))
	}
	if err := errors.Join(foodItemID.Validate(), restaurantID.Validate(), priceErr); err != nil {
		return Product{}, err
	}
	return Product{
		foodItemID:   foodItemID,
		restaurantID: restaurantID,
		name:         name,
		price:        price,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (p Product) Validate() error {
	return p.guard.Validate(ErrProductIsNotConstructed)
}

func (p Product) FoodItemID() kernel.UUID   { return p.foodItemID }
func (p Product) RestaurantID() kernel.UUID { return p.restaurantID }
func (p Product) Name() string              { return p.name }
func (p Product) Price() decimal.Decimal    { return p.price }

// Item is one line of an order. Quantity is always at least 1.
type Item struct {
	product  Product
	quantity int
}

func (i Item) Product() Product { return i.product }
func (i Item) FoodItemID() kernel.UUID {
	return i.product.foodItemID
}
func (i Item) Price() decimal.Decimal { return i.product.price }
func (i Item) Quantity() int          { return i.quantity }

// Subtotal is price × quantity.
func (i Item) Subtotal() decimal.Decimal {
	return i.product.price.Mul(decimal.NewFromInt(int64(i.quantity)))
}

func validateQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	return nil
}

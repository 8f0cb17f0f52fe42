package catalog_test

import (
	"testing"

	"ordering/internal/core/domain/model/catalog"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPizza(t *testing.T, stock int) *catalog.FoodItem {
	t.Helper()
	item, err := catalog.NewFoodItem(kernel.NewUUID(), kernel.NewUUID(), "Pizza", decimal.NewFromInt(25000), true, stock)
	require.NoError(t, err)
	return item
}

func TestNewFoodItem(t *testing.T) {
	t.Run("should create valid item", func(t *testing.T) {
		item := newPizza(t, 10)

		require.NoError(t, item.Validate())
		assert.Equal(t, "Pizza", item.Name())
		assert.True(t, decimal.NewFromInt(25000).Equal(item.Price()))
		assert.Equal(t, 10, item.StockQuantity())
		assert.True(t, item.IsAvailable())
	})

	t.Run("should reject invalid fields", func(t *testing.T) {
		item, err := catalog.NewFoodItem(kernel.UUID{}, kernel.NewUUID(), "", decimal.NewFromInt(-1), true, -3)

		require.Error(t, err)
		assert.Nil(t, item)
		require.ErrorIs(t, err, errs.ErrInvalidArgument)
		assert.Contains(t, err.Error(), "name")
		assert.Contains(t, err.Error(), "price")
		assert.Contains(t, err.Error(), "stock quantity")
	})
}

func TestFoodItem_EnsureCanSupply(t *testing.T) {
	t.Run("quantity equal to stock succeeds", func(t *testing.T) {
		require.NoError(t, newPizza(t, 5).EnsureCanSupply(5))
	})

	t.Run("quantity above stock cites both numbers", func(t *testing.T) {
		err := newPizza(t, 5).EnsureCanSupply(6)

		require.ErrorIs(t, err, errs.ErrInvalidArgument)
		require.ErrorIs(t, err, catalog.ErrInsufficientStock)
		var stockErr *catalog.InsufficientStockError
		require.ErrorAs(t, err, &stockErr)
		assert.Equal(t, 5, stockErr.Available)
		assert.Equal(t, 6, stockErr.Requested)
		assert.Contains(t, err.Error(), "available 5, requested 6")
	})

	t.Run("unavailable item is rejected", func(t *testing.T) {
		item := newPizza(t, 5)
		item.SetAvailable(false)

		err := item.EnsureCanSupply(1)

		require.ErrorIs(t, err, errs.ErrInvalidArgument)
		assert.Contains(t, err.Error(), "item is not available")
	})
}

func TestFoodItem_TakeAndReturnStock(t *testing.T) {
	item := newPizza(t, 10)

	require.NoError(t, item.TakeStock(2))
	assert.Equal(t, 8, item.StockQuantity())

	require.Error(t, item.TakeStock(9))
	assert.Equal(t, 8, item.StockQuantity(), "failed take must not change stock")

	require.NoError(t, item.ReturnStock(2))
	assert.Equal(t, 10, item.StockQuantity())

	require.ErrorIs(t, item.TakeStock(0), errs.ErrInvalidArgument)
	require.ErrorIs(t, item.ReturnStock(-1), errs.ErrInvalidArgument)
}

func TestFoodItem_EnsureCanAdd(t *testing.T) {
	t.Run("fits next to the cart quantity", func(t *testing.T) {
		require.NoError(t, newPizza(t, 5).EnsureCanAdd(2, 3))
	})

	t.Run("over stock names both the request and the cart", func(t *testing.T) {
		err := newPizza(t, 5).EnsureCanAdd(2, 4)

		require.ErrorIs(t, err, catalog.ErrInsufficientStock)
		assert.Contains(t, err.Error(), "available 5, requested 4, already in cart 2")
	})

	t.Run("empty cart keeps the short message", func(t *testing.T) {
		err := newPizza(t, 5).EnsureCanAdd(0, 6)

		require.Error(t, err)
		assert.NotContains(t, err.Error(), "already in cart")
	})
}

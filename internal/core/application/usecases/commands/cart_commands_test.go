package commands_test

import (
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/catalog"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderCommandHandler_Handle(t *testing.T) {
	t.Run("should create pending empty order", func(t *testing.T) {
		f := newFixture(t)

		o := f.createOrder(t)

		stored := f.getOrder(t, o.ID())
		assert.Equal(t, order.Pending, stored.Status())
		assert.True(t, stored.Total().IsZero())
		assert.True(t, stored.IsEmpty())
	})

	t.Run("should fail for unknown restaurant", func(t *testing.T) {
		f := newFixture(t)
		cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "a", "p", "")
		require.NoError(t, err)

		_, err = commands.NewCreateOrderCommandHandler(f.uowFactory).Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should reject not constructed command", func(t *testing.T) {
		f := newFixture(t)

		_, err := commands.NewCreateOrderCommandHandler(f.uowFactory).Handle(t.Context(), commands.CreateOrderCommand{})

		require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	})
}

func TestAddItemToCartCommandHandler_Handle(t *testing.T) {
	t.Run("totals and counts", func(t *testing.T) {
		f := newFixture(t)
		o := f.createOrder(t)

		f.addItem(t, o.ID(), f.pizza, 2)
		updated := f.addItem(t, o.ID(), f.drink, 1)

		assert.True(t, updated.Total().Equal(decimal.NewFromInt(65000)))
		assert.Len(t, updated.Items(), 2)
		assert.Equal(t, 3, updated.TotalItems())
		assert.True(t, f.getOrder(t, o.ID()).Total().Equal(decimal.NewFromInt(65000)))
	})

	t.Run("adding the same item increments the line", func(t *testing.T) {
		f := newFixture(t)
		o := f.createOrder(t)

		f.addItem(t, o.ID(), f.pizza, 2)
		updated := f.addItem(t, o.ID(), f.pizza, 3)

		require.Len(t, updated.Items(), 1)
		assert.Equal(t, 5, updated.TotalItems())
	})

	t.Run("boundary: quantity equal to stock succeeds", func(t *testing.T) {
		f := newFixture(t)
		o := f.createOrder(t)

		updated := f.addItem(t, o.ID(), f.pizza, 10)

		assert.Equal(t, 10, updated.TotalItems())
		assert.Equal(t, 10, f.stockOf(t, f.pizza), "adding to cart does not reserve stock")
	})

	t.Run("boundary: one more than stock fails with both counts", func(t *testing.T) {
		f := newFixture(t)
		o := f.createOrder(t)
		cmd, err := commands.NewAddItemToCartCommand(o.ID(), f.pizza.ID(), 11)
		require.NoError(t, err)

		_, err = commands.NewAddItemToCartCommandHandler(f.uowFactory, f.locks).Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrInvalidArgument)
		var stockErr *catalog.InsufficientStockError
		require.ErrorAs(t, err, &stockErr)
		assert.Equal(t, 10, stockErr.Available)
		assert.Equal(t, 11, stockErr.Requested)
		assert.Contains(t, err.Error(), "available 10, requested 11")
		assert.True(t, f.getOrder(t, o.ID()).IsEmpty())
	})

	t.Run("stock error names the cart quantity next to the requested one", func(t *testing.T) {
		f := newFixture(t)
		o := f.createOrder(t)
		f.addItem(t, o.ID(), f.pizza, 2)
		cmd, err := commands.NewAddItemToCartCommand(o.ID(), f.pizza.ID(), 9)
		require.NoError(t, err)

		_, err = commands.NewAddItemToCartCommandHandler(f.uowFactory, f.locks).Handle(t.Context(), cmd)

		var stockErr *catalog.InsufficientStockError
		require.ErrorAs(t, err, &stockErr)
		assert.Equal(t, 9, stockErr.Requested)
		assert.Equal(t, 2, stockErr.InCart)
		assert.Contains(t, err.Error(), "available 10, requested 9, already in cart 2")
		assert.Equal(t, 2, f.getOrder(t, o.ID()).TotalItems())
	})

	t.Run("should reject unavailable item", func(t *testing.T) {
		f := newFixture(t)
		o := f.createOrder(t)
		off, err := catalog.NewFoodItem(kernel.NewUUID(), f.restaurant.ID(), "Seasonal", decimal.NewFromInt(1), false, 5)
		require.NoError(t, err)
		require.NoError(t, f.store.PutFoodItem(off))
		cmd, err := commands.NewAddItemToCartCommand(o.ID(), off.ID(), 1)
		require.NoError(t, err)

		_, err = commands.NewAddItemToCartCommandHandler(f.uowFactory, f.locks).Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrInvalidArgument)
		assert.Contains(t, err.Error(), "item is not available")
	})

	t.Run("should reject item of another restaurant", func(t *testing.T) {
		f := newFixture(t)
		o := f.createOrder(t)
		foreign := newFoodItem(t, f.store, kernel.NewUUID(), "Sushi", 30000, 5)
		cmd, err := commands.NewAddItemToCartCommand(o.ID(), foreign.ID(), 1)
		require.NoError(t, err)

		_, err = commands.NewAddItemToCartCommandHandler(f.uowFactory, f.locks).Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrInvalidArgument)
		assert.Contains(t, err.Error(), "item does not belong to order's restaurant")
	})

	t.Run("should report missing order and item as not found", func(t *testing.T) {
		f := newFixture(t)
		o := f.createOrder(t)
		handler := commands.NewAddItemToCartCommandHandler(f.uowFactory, f.locks)

		missingOrder, err := commands.NewAddItemToCartCommand(kernel.NewUUID(), f.pizza.ID(), 1)
		require.NoError(t, err)
		_, err = handler.Handle(t.Context(), missingOrder)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)

		missingItem, err := commands.NewAddItemToCartCommand(o.ID(), kernel.NewUUID(), 1)
		require.NoError(t, err)
		_, err = handler.Handle(t.Context(), missingItem)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should refuse confirmed order", func(t *testing.T) {
		f := newFixture(t)
		o := f.createOrder(t)
		f.addItem(t, o.ID(), f.pizza, 1)
		_, err := f.place(t.Context(), o.ID())
		require.NoError(t, err)
		cmd, err := commands.NewAddItemToCartCommand(o.ID(), f.drink.ID(), 1)
		require.NoError(t, err)

		_, err = commands.NewAddItemToCartCommandHandler(f.uowFactory, f.locks).Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrInvalidArgument)
		assert.Contains(t, err.Error(), "cannot modify order with status: CONFIRMED")
	})
}

func TestNewAddItemToCartCommand(t *testing.T) {
	_, err := commands.NewAddItemToCartCommand(kernel.UUID{}, kernel.UUID{}, 0)

	require.ErrorIs(t, err, errs.ErrInvalidArgument)
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	require.ErrorIs(t, err, commands.ErrQuantityMustBePositive)
}

func TestRemoveItemFromCartCommandHandler_Handle(t *testing.T) {
	remove := func(t *testing.T, f *fixture, orderID, itemID kernel.UUID) (*order.Order, error) {
		t.Helper()
		cmd, err := commands.NewRemoveItemFromCartCommand(orderID, itemID)
		require.NoError(t, err)
		return commands.NewRemoveItemFromCartCommandHandler(f.uowFactory, f.locks).Handle(t.Context(), cmd)
	}

	t.Run("should remove line", func(t *testing.T) {
		f := newFixture(t)
		o := f.createOrder(t)
		f.addItem(t, o.ID(), f.pizza, 2)
		f.addItem(t, o.ID(), f.drink, 1)

		updated, err := remove(t, f, o.ID(), f.pizza.ID())

		require.NoError(t, err)
		assert.True(t, updated.Total().Equal(decimal.NewFromInt(15000)))
	})

	t.Run("removing an item absent from the cart leaves the order unchanged", func(t *testing.T) {
		f := newFixture(t)
		o := f.createOrder(t)
		before := f.addItem(t, o.ID(), f.pizza, 2)

		updated, err := remove(t, f, o.ID(), f.drink.ID())

		require.NoError(t, err)
		assert.Equal(t, before.Items(), updated.Items())
		assert.True(t, before.Total().Equal(updated.Total()))
	})

	t.Run("unknown catalog item is not found", func(t *testing.T) {
		f := newFixture(t)
		o := f.createOrder(t)

		_, err := remove(t, f, o.ID(), kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestUpdateItemQuantityCommandHandler_Handle(t *testing.T) {
	update := func(t *testing.T, f *fixture, orderID, itemID kernel.UUID, quantity int) (*order.Order, error) {
		t.Helper()
		cmd, err := commands.NewUpdateItemQuantityCommand(orderID, itemID, quantity)
		require.NoError(t, err)
		return commands.NewUpdateItemQuantityCommandHandler(f.uowFactory, f.locks).Handle(t.Context(), cmd)
	}

	t.Run("zero quantity removes the line", func(t *testing.T) {
		f := newFixture(t)
		o := f.createOrder(t)
		f.addItem(t, o.ID(), f.pizza, 2)
		f.addItem(t, o.ID(), f.drink, 1)

		updated, err := update(t, f, o.ID(), f.pizza.ID(), 0)

		require.NoError(t, err)
		require.Len(t, updated.Items(), 1)
		assert.True(t, updated.Items()[0].FoodItemID().IsEqual(f.drink.ID()))
		assert.True(t, updated.Total().Equal(decimal.NewFromInt(15000)))
	})

	t.Run("sets quantity exactly", func(t *testing.T) {
		f := newFixture(t)
		o := f.createOrder(t)
		f.addItem(t, o.ID(), f.pizza, 2)

		updated, err := update(t, f, o.ID(), f.pizza.ID(), 4)

		require.NoError(t, err)
		assert.Equal(t, 4, updated.TotalItems())
		assert.True(t, updated.Total().Equal(decimal.NewFromInt(100000)))
	})

	t.Run("rejects more than stock", func(t *testing.T) {
		f := newFixture(t)
		o := f.createOrder(t)
		f.addItem(t, o.ID(), f.pizza, 2)

		_, err := update(t, f, o.ID(), f.pizza.ID(), 11)

		require.ErrorIs(t, err, catalog.ErrInsufficientStock)
		assert.Equal(t, 2, f.getOrder(t, o.ID()).TotalItems())
	})
}

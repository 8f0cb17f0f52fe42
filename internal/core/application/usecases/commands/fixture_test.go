package commands_test

import (
	"context"
	"testing"

	"ordering/internal/adapters/out/memory"
	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/catalog"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/restaurant"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type uowFactoryFunc func() commands.UoW

func (f uowFactoryFunc) Create() commands.UoW { return f() }

type orderUoWFactoryFunc func() commands.OrderUoW

func (f orderUoWFactoryFunc) Create() commands.OrderUoW { return f() }

// fixture wires every handler to one in-memory store holding an approved
// restaurant with two menu items of stock 10 each.
type fixture struct {
	store      *memory.Store
	restaurant *restaurant.Restaurant
	pizza      *catalog.FoodItem
	drink      *catalog.FoodItem

	uowFactory      commands.UoWFactory
	orderUoWFactory commands.OrderUoWFactory
	locks           *commands.OrderLocks
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := memory.NewStore()
	factory := memory.NewUnitOfWorkFactory(store)

	r, err := restaurant.NewRestaurant(kernel.NewUUID(), "Warung Pizza", restaurant.Approved)
	require.NoError(t, err)
	require.NoError(t, store.PutRestaurant(r))

	pizza := newFoodItem(t, store, r.ID(), "Pizza", 25000, 10)
	drink := newFoodItem(t, store, r.ID(), "Es Teh", 15000, 10)

	return &fixture{
		store:      store,
		restaurant: r,
		pizza:      pizza,
		drink:      drink,
		uowFactory: uowFactoryFunc(func() commands.UoW {
			return factory.Create()
		}),
		orderUoWFactory: orderUoWFactoryFunc(func() commands.OrderUoW {
			return factory.Create()
		}),
		locks: commands.NewOrderLocks(),
	}
}

func newFoodItem(
	t *testing.T,
	store *memory.Store,
	restaurantID kernel.UUID,
	name string,
	price int64,
	stock int,
) *catalog.FoodItem {
	t.Helper()

	item, err := catalog.NewFoodItem(kernel.NewUUID(), restaurantID, name, decimal.NewFromInt(price), true, stock)
	require.NoError(t, err)
	require.NoError(t, store.PutFoodItem(item))
	return item
}

func (f *fixture) createOrder(t *testing.T) *order.Order {
	t.Helper()

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), f.restaurant.ID(), "Jl. Sudirman 1", "+62811111", "",
	)
	require.NoError(t, err)

	o, err := commands.NewCreateOrderCommandHandler(f.uowFactory).Handle(t.Context(), cmd)
	require.NoError(t, err)
	return o
}

func (f *fixture) addItem(t *testing.T, orderID kernel.UUID, item *catalog.FoodItem, quantity int) *order.Order {
	t.Helper()

	cmd, err := commands.NewAddItemToCartCommand(orderID, item.ID(), quantity)
	require.NoError(t, err)

	o, err := commands.NewAddItemToCartCommandHandler(f.uowFactory, f.locks).Handle(t.Context(), cmd)
	require.NoError(t, err)
	return o
}

func (f *fixture) place(ctx context.Context, orderID kernel.UUID) (*order.Order, error) {
	cmd, err := commands.NewPlaceOrderCommand(orderID)
	if err != nil {
		return nil, err
	}
	return commands.NewPlaceOrderCommandHandler(f.uowFactory, f.locks).Handle(ctx, cmd)
}

func (f *fixture) updateStatus(ctx context.Context, orderID kernel.UUID, status order.Status) (*order.Order, error) {
	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status)
	if err != nil {
		return nil, err
	}
	return commands.NewUpdateOrderStatusCommandHandler(f.uowFactory, f.locks).Handle(ctx, cmd)
}

func (f *fixture) cancel(ctx context.Context, orderID kernel.UUID, reason string) (*order.Order, error) {
	cmd, err := commands.NewCancelOrderCommand(orderID, reason)
	if err != nil {
		return nil, err
	}
	return commands.NewCancelOrderCommandHandler(f.uowFactory, f.locks).Handle(ctx, cmd)
}

func (f *fixture) getOrder(t *testing.T, id kernel.UUID) *order.Order {
	t.Helper()

	o, err := f.store.OrderRepository().Get(t.Context(), id)
	require.NoError(t, err)
	return o
}

func (f *fixture) stockOf(t *testing.T, item *catalog.FoodItem) int {
	t.Helper()

	current, err := f.store.FoodItemCatalog().Get(t.Context(), item.ID())
	require.NoError(t, err)
	return current.StockQuantity()
}

package commands_test

import (
	"context"
	"time"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/catalog"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/restaurant"
	"ordering/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) FindByCustomer(_ context.Context, _ kernel.UUID) ([]*order.Order, error) {
	return nil, nil
}

func (m *MockOrderRepository) FindByRestaurant(_ context.Context, _ kernel.UUID) ([]*order.Order, error) {
	return nil, nil
}

func (m *MockOrderRepository) FindByStatuses(_ context.Context, _ ...order.Status) ([]*order.Order, error) {
	return nil, nil
}

func (m *MockOrderRepository) FindPendingCreatedBefore(
	_ context.Context,
	_ time.Time,
	_ int,
) ([]*order.Order, error) {
	return nil, nil
}

type MockRestaurantDirectory struct{ mock.Mock }

func (m *MockRestaurantDirectory) Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*restaurant.Restaurant)
	return r, args.Error(1)
}

type MockFoodItemCatalog struct{ mock.Mock }

func (m *MockFoodItemCatalog) Get(ctx context.Context, id kernel.UUID) (*catalog.FoodItem, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(*catalog.FoodItem)
	return item, args.Error(1)
}

func (m *MockFoodItemCatalog) DecrementStock(ctx context.Context, id kernel.UUID, quantity int) error {
	args := m.Called(ctx, id, quantity)
	return args.Error(0)
}

func (m *MockFoodItemCatalog) RestoreStock(ctx context.Context, id kernel.UUID, quantity int) error {
	args := m.Called(ctx, id, quantity)
	return args.Error(0)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) FoodItemCatalog() ports.FoodItemCatalog {
	args := m.Called()
	return args.Get(0).(ports.FoodItemCatalog)
}

func (m *MockUoW) RestaurantDirectory() ports.RestaurantDirectory {
	args := m.Called()
	return args.Get(0).(ports.RestaurantDirectory)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

package cmd

import (
	"log/slog"

	httpadapter "ordering/internal/adapters/in/http"
	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/ports"
	"ordering/internal/jobs"
)

// CompositionRoot wires use cases to the selected storage. Every command
// handler shares one set of order locks so mutations of the same order are
// serialized across handlers.
type CompositionRoot struct {
	cfg        Config
	logger     *slog.Logger
	uowFactory ports.UnitOfWorkFactory
	orders     ports.OrderRepository
	locks      *commands.OrderLocks
}

func NewCompositionRoot(cfg Config, storage Storage, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		cfg:        cfg,
		logger:     logger,
		uowFactory: storage.UoWFactory,
		orders:     storage.Orders,
		locks:      commands.NewOrderLocks(),
	}
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) uow() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoW() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateAddItemToCartCommandHandler() commands.AddItemToCartCommandHandler {
	return commands.NewAddItemToCartCommandHandler(c.uow(), c.locks)
}

func (c *CompositionRoot) CreateRemoveItemFromCartCommandHandler() commands.RemoveItemFromCartCommandHandler {
	return commands.NewRemoveItemFromCartCommandHandler(c.uow(), c.locks)
}

func (c *CompositionRoot) CreateUpdateItemQuantityCommandHandler() commands.UpdateItemQuantityCommandHandler {
	return commands.NewUpdateItemQuantityCommandHandler(c.uow(), c.locks)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.uow(), c.locks)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.uow(), c.locks)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.uow(), c.locks)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoW(), c.locks)
}

func (c *CompositionRoot) CreateExpireAbandonedCartsCommandHandler() commands.ExpireAbandonedCartsCommandHandler {
	return commands.NewExpireAbandonedCartsCommandHandler(c.uow(), c.locks)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.orders)
}

func (c *CompositionRoot) CreateGetCustomerOrdersQueryHandler() queries.GetCustomerOrdersQueryHandler {
	return queries.NewGetCustomerOrdersQueryHandler(c.orders)
}

func (c *CompositionRoot) CreateGetCustomerOrderStatisticsQueryHandler() queries.GetCustomerOrderStatisticsQueryHandler {
	return queries.NewGetCustomerOrderStatisticsQueryHandler(c.orders)
}

func (c *CompositionRoot) CreateGetRestaurantOrderStatisticsQueryHandler() queries.GetRestaurantOrderStatisticsQueryHandler {
	return queries.NewGetRestaurantOrderStatisticsQueryHandler(c.orders)
}

func (c *CompositionRoot) CreateGetOrdersByStatusQueryHandler() queries.GetOrdersByStatusQueryHandler {
	return queries.NewGetOrdersByStatusQueryHandler(c.orders)
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		CreateOrder:        c.CreateCreateOrderCommandHandler(),
		AddItemToCart:      c.CreateAddItemToCartCommandHandler(),
		RemoveItemFromCart: c.CreateRemoveItemFromCartCommandHandler(),
		UpdateItemQuantity: c.CreateUpdateItemQuantityCommandHandler(),
		PlaceOrder:         c.CreatePlaceOrderCommandHandler(),
		UpdateOrderStatus:  c.CreateUpdateOrderStatusCommandHandler(),
		CancelOrder:        c.CreateCancelOrderCommandHandler(),
		DeleteOrder:        c.CreateDeleteOrderCommandHandler(),

		GetOrder:                     c.CreateGetOrderQueryHandler(),
		GetCustomerOrders:            c.CreateGetCustomerOrdersQueryHandler(),
		GetCustomerOrderStatistics:   c.CreateGetCustomerOrderStatisticsQueryHandler(),
		GetRestaurantOrderStatistics: c.CreateGetRestaurantOrderStatisticsQueryHandler(),
		GetOrdersByStatus:            c.CreateGetOrdersByStatusQueryHandler(),
	}, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateExpireAbandonedCartsCommandHandler(),
		jobs.AbandonedCartCleanupSettings{
			TTL:       c.cfg.CartTTL,
			Schedule:  c.cfg.CartCleanupSchedule,
			BatchSize: c.cfg.CartCleanupBatch,
		},
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

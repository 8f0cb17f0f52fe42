// Package http exposes the ordering use cases over a JSON API built on echo.
// Handlers only translate between HTTP and commands or queries; every rule
// lives in the application layer.
package http

import (
	"log/slog"
	"net/http"
	"strings"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// Handlers groups the use cases the server dispatches to.
type Handlers struct {
	CreateOrder        commands.CreateOrderCommandHandler
	AddItemToCart      commands.AddItemToCartCommandHandler
	RemoveItemFromCart commands.RemoveItemFromCartCommandHandler
	UpdateItemQuantity commands.UpdateItemQuantityCommandHandler
	PlaceOrder         commands.PlaceOrderCommandHandler
	UpdateOrderStatus  commands.UpdateOrderStatusCommandHandler
	CancelOrder        commands.CancelOrderCommandHandler
	DeleteOrder        commands.DeleteOrderCommandHandler

	GetOrder                     queries.GetOrderQueryHandler
	GetCustomerOrders            queries.GetCustomerOrdersQueryHandler
	GetCustomerOrderStatistics   queries.GetCustomerOrderStatisticsQueryHandler
	GetRestaurantOrderStatistics queries.GetRestaurantOrderStatisticsQueryHandler
	GetOrdersByStatus            queries.GetOrdersByStatusQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
}

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger.With("component", "http_server"),
	}
}

// RegisterRoutes mounts the API on e.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrdersByStatus)
	api.GET("/orders/active", s.GetActiveOrders)
	api.GET("/orders/pending", s.GetPendingOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.DELETE("/orders/:id", s.DeleteOrder)
	api.POST("/orders/:id/items", s.AddItem)
	api.PUT("/orders/:id/items/:itemId", s.UpdateItemQuantity)
	api.DELETE("/orders/:id/items/:itemId", s.RemoveItem)
	api.POST("/orders/:id/place", s.PlaceOrder)
	api.PUT("/orders/:id/status", s.UpdateOrderStatus)
	api.POST("/orders/:id/cancel", s.CancelOrder)

	api.GET("/customers/:id/orders", s.GetCustomerOrders)
	api.GET("/customers/:id/statistics", s.GetCustomerStatistics)
	api.GET("/restaurants/:id/statistics", s.GetRestaurantStatistics)
}

func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// CreateOrder handles POST /api/v1/orders - opens an empty cart.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromBytes(req.CustomerID[:])
	if err != nil {
		return s.fail(ctx, err)
	}
	restaurantID, err := kernel.UUIDFromBytes(req.RestaurantID[:])
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), customerID, restaurantID, req.DeliveryAddress, req.Phone, req.Notes,
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	o, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrder(queries.NewOrderView(o)))
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx, "id")
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	view, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrder(view))
}

// DeleteOrder handles DELETE /api/v1/orders/:id.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx, "id")
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddItem handles POST /api/v1/orders/:id/items.
func (s *Server) AddItem(ctx echo.Context) error {
	orderID, err := pathID(ctx, "id")
	if err != nil {
		return s.fail(ctx, err)
	}

	var req AddItemRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	itemID, err := kernel.UUIDFromBytes(req.FoodItemID[:])
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewAddItemToCartCommand(orderID, itemID, req.Quantity)
	if err != nil {
		return s.fail(ctx, err)
	}

	o, err := s.handlers.AddItemToCart.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrder(queries.NewOrderView(o)))
}

// UpdateItemQuantity handles PUT /api/v1/orders/:id/items/:itemId. A
// quantity of zero or less removes the line.
func (s *Server) UpdateItemQuantity(ctx echo.Context) error {
	orderID, err := pathID(ctx, "id")
	if err != nil {
		return s.fail(ctx, err)
	}
	itemID, err := pathID(ctx, "itemId")
	if err != nil {
		return s.fail(ctx, err)
	}

	var req UpdateItemQuantityRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateItemQuantityCommand(orderID, itemID, req.Quantity)
	if err != nil {
		return s.fail(ctx, err)
	}

	o, err := s.handlers.UpdateItemQuantity.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrder(queries.NewOrderView(o)))
}

// RemoveItem handles DELETE /api/v1/orders/:id/items/:itemId.
func (s *Server) RemoveItem(ctx echo.Context) error {
	orderID, err := pathID(ctx, "id")
	if err != nil {
		return s.fail(ctx, err)
	}
	itemID, err := pathID(ctx, "itemId")
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewRemoveItemFromCartCommand(orderID, itemID)
	if err != nil {
		return s.fail(ctx, err)
	}

	o, err := s.handlers.RemoveItemFromCart.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrder(queries.NewOrderView(o)))
}

// PlaceOrder handles POST /api/v1/orders/:id/place.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx, "id")
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewPlaceOrderCommand(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	o, err := s.handlers.PlaceOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrder(queries.NewOrderView(o)))
}

// UpdateOrderStatus handles PUT /api/v1/orders/:id/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := pathID(ctx, "id")
	if err != nil {
		return s.fail(ctx, err)
	}

	var req UpdateStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := order.ParseStatus(req.Status)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status)
	if err != nil {
		return s.fail(ctx, err)
	}

	o, err := s.handlers.UpdateOrderStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrder(queries.NewOrderView(o)))
}

// CancelOrder handles POST /api/v1/orders/:id/cancel. The body is optional.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx, "id")
	if err != nil {
		return s.fail(ctx, err)
	}

	var req CancelOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, req.Reason)
	if err != nil {
		return s.fail(ctx, err)
	}

	o, err := s.handlers.CancelOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrder(queries.NewOrderView(o)))
}

// GetOrdersByStatus handles GET /api/v1/orders?status=PREPARING,READY.
func (s *Server) GetOrdersByStatus(ctx echo.Context) error {
	raw := strings.TrimSpace(ctx.QueryParam("status"))
	if raw == "" {
		return badRequest(ctx, "status query parameter is required")
	}

	statuses := make([]order.Status, 0)
	for _, name := range strings.Split(raw, ",") {
		status, err := order.ParseStatus(name)
		if err != nil {
			return s.fail(ctx, err)
		}
		statuses = append(statuses, status)
	}

	query, err := queries.NewGetOrdersByStatusQuery(statuses...)
	if err != nil {
		return s.fail(ctx, err)
	}

	return s.listOrders(ctx, query)
}

// GetActiveOrders handles GET /api/v1/orders/active.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	return s.listOrders(ctx, queries.NewGetActiveOrdersQuery())
}

// GetPendingOrders handles GET /api/v1/orders/pending.
func (s *Server) GetPendingOrders(ctx echo.Context) error {
	return s.listOrders(ctx, queries.NewGetPendingOrdersQuery())
}

func (s *Server) listOrders(ctx echo.Context, query queries.GetOrdersByStatusQuery) error {
	views, err := s.handlers.GetOrdersByStatus.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrders(views))
}

// GetCustomerOrders handles GET /api/v1/customers/:id/orders.
func (s *Server) GetCustomerOrders(ctx echo.Context) error {
	customerID, err := pathID(ctx, "id")
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetCustomerOrdersQuery(customerID)
	if err != nil {
		return s.fail(ctx, err)
	}

	views, err := s.handlers.GetCustomerOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrders(views))
}

// GetCustomerStatistics handles GET /api/v1/customers/:id/statistics.
func (s *Server) GetCustomerStatistics(ctx echo.Context) error {
	customerID, err := pathID(ctx, "id")
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetCustomerOrderStatisticsQuery(customerID)
	if err != nil {
		return s.fail(ctx, err)
	}

	stats, err := s.handlers.GetCustomerOrderStatistics.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toStatistics(stats))
}

// GetRestaurantStatistics handles GET /api/v1/restaurants/:id/statistics.
func (s *Server) GetRestaurantStatistics(ctx echo.Context) error {
	restaurantID, err := pathID(ctx, "id")
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetRestaurantOrderStatisticsQuery(restaurantID)
	if err != nil {
		return s.fail(ctx, err)
	}

	stats, err := s.handlers.GetRestaurantOrderStatistics.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toStatistics(stats))
}

func pathID(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

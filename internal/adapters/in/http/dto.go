package http

import (
	"time"

	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/services"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateOrderRequest struct {
	CustomerID      uuid.UUID `json:"customerId"`
	RestaurantID    uuid.UUID `json:"restaurantId"`
	DeliveryAddress string    `json:"deliveryAddress"`
	Phone           string    `json:"phone"`
	Notes           string    `json:"notes"`
}

type AddItemRequest struct {
	FoodItemID uuid.UUID `json:"foodItemId"`
	Quantity   int       `json:"quantity"`
}

type UpdateItemQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type CancelOrderRequest struct {
	Reason string `json:"reason"`
}

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type OrderItem struct {
	FoodItemID uuid.UUID       `json:"foodItemId"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	Quantity   int             `json:"quantity"`
	Subtotal   decimal.Decimal `json:"subtotal"`
}

type Order struct {
	ID                    uuid.UUID       `json:"id"`
	CustomerID            uuid.UUID       `json:"customerId"`
	RestaurantID          uuid.UUID       `json:"restaurantId"`
	DeliveryAddress       string          `json:"deliveryAddress"`
	Phone                 string          `json:"phone"`
	Notes                 string          `json:"notes"`
	Status                string          `json:"status"`
	Items                 []OrderItem     `json:"items"`
	TotalItems            int             `json:"totalItems"`
	Total                 decimal.Decimal `json:"total"`
	OrderDate             time.Time       `json:"orderDate"`
	EstimatedDeliveryTime *time.Time      `json:"estimatedDeliveryTime,omitempty"`
	ActualDeliveryTime    *time.Time      `json:"actualDeliveryTime,omitempty"`
}

type OrderStatistics struct {
	TotalOrders       int             `json:"totalOrders"`
	CompletedOrders   int             `json:"completedOrders"`
	CancelledOrders   int             `json:"cancelledOrders"`
	ActiveOrders      int             `json:"activeOrders"`
	TotalSpent        decimal.Decimal `json:"totalSpent"`
	AverageOrderValue decimal.Decimal `json:"averageOrderValue"`
}

func toOrder(view queries.OrderView) Order {
	items := make([]OrderItem, 0, len(view.Items))
	for _, item := range view.Items {
		items = append(items, OrderItem{
			FoodItemID: item.FoodItemID.Bytes(),
			Name:       item.Name,
			Price:      item.Price,
			Quantity:   item.Quantity,
			Subtotal:   item.Subtotal,
		})
	}

	return Order{
		ID:                    view.ID.Bytes(),
		CustomerID:            view.CustomerID.Bytes(),
		RestaurantID:          view.RestaurantID.Bytes(),
		DeliveryAddress:       view.DeliveryAddress,
		Phone:                 view.Phone,
		Notes:                 view.Notes,
		Status:                view.Status.String(),
		Items:                 items,
		TotalItems:            view.TotalItems,
		Total:                 view.Total,
		OrderDate:             view.OrderDate,
		EstimatedDeliveryTime: view.EstimatedDeliveryTime,
		ActualDeliveryTime:    view.ActualDeliveryTime,
	}
}

func toOrders(views []queries.OrderView) []Order {
	orders := make([]Order, 0, len(views))
	for _, view := range views {
		orders = append(orders, toOrder(view))
	}
	return orders
}

func toStatistics(stats services.OrderStatistics) OrderStatistics {
	return OrderStatistics{
		TotalOrders:       stats.TotalOrders,
		CompletedOrders:   stats.CompletedOrders,
		CancelledOrders:   stats.CancelledOrders,
		ActiveOrders:      stats.ActiveOrders,
		TotalSpent:        stats.TotalSpent,
		AverageOrderValue: stats.AverageOrderValue,
	}
}

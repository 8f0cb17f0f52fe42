// Package queries contains read operations for retrieving system state.
// Queries never modify orders; they return read models built from the
// order repository.
package queries

import (
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderItemView is one cart line in the read model.
type OrderItemView struct {
	FoodItemID kernel.UUID
	Name       string
	Price      decimal.Decimal
	Quantity   int
	Subtotal   decimal.Decimal
}

// OrderView is the read model of an order returned by every order query.
type OrderView struct {
	ID                    kernel.UUID
	CustomerID            kernel.UUID
	RestaurantID          kernel.UUID
	DeliveryAddress       string
	Phone                 string
	Notes                 string
	Status                order.Status
	Items                 []OrderItemView
	TotalItems            int
	Total                 decimal.Decimal
	OrderDate             time.Time
	EstimatedDeliveryTime *time.Time
	ActualDeliveryTime    *time.Time
}

// NewOrderView copies o into a read model.
func NewOrderView(o *order.Order) OrderView {
	items := make([]OrderItemView, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderItemView{
			FoodItemID: item.FoodItemID(),
			Name:       item.Product().Name(),
			Price:      item.Price(),
			Quantity:   item.Quantity(),
			Subtotal:   item.Subtotal(),
		})
	}

	return OrderView{
		ID:                    o.ID(),
		CustomerID:            o.CustomerID(),
		RestaurantID:          o.RestaurantID(),
		DeliveryAddress:       o.DeliveryAddress(),
		Phone:                 o.Phone(),
		Notes:                 o.Notes(),
		Status:                o.Status(),
		Items:                 items,
		TotalItems:            o.TotalItems(),
		Total:                 o.Total(),
		OrderDate:             o.OrderDate(),
		EstimatedDeliveryTime: o.EstimatedDeliveryTime(),
		ActualDeliveryTime:    o.ActualDeliveryTime(),
	}
}

func newOrderViews(orders []*order.Order) []OrderView {
	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, NewOrderView(o))
	}
	return views
}

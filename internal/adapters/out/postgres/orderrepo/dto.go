// Package orderrepo persists order aggregates with GORM. An order and its
// items are written and read as one unit.
package orderrepo

import (
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the orders table row. Version backs the optimistic check in
// Update.
type OrderDTO struct {
	ID                    uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID            uuid.UUID       `gorm:"type:uuid;index;not null"`
	RestaurantID          uuid.UUID       `gorm:"type:uuid;index;not null"`
	DeliveryAddress       string          `gorm:"type:text;not null"`
	Phone                 string          `gorm:"size:32;not null"`
	Notes                 string          `gorm:"type:text"`
	Status                int             `gorm:"index;not null"`
	TotalAmount           decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	OrderDate             time.Time       `gorm:"index;not null"`
	EstimatedDeliveryTime *time.Time
	ActualDeliveryTime    *time.Time
	Version               int            `gorm:"not null;default:0"`
	Items                 []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one cart line. Position keeps the order in which lines
// were first added.
type OrderItemDTO struct {
	OrderID    uuid.UUID       `gorm:"type:uuid;primaryKey"`
	FoodItemID uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name       string          `gorm:"not null"`
	Price      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Quantity   int             `gorm:"not null"`
	Position   int             `gorm:"not null"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	s := aggregate.Snapshot()
	id := s.ID.Bytes()

	items := make([]OrderItemDTO, 0, len(s.Items))
	for i, item := range s.Items {
		items = append(items, OrderItemDTO{
			OrderID:    id,
			FoodItemID: item.FoodItemID.Bytes(),
			Name:       item.Name,
			Price:      item.Price,
			Quantity:   item.Quantity,
			Position:   i,
		})
	}

	return OrderDTO{
		ID:                    id,
		CustomerID:            s.CustomerID.Bytes(),
		RestaurantID:          s.RestaurantID.Bytes(),
		DeliveryAddress:       s.DeliveryAddress,
		Phone:                 s.Phone,
		Notes:                 s.Notes,
		Status:                int(s.Status),
		TotalAmount:           s.Total,
		OrderDate:             s.OrderDate,
		EstimatedDeliveryTime: s.EstimatedDeliveryTime,
		ActualDeliveryTime:    s.ActualDeliveryTime,
		Version:               s.Version,
		Items:                 items,
	}
}

// toDomain rebuilds the aggregate through order.RestoreOrder, which rejects
// rows whose stored total disagrees with their items.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.ItemSnapshot, 0, len(dto.Items))
	for _, item := range dto.Items {
		foodItemID, idErr := kernel.UUIDFromBytes(item.FoodItemID[:])
		if idErr != nil {
			return nil, idErr
		}
		items = append(items, order.ItemSnapshot{
			FoodItemID: foodItemID,
			Name:       item.Name,
			Price:      item.Price,
			Quantity:   item.Quantity,
		})
	}

	return order.RestoreOrder(order.Snapshot{
		ID:                    id,
		CustomerID:            customerID,
		RestaurantID:          restaurantID,
		DeliveryAddress:       dto.DeliveryAddress,
		Phone:                 dto.Phone,
		Notes:                 dto.Notes,
		Status:                order.Status(dto.Status),
		Items:                 items,
		Total:                 dto.TotalAmount,
		OrderDate:             dto.OrderDate,
		EstimatedDeliveryTime: dto.EstimatedDeliveryTime,
		ActualDeliveryTime:    dto.ActualDeliveryTime,
		Version:               dto.Version,
	})
}

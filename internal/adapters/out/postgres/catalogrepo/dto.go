// Package catalogrepo stores menu items and their stock with GORM.
package catalogrepo

import (
	"ordering/internal/core/domain/model/catalog"
	"ordering/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type FoodItemDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	RestaurantID  uuid.UUID       `gorm:"type:uuid;index;not null"`
	Name          string          `gorm:"not null"`
	Price         decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Available     bool            `gorm:"not null"`
	StockQuantity int             `gorm:"not null;check:stock_quantity >= 0"`
}

func (FoodItemDTO) TableName() string {
	return "food_items"
}

func fromDomain(item *catalog.FoodItem) FoodItemDTO {
	return FoodItemDTO{
		ID:            item.ID().Bytes(),
		RestaurantID:  item.RestaurantID().Bytes(),
		Name:          item.Name(),
		Price:         item.Price(),
		Available:     item.IsAvailable(),
		StockQuantity: item.StockQuantity(),
	}
}

func toDomain(dto FoodItemDTO) (*catalog.FoodItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	return catalog.NewFoodItem(id, restaurantID, dto.Name, dto.Price, dto.Available, dto.StockQuantity)
}

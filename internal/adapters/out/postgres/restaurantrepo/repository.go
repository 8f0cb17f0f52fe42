package restaurantrepo

import (
	"context"
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/restaurant"
	"ordering/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRestaurantDirectory implements ports.RestaurantDirectory.
type GormRestaurantDirectory struct {
	db *gorm.DB
}

func NewGormRestaurantDirectory(db *gorm.DB) *GormRestaurantDirectory {
	return &GormRestaurantDirectory{db: db}
}

// Save inserts or replaces a restaurant. Used for seeding.
func (d *GormRestaurantDirectory) Save(ctx context.Context, r *restaurant.Restaurant) error {
	if err := r.Validate(); err != nil {
		return err
	}

	dto := fromDomain(r)
	return d.db.WithContext(ctx).Save(&dto).Error
}

func (d *GormRestaurantDirectory) Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RestaurantDTO
	if err := d.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("restaurant", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

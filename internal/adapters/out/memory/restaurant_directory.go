package memory

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/restaurant"
	"ordering/internal/pkg/errs"
)

// RestaurantDirectory implements ports.RestaurantDirectory on a Store.
type RestaurantDirectory struct {
	scope scope
}

func (d *RestaurantDirectory) Get(_ context.Context, id kernel.UUID) (*restaurant.Restaurant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	raw, err := d.scope.read().First(restaurantsTable, indexID, id.String())
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, errs.NewObjectNotFoundError("restaurant", id.String())
	}

	record := raw.(*restaurantRecord)
	return restaurant.NewRestaurant(id, record.Name, record.Status)
}

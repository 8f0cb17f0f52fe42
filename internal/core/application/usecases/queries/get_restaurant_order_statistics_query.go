package queries

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var ErrGetRestaurantOrderStatisticsQueryIsNotConstructed = errors.New(
	"GetRestaurantOrderStatisticsQuery must be created via NewGetRestaurantOrderStatisticsQuery constructor",
)

// GetRestaurantOrderStatisticsQuery is the restaurant-side counterpart of
// GetCustomerOrderStatisticsQuery.
type GetRestaurantOrderStatisticsQuery struct {
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetRestaurantOrderStatisticsQuery(restaurantID kernel.UUID) (GetRestaurantOrderStatisticsQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return GetRestaurantOrderStatisticsQuery{}, err
	}
	return GetRestaurantOrderStatisticsQuery{restaurantID: restaurantID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetRestaurantOrderStatisticsQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantOrderStatisticsQueryIsNotConstructed)
}

func (q GetRestaurantOrderStatisticsQuery) RestaurantID() kernel.UUID { return q.restaurantID }

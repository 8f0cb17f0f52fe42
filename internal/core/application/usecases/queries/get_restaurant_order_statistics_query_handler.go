package queries

import (
	"context"

	"ordering/internal/core/domain/services"
	"ordering/internal/core/ports"
)

type GetRestaurantOrderStatisticsQueryHandler struct {
	orderRepo  ports.OrderRepository
	calculator services.StatisticsCalculator
}

func NewGetRestaurantOrderStatisticsQueryHandler(
	orderRepo ports.OrderRepository,
) GetRestaurantOrderStatisticsQueryHandler {
	return GetRestaurantOrderStatisticsQueryHandler{
		orderRepo:  orderRepo,
		calculator: services.NewStatisticsCalculator(),
	}
}

func (h GetRestaurantOrderStatisticsQueryHandler) Handle(
	ctx context.Context,
	query GetRestaurantOrderStatisticsQuery,
) (services.OrderStatistics, error) {
	if err := query.Validate(); err != nil {
		return services.OrderStatistics{}, err
	}

	orders, err := h.orderRepo.FindByRestaurant(ctx, query.RestaurantID())
	if err != nil {
		return services.OrderStatistics{}, err
	}

	return h.calculator.Calculate(orders), nil
}

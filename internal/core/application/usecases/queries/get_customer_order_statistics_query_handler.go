package queries

import (
	"context"

	"ordering/internal/core/domain/services"
	"ordering/internal/core/ports"
)

// GetCustomerOrderStatisticsQueryHandler computes statistics over every order
// of a customer. A customer without orders gets all-zero statistics.
type GetCustomerOrderStatisticsQueryHandler struct {
	orderRepo  ports.OrderRepository
	calculator services.StatisticsCalculator
}

func NewGetCustomerOrderStatisticsQueryHandler(
	orderRepo ports.OrderRepository,
) GetCustomerOrderStatisticsQueryHandler {
	return GetCustomerOrderStatisticsQueryHandler{
		orderRepo:  orderRepo,
		calculator: services.NewStatisticsCalculator(),
	}
}

func (h GetCustomerOrderStatisticsQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrderStatisticsQuery,
) (services.OrderStatistics, error) {
	if err := query.Validate(); err != nil {
		return services.OrderStatistics{}, err
	}

	orders, err := h.orderRepo.FindByCustomer(ctx, query.CustomerID())
	if err != nil {
		return services.OrderStatistics{}, err
	}

	return h.calculator.Calculate(orders), nil
}

package queries

import (
	"context"

	"ordering/internal/core/ports"
)

type GetCustomerOrdersQueryHandler struct {
	orderRepo ports.OrderRepository
}

func NewGetCustomerOrdersQueryHandler(orderRepo ports.OrderRepository) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{orderRepo: orderRepo}
}

// Handle returns an empty slice, never nil, when the customer has no orders.
func (h GetCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrdersQuery,
) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orderRepo.FindByCustomer(ctx, query.CustomerID())
	if err != nil {
		return nil, err
	}

	return newOrderViews(orders), nil
}

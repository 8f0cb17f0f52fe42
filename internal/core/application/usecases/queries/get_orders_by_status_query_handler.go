package queries

import (
	"context"

	"ordering/internal/core/ports"
)

// GetOrdersByStatusQueryHandler serves every status listing, including the
// active and pending order views.
type GetOrdersByStatusQueryHandler struct {
	orderRepo ports.OrderRepository
}

func NewGetOrdersByStatusQueryHandler(orderRepo ports.OrderRepository) GetOrdersByStatusQueryHandler {
	return GetOrdersByStatusQueryHandler{orderRepo: orderRepo}
}

func (h GetOrdersByStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByStatusQuery,
) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orderRepo.FindByStatuses(ctx, query.Statuses()...)
	if err != nil {
		return nil, err
	}

	return newOrderViews(orders), nil
}

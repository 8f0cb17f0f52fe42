package queries

import (
	"context"

	"ordering/internal/core/ports"
)

// GetOrderQueryHandler loads an order by id. A missing order is an
// errs.ErrObjectNotFound.
type GetOrderQueryHandler struct {
	orderRepo ports.OrderRepository
}

func NewGetOrderQueryHandler(orderRepo ports.OrderRepository) GetOrderQueryHandler {
	return GetOrderQueryHandler{orderRepo: orderRepo}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	o, err := h.orderRepo.Get(ctx, query.OrderID())
	if err != nil {
		return OrderView{}, err
	}

	return NewOrderView(o), nil
}

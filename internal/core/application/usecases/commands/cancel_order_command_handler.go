package commands

import (
	"context"

	"ordering/internal/core/domain/model/order"
)

// CancelOrderCommandHandler cancels PENDING, CONFIRMED and PREPARING orders.
// Stock decremented at placement is restored in the same transaction; a
// PENDING order never touches the catalog.
type CancelOrderCommandHandler struct {
	mutator orderMutator
}

func NewCancelOrderCommandHandler(uowFactory UoWFactory, locks *OrderLocks) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		mutator: newOrderMutator(uowFactory, locks),
	}
}

func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.mutator.mutate(ctx, cmd.OrderID(), func(ctx context.Context, uow UoW, o *order.Order) error {
		return cancelOrder(ctx, uow, o, cmd.Reason())
	})
}

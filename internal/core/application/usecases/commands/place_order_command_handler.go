package commands

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/order"
)

// PlaceOrderCommandHandler confirms an order.
//
// The order must be PENDING and non-empty, its restaurant must still accept
// orders, and every line is re-validated against the catalog at this instant.
// Stock is then decremented for every line in the same transaction as the
// status change; if any decrement fails nothing is applied.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, locks)
//	cmd, _ := NewPlaceOrderCommand(orderID)
//	o, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("Order %s expected at %s", o.ID(), o.EstimatedDeliveryTime())
type PlaceOrderCommandHandler struct {
	mutator orderMutator
}

func NewPlaceOrderCommandHandler(uowFactory UoWFactory, locks *OrderLocks) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		mutator: newOrderMutator(uowFactory, locks),
	}
}

func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.mutator.mutate(ctx, cmd.OrderID(), func(ctx context.Context, uow UoW, o *order.Order) error {
		return placeOrder(ctx, uow, o, time.Now().UTC())
	})
}

package commands

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/order"
)

// statusChangeReason is recorded in the notes when an order is cancelled
// through a plain status update.
const statusChangeReason = "cancelled by status update"

// UpdateOrderStatusCommandHandler applies a transition from the state machine.
// Illegal transitions fail without side effects. Moving to CONFIRMED runs the
// full placement (stock decrement) and moving to CANCELLED restores stock when
// it had been decremented.
type UpdateOrderStatusCommandHandler struct {
	mutator orderMutator
}

func NewUpdateOrderStatusCommandHandler(uowFactory UoWFactory, locks *OrderLocks) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		mutator: newOrderMutator(uowFactory, locks),
	}
}

func (h UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.mutator.mutate(ctx, cmd.OrderID(), func(ctx context.Context, uow UoW, o *order.Order) error {
		if _, err := o.Status().TransitionTo(cmd.Status()); err != nil {
			return err
		}

		now := time.Now().UTC()
		switch cmd.Status() {
		case order.Confirmed:
			return placeOrder(ctx, uow, o, now)
		case order.Cancelled:
			return cancelOrder(ctx, uow, o, statusChangeReason)
		default:
			return o.TransitionTo(cmd.Status(), now)
		}
	})
}

package commands

import (
	"context"
	"fmt"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
)

// DeleteOrderCommandHandler deletes carts and cancelled orders. Orders that
// hold stock or were delivered are kept.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	locks      *OrderLocks
}

func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory, locks *OrderLocks) DeleteOrderCommandHandler {
	if locks == nil {
		locks = NewOrderLocks()
	}

	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
		locks:      locks,
	}
}

func (h DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	unlock := h.locks.Lock(cmd.OrderID())
	defer unlock()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if o.Status() != order.Pending && o.Status() != order.Cancelled {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("order cannot be deleted, current status: %s", o.Status()),
		)
	}

	if err = orderRepo.Delete(ctx, o.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

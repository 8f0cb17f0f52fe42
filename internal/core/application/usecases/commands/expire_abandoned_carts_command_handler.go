package commands

import (
	"context"
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// errCartIsNoLongerAbandoned skips a candidate that was placed or changed
// between listing and locking it.
var errCartIsNoLongerAbandoned = errors.New("cart is no longer abandoned")

// ExpireAbandonedCartsCommandHandler cancels stale carts. Each cart is
// cancelled in its own transaction under its order lock, so a cart being
// placed concurrently is either placed or expired, never both.
type ExpireAbandonedCartsCommandHandler struct {
	uowFactory UoWFactory
	mutator    orderMutator
}

func NewExpireAbandonedCartsCommandHandler(
	uowFactory UoWFactory,
	locks *OrderLocks,
) ExpireAbandonedCartsCommandHandler {
	return ExpireAbandonedCartsCommandHandler{
		uowFactory: uowFactory,
		mutator:    newOrderMutator(uowFactory, locks),
	}
}

// Handle returns how many carts were cancelled. Failures on individual carts
// do not stop the batch and are returned joined.
func (h ExpireAbandonedCartsCommandHandler) Handle(ctx context.Context, cmd ExpireAbandonedCartsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	candidates, err := h.findCandidates(ctx, cmd)
	if err != nil {
		return 0, err
	}

	var (
		expired int
		errList []error
	)
	for _, id := range candidates {
		_, err = h.mutator.mutate(ctx, id, func(ctx context.Context, uow UoW, o *order.Order) error {
			if o.Status() != order.Pending || !o.OrderDate().Before(cmd.Cutoff()) {
				return errCartIsNoLongerAbandoned
			}
			return cancelOrder(ctx, uow, o, AbandonedCartReason)
		})

		switch {
		case errors.Is(err, errCartIsNoLongerAbandoned):
		case err != nil:
			errList = append(errList, err)
		default:
			expired++
		}
	}

	return expired, errors.Join(errList...)
}

func (h ExpireAbandonedCartsCommandHandler) findCandidates(
	ctx context.Context,
	cmd ExpireAbandonedCartsCommand,
) ([]kernel.UUID, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders, err := uow.OrderRepository().FindPendingCreatedBefore(ctx, cmd.Cutoff(), cmd.Limit())
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID())
	}
	return ids, nil
}

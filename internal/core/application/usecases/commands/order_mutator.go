package commands

import (
	"context"
	"errors"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/cenkalti/backoff/v4"
)

const maxConcurrentModificationRetries = 5

// orderMutation changes o inside uow. It must not commit.
type orderMutation func(ctx context.Context, uow UoW, o *order.Order) error

// orderMutator runs load-validate-mutate-persist for one order while holding
// its lock. A lost optimistic version check (another process wrote the order
// first) is retried with exponential backoff; any other error is returned as is.
type orderMutator struct {
	uowFactory UoWFactory
	locks      *OrderLocks
	newBackOff func() backoff.BackOff
}

func newOrderMutator(uowFactory UoWFactory, locks *OrderLocks) orderMutator {
	if locks == nil {
		locks = NewOrderLocks()
	}

	return orderMutator{
		uowFactory: uowFactory,
		locks:      locks,
		newBackOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = 10 * time.Millisecond
			b.MaxInterval = 200 * time.Millisecond
			return backoff.WithMaxRetries(b, maxConcurrentModificationRetries)
		},
	}
}

func (m orderMutator) mutate(ctx context.Context, orderID kernel.UUID, fn orderMutation) (*order.Order, error) {
	unlock := m.locks.Lock(orderID)
	defer unlock()

	var updated *order.Order
	operation := func() error {
		o, err := m.attempt(ctx, orderID, fn)
		if errors.Is(err, errs.ErrConcurrentModification) {
			return err
		}
		if err != nil {
			return backoff.Permanent(err)
		}

		updated = o
		return nil
	}

	if err := backoff.Retry(operation, backoff.WithContext(m.newBackOff(), ctx)); err != nil {
		return nil, err
	}

	return updated, nil
}

func (m orderMutator) attempt(ctx context.Context, orderID kernel.UUID, fn orderMutation) (*order.Order, error) {
	uow := m.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err = fn(ctx, uow, o); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}

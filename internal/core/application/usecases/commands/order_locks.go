package commands

import (
	"ordering/internal/core/domain/model/kernel"

	"github.com/moby/locker"
)

// OrderLocks serializes mutations of the same order inside one process while
// different orders proceed in parallel. Every handler that changes orders
// must share the same instance.
type OrderLocks struct {
	locker *locker.Locker
}

func NewOrderLocks() *OrderLocks {
	return &OrderLocks{locker: locker.New()}
}

// Lock blocks until orderID is held and returns the release function. Calling
// the release function more than once is harmless.
func (l *OrderLocks) Lock(orderID kernel.UUID) (unlock func()) {
	name := orderID.String()
	l.locker.Lock(name)

	released := false
	return func() {
		if released {
			return
		}
		released = true
		_ = l.locker.Unlock(name)
	}
}

package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/hashicorp/go-memdb"
)

// OrderRepository implements ports.OrderRepository on a Store.
type OrderRepository struct {
	scope scope
}

func (r *OrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	return r.scope.write(func(txn *memdb.Txn) error {
		id := aggregate.ID().String()
		existing, err := txn.First(ordersTable, indexID, id)
		if err != nil {
			return err
		}
		if existing != nil {
			return errs.NewValueIsInvalidErrorWithCause("order", fmt.Errorf("order %s already exists", id))
		}
		return txn.Insert(ordersTable, newOrderRecord(aggregate.Snapshot()))
	})
}

func (r *OrderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	var version int
	err := r.scope.write(func(txn *memdb.Txn) error {
		id := aggregate.ID().String()
		raw, err := txn.First(ordersTable, indexID, id)
		if err != nil {
			return err
		}
		if raw == nil {
			return errs.NewObjectNotFoundError("order", id)
		}
		if raw.(*orderRecord).Snapshot.Version != aggregate.Version() {
			return errs.ErrConcurrentModification
		}

		next := aggregate.Snapshot()
		next.Version++
		version = next.Version
		return txn.Insert(ordersTable, newOrderRecord(next))
	})
	if err != nil {
		return err
	}

	aggregate.SetVersion(version)
	return nil
}

func (r *OrderRepository) Delete(_ context.Context, id kernel.UUID) error {
	return r.scope.write(func(txn *memdb.Txn) error {
		deleted, err := txn.DeleteAll(ordersTable, indexID, id.String())
		if err != nil {
			return err
		}
		if deleted == 0 {
			return errs.NewObjectNotFoundError("order", id.String())
		}
		return nil
	})
}

func (r *OrderRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	raw, err := r.scope.read().First(ordersTable, indexID, id.String())
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}
	return order.RestoreOrder(raw.(*orderRecord).Snapshot)
}

func (r *OrderRepository) FindByCustomer(_ context.Context, customerID kernel.UUID) ([]*order.Order, error) {
	return r.find(indexCustomer, []any{customerID.String()}, nil, newestFirst, 0)
}

func (r *OrderRepository) FindByRestaurant(_ context.Context, restaurantID kernel.UUID) ([]*order.Order, error) {
	return r.find(indexRestaurant, []any{restaurantID.String()}, nil, newestFirst, 0)
}

func (r *OrderRepository) FindByStatuses(_ context.Context, statuses ...order.Status) ([]*order.Order, error) {
	args := make([]any, 0, len(statuses))
	seen := make(map[order.Status]struct{}, len(statuses))
	for _, status := range statuses {
		if _, dup := seen[status]; dup {
			continue
		}
		seen[status] = struct{}{}
		args = append(args, int(status))
	}
	return r.find(indexStatus, args, nil, newestFirst, 0)
}

func (r *OrderRepository) FindPendingCreatedBefore(
	_ context.Context,
	before time.Time,
	limit int,
) ([]*order.Order, error) {
	return r.find(indexStatus, []any{int(order.Pending)}, func(s order.Snapshot) bool {
		return s.OrderDate.Before(before)
	}, oldestFirst, limit)
}

type snapshotOrder func(a, b order.Snapshot) bool

func newestFirst(a, b order.Snapshot) bool { return a.OrderDate.After(b.OrderDate) }
func oldestFirst(a, b order.Snapshot) bool { return a.OrderDate.Before(b.OrderDate) }

// find collects the orders matching any of args on index, filtered by match
// when it is set.
func (r *OrderRepository) find(
	index string,
	args []any,
	match func(order.Snapshot) bool,
	less snapshotOrder,
	limit int,
) ([]*order.Order, error) {
	txn := r.scope.read()

	matched := make([]order.Snapshot, 0)
	for _, arg := range args {
		it, err := txn.Get(ordersTable, index, arg)
		if err != nil {
			return nil, err
		}
		for raw := it.Next(); raw != nil; raw = it.Next() {
			snapshot := raw.(*orderRecord).Snapshot
			if match == nil || match(snapshot) {
				matched = append(matched, snapshot)
			}
		}
	}

	sort.SliceStable(matched, func(i, j int) bool { return less(matched[i], matched[j]) })
	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}

	orders := make([]*order.Order, 0, len(matched))
	for _, snapshot := range matched {
		o, err := order.RestoreOrder(snapshot)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func newOrderRecord(s order.Snapshot) *orderRecord {
	return &orderRecord{
		ID:           s.ID.String(),
		CustomerID:   s.CustomerID.String(),
		RestaurantID: s.RestaurantID.String(),
		Status:       int(s.Status),
		Snapshot:     s,
	}
}

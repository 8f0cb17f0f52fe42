package memory

import (
	"context"
	"errors"

	"ordering/internal/core/ports"

	"github.com/hashicorp/go-memdb"
)

var (
	ErrTransactionAlreadyStarted = errors.New("transaction already started")
	ErrNoActiveTransaction       = errors.New("no active transaction")
)

// UnitOfWorkFactory creates units of work over one Store.
type UnitOfWorkFactory struct {
	store *Store
}

func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork wraps one go-memdb write transaction. Begin waits until no other
// unit of work holds the store. It is not safe for concurrent use; create one
// per operation. Repositories taken before Begin do not join the transaction.
type UnitOfWork struct {
	store *Store
	txn   *memdb.Txn
}

func (uow *UnitOfWork) Begin(_ context.Context) error {
	if uow.txn != nil {
		return ErrTransactionAlreadyStarted
	}
	uow.txn = uow.store.db.Txn(true)
	return nil
}

func (uow *UnitOfWork) Commit(_ context.Context) error {
	if uow.txn == nil {
		return ErrNoActiveTransaction
	}
	uow.txn.Commit()
	uow.txn = nil
	return nil
}

func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if uow.txn == nil {
		return ErrNoActiveTransaction
	}
	uow.txn.Abort()
	uow.txn = nil
	return nil
}

func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &OrderRepository{scope: uow.store.scope(uow.txn)}
}

func (uow *UnitOfWork) FoodItemCatalog() ports.FoodItemCatalog {
	return &FoodItemCatalog{scope: uow.store.scope(uow.txn)}
}

func (uow *UnitOfWork) RestaurantDirectory() ports.RestaurantDirectory {
	return &RestaurantDirectory{scope: uow.store.scope(uow.txn)}
}

// Package memory keeps orders, food items and restaurants in process memory.
// It backs the STORAGE_DRIVER=memory mode and the application tests.
//
// A Store is a go-memdb database shared by every unit of work created from
// it. A unit of work holds one write transaction from Begin to Commit or
// Rollback, so its changes, stock decrements included, stay invisible to
// everyone else until it commits. Write transactions are serialized
// store-wide: a second writer waits for the first one to finish, the way a
// row lock makes a second SQL transaction wait. Readers never wait and see
// the last committed state.
package memory

import (
	"fmt"

	"ordering/internal/core/domain/model/catalog"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/restaurant"
	"ordering/internal/pkg/errs"

	"github.com/hashicorp/go-memdb"
	"github.com/shopspring/decimal"
)

const (
	ordersTable      = "orders"
	foodItemsTable   = "food_items"
	restaurantsTable = "restaurants"

	indexID         = "id"
	indexCustomer   = "customer"
	indexRestaurant = "restaurant"
	indexStatus     = "status"
)

// Records are immutable once inserted; every change inserts a new copy.
type orderRecord struct {
	ID           string
	CustomerID   string
	RestaurantID string
	Status       int
	Snapshot     order.Snapshot
}

type foodItemRecord struct {
	ID           string
	RestaurantID kernel.UUID
	Name         string
	Price        decimal.Decimal
	Available    bool
	Stock        int
}

type restaurantRecord struct {
	ID     string
	Name   string
	Status restaurant.Status
}

func schema() *memdb.DBSchema {
	byID := &memdb.IndexSchema{Name: indexID, Unique: true, Indexer: &memdb.StringFieldIndex{Field: "ID"}}

	return &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			ordersTable: {
				Name: ordersTable,
				Indexes: map[string]*memdb.IndexSchema{
					indexID:         byID,
					indexCustomer:   {Name: indexCustomer, Indexer: &memdb.StringFieldIndex{Field: "CustomerID"}},
					indexRestaurant: {Name: indexRestaurant, Indexer: &memdb.StringFieldIndex{Field: "RestaurantID"}},
					indexStatus:     {Name: indexStatus, Indexer: &memdb.IntFieldIndex{Field: "Status"}},
				},
			},
			foodItemsTable: {
				Name:    foodItemsTable,
				Indexes: map[string]*memdb.IndexSchema{indexID: byID},
			},
			restaurantsTable: {
				Name:    restaurantsTable,
				Indexes: map[string]*memdb.IndexSchema{indexID: byID},
			},
		},
	}
}

// Store is the shared in-memory state.
type Store struct {
	db *memdb.MemDB
}

func NewStore() *Store {
	db, err := memdb.NewMemDB(schema())
	if err != nil {
		// The schema is static; an error here is a programming mistake.
		panic(fmt.Sprintf("memory store schema: %v", err))
	}
	return &Store{db: db}
}

// PutRestaurant inserts or replaces a restaurant.
func (s *Store) PutRestaurant(r *restaurant.Restaurant) error {
	if err := r.Validate(); err != nil {
		return err
	}

	return s.scope(nil).write(func(txn *memdb.Txn) error {
		return txn.Insert(restaurantsTable, &restaurantRecord{ID: r.ID().String(), Name: r.Name(), Status: r.Status()})
	})
}

// PutFoodItem inserts or replaces a food item, stock included.
func (s *Store) PutFoodItem(f *catalog.FoodItem) error {
	if err := f.Validate(); err != nil {
		return err
	}

	return s.scope(nil).write(func(txn *memdb.Txn) error {
		return txn.Insert(foodItemsTable, &foodItemRecord{
			ID:           f.ID().String(),
			RestaurantID: f.RestaurantID(),
			Name:         f.Name(),
			Price:        f.Price(),
			Available:    f.IsAvailable(),
			Stock:        f.StockQuantity(),
		})
	})
}

// OrderRepository returns a repository where every call commits on its own,
// outside of any unit of work. Used by the read side.
func (s *Store) OrderRepository() *OrderRepository {
	return &OrderRepository{scope: s.scope(nil)}
}

// FoodItemCatalog returns a catalog where every call commits on its own.
func (s *Store) FoodItemCatalog() *FoodItemCatalog {
	return &FoodItemCatalog{scope: s.scope(nil)}
}

// RestaurantDirectory returns a read-only restaurant directory.
func (s *Store) RestaurantDirectory() *RestaurantDirectory {
	return &RestaurantDirectory{scope: s.scope(nil)}
}

func (s *Store) scope(txn *memdb.Txn) scope {
	return scope{db: s.db, txn: txn}
}

// scope runs repository calls inside the unit of work's write transaction
// when there is one, otherwise each call in a transaction of its own.
// A goroutine holding a unit of work must not use a standalone scope for
// writes: it would wait for its own write transaction.
type scope struct {
	db  *memdb.MemDB
	txn *memdb.Txn
}

func (s scope) read() *memdb.Txn {
	if s.txn != nil {
		return s.txn
	}
	return s.db.Txn(false)
}

func (s scope) write(fn func(txn *memdb.Txn) error) error {
	if s.txn != nil {
		return fn(s.txn)
	}

	txn := s.db.Txn(true)
	defer txn.Abort()

	if err := fn(txn); err != nil {
		return err
	}
	txn.Commit()
	return nil
}

func firstFoodItem(txn *memdb.Txn, id kernel.UUID) (*foodItemRecord, error) {
	raw, err := txn.First(foodItemsTable, indexID, id.String())
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, errs.NewObjectNotFoundError("food item", id.String())
	}
	return raw.(*foodItemRecord), nil
}

func (r *foodItemRecord) toDomain(id kernel.UUID) (*catalog.FoodItem, error) {
	return catalog.NewFoodItem(id, r.RestaurantID, r.Name, r.Price, r.Available, r.Stock)
}

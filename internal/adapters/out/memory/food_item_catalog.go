package memory

import (
	"context"

	"ordering/internal/core/domain/model/catalog"
	"ordering/internal/core/domain/model/kernel"

	"github.com/hashicorp/go-memdb"
)

// FoodItemCatalog implements ports.FoodItemCatalog on a Store. Check and
// decrement run in one write transaction, so concurrent decrements of the
// same item never lose an update or drive stock negative.
type FoodItemCatalog struct {
	scope scope
}

func (c *FoodItemCatalog) Get(_ context.Context, id kernel.UUID) (*catalog.FoodItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	record, err := firstFoodItem(c.scope.read(), id)
	if err != nil {
		return nil, err
	}
	return record.toDomain(id)
}

func (c *FoodItemCatalog) DecrementStock(_ context.Context, id kernel.UUID, quantity int) error {
	return c.changeStock(id, func(item *catalog.FoodItem) error {
		return item.TakeStock(quantity)
	})
}

func (c *FoodItemCatalog) RestoreStock(_ context.Context, id kernel.UUID, quantity int) error {
	return c.changeStock(id, func(item *catalog.FoodItem) error {
		return item.ReturnStock(quantity)
	})
}

func (c *FoodItemCatalog) changeStock(id kernel.UUID, change func(item *catalog.FoodItem) error) error {
	return c.scope.write(func(txn *memdb.Txn) error {
		record, err := firstFoodItem(txn, id)
		if err != nil {
			return err
		}
		item, err := record.toDomain(id)
		if err != nil {
			return err
		}
		if err = change(item); err != nil {
			return err
		}

		next := *record
		next.Stock = item.StockQuantity()
		return txn.Insert(foodItemsTable, &next)
	})
}

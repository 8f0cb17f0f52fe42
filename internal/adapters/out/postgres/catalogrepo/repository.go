package catalogrepo

import (
	"context"
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/catalog"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormFoodItemCatalog implements ports.FoodItemCatalog. DecrementStock is a
// single conditional UPDATE, so two transactions can never both take the
// last units of an item.
type GormFoodItemCatalog struct {
	db *gorm.DB
}

func NewGormFoodItemCatalog(db *gorm.DB) *GormFoodItemCatalog {
	return &GormFoodItemCatalog{db: db}
}

// Save inserts or replaces a food item. Used for seeding.
func (c *GormFoodItemCatalog) Save(ctx context.Context, item *catalog.FoodItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	return c.db.WithContext(ctx).Save(&dto).Error
}

func (c *GormFoodItemCatalog) Get(ctx context.Context, id kernel.UUID) (*catalog.FoodItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto FoodItemDTO
	if err := c.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("food item", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// DecrementStock takes quantity units if the item is available and has
// enough stock. When the UPDATE matches nothing the current row is reloaded
// to report why; if the row would now satisfy the request another writer
// changed it in between and errs.ErrConcurrentModification is returned.
func (c *GormFoodItemCatalog) DecrementStock(ctx context.Context, id kernel.UUID, quantity int) error {
	if err := validateQuantity(quantity); err != nil {
		return err
	}

	result := c.db.WithContext(ctx).Model(&FoodItemDTO{}).
		Where("id = ? AND available = ? AND stock_quantity >= ?", id.Bytes(), true, quantity).
		Update("stock_quantity", gorm.Expr("stock_quantity - ?", quantity))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	item, err := c.Get(ctx, id)
	if err != nil {
		return err
	}
	if err = item.EnsureCanSupply(quantity); err != nil {
		return err
	}
	return errs.ErrConcurrentModification
}

func (c *GormFoodItemCatalog) RestoreStock(ctx context.Context, id kernel.UUID, quantity int) error {
	if err := validateQuantity(quantity); err != nil {
		return err
	}

	result := c.db.WithContext(ctx).Model(&FoodItemDTO{}).
		Where("id = ?", id.Bytes()).
		Update("stock_quantity", gorm.Expr("stock_quantity + ?", quantity))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("food item", id.String())
	}

	return nil
}

func validateQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	return nil
}

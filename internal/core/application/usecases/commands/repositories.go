// Package commands contains the business operations that modify orders: the
// cart, placement, status changes, cancellation and cleanup.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"ordering/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CatalogFactory provides access to the food item catalog within a transaction.
	CatalogFactory interface {
		FoodItemCatalog() ports.FoodItemCatalog
	}

	// RestaurantDirectoryFactory provides access to the restaurant directory within a transaction.
	RestaurantDirectoryFactory interface {
		RestaurantDirectory() ports.RestaurantDirectory
	}

	// OrderUoW manages transactions for order-only operations such as deletion
	// and abandoned cart cleanup.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// UoW manages transactions that touch orders together with the catalog and
	// the restaurant directory. Stock decrements and the order update it guards
	// commit or roll back together.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   foodItems := uow.FoodItemCatalog()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		CatalogFactory
		RestaurantDirectoryFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)

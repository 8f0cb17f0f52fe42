package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. Everything done
// through its repositories between Begin and Commit is applied as one unit;
// Rollback after a failed step leaves no partial change behind.
type UnitOfWork interface {
	// Begin starts a new transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction. It is a no-op after Commit.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// FoodItemCatalog returns a FoodItemCatalog bound to the current transaction.
	FoodItemCatalog() FoodItemCatalog

	// RestaurantDirectory returns a RestaurantDirectory bound to the current transaction.
	RestaurantDirectory() RestaurantDirectory
}

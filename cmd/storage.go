package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"ordering/internal/adapters/out/memory"
	"ordering/internal/adapters/out/postgres"
	"ordering/internal/core/ports"

	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Storage is the persistence backend selected by STORAGE_DRIVER.
type Storage struct {
	UoWFactory ports.UnitOfWorkFactory
	// Orders serves the read side outside of any transaction.
	Orders ports.OrderRepository
	Close  func() error
}

func OpenStorage(ctx context.Context, cfg Config, logger *slog.Logger) (Storage, error) {
	storageLogger := logger.With("component", "storage", "driver", cfg.StorageDriver)

	switch cfg.StorageDriver {
	case StorageMemory:
		store := memory.NewStore()
		demo, err := memory.DemoCatalog()
		if err != nil {
			return Storage{}, fmt.Errorf("build demo catalog: %w", err)
		}
		if err = store.Seed(demo); err != nil {
			return Storage{}, fmt.Errorf("seed memory store: %w", err)
		}
		storageLogger.InfoContext(ctx, "Memory store seeded",
			"restaurants", len(demo.Restaurants),
			"food_items", len(demo.FoodItems))

		return Storage{
			UoWFactory: memory.NewUnitOfWorkFactory(store),
			Orders:     store.OrderRepository(),
			Close:      func() error { return nil },
		}, nil

	case StoragePostgres:
		db, err := gorm.Open(pgdriver.Open(cfg.PostgresDSN()), gormConfig())
		if err != nil {
			return Storage{}, fmt.Errorf("connect to database: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return Storage{}, fmt.Errorf("get sql.DB: %w", err)
		}
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
		return openGorm(ctx, db, logger, storageLogger)

	case StorageSQLite:
		db, err := postgres.OpenSQLite(cfg.SQLitePath, gormConfig())
		if err != nil {
			return Storage{}, fmt.Errorf("open sqlite database: %w", err)
		}
		return openGorm(ctx, db, logger, storageLogger)

	default:
		return Storage{}, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

func gormConfig() *gorm.Config {
	return &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Warn)}
}

// openGorm migrates db and builds the storage around it.
func openGorm(ctx context.Context, db *gorm.DB, logger, storageLogger *slog.Logger) (Storage, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return Storage{}, fmt.Errorf("get sql.DB: %w", err)
	}

	if err = postgres.Migrate(ctx, db); err != nil {
		_ = sqlDB.Close()
		return Storage{}, fmt.Errorf("migrate schema: %w", err)
	}
	storageLogger.InfoContext(ctx, "Database schema migrated")

	uowFactory := postgres.NewGormUnitOfWorkFactory(db, logger)

	return Storage{
		UoWFactory: uowFactory,
		// A unit of work that is never begun reads through the plain connection.
		Orders: uowFactory.Create().OrderRepository(),
		Close:  sqlDB.Close,
	}, nil
}

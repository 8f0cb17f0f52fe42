package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoragePostgres = "postgres"
	StorageSQLite   = "sqlite"
	StorageMemory   = "memory"
)

type Config struct {
	HTTPPort      string
	StorageDriver string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	SQLitePath string

	LogLevel  string
	LogFormat string

	CartTTL             time.Duration
	CartCleanupSchedule string
	CartCleanupBatch    int
}

// LoadConfig reads the environment, after loading .env when present.
// Values already set in the environment win over .env.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cartTTL, err := getEnvDuration("CART_TTL", 24*time.Hour)
	if err != nil {
		return Config{}, err
	}
	cleanupBatch, err := getEnvInt("CART_CLEANUP_BATCH", 100)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		HTTPPort:      getEnv("HTTP_PORT", "8080"),
		StorageDriver: strings.ToLower(getEnv("STORAGE_DRIVER", StoragePostgres)),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "ordering"),
		DBSslMode:  getEnv("DB_SSLMODE", "disable"),
		SQLitePath: getEnv("SQLITE_PATH", "ordering.db"),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: strings.ToLower(getEnv("LOG_FORMAT", "json")),

		CartTTL:             cartTTL,
		CartCleanupSchedule: getEnv("CART_CLEANUP_SCHEDULE", "0 */5 * * * *"),
		CartCleanupBatch:    cleanupBatch,
	}

	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errList []error

	switch c.StorageDriver {
	case StoragePostgres, StorageSQLite, StorageMemory:
	default:
		errList = append(errList, fmt.Errorf("STORAGE_DRIVER must be one of postgres, sqlite, memory, got %q", c.StorageDriver))
	}
	if c.CartTTL <= 0 {
		errList = append(errList, fmt.Errorf("CART_TTL must be positive, got %s", c.CartTTL))
	}
	if c.CartCleanupBatch <= 0 {
		errList = append(errList, fmt.Errorf("CART_CLEANUP_BATCH must be positive, got %d", c.CartCleanupBatch))
	}
	if c.LogFormat != "json" && c.LogFormat != "text" {
		errList = append(errList, fmt.Errorf("LOG_FORMAT must be json or text, got %q", c.LogFormat))
	}

	return errors.Join(errList...)
}

// PostgresDSN builds the connection string for gorm.io/driver/postgres.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}

// getEnv retrieves an environment variable with a default fallback.
func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal, nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return parsed, nil
}

func getEnvDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal, nil
	}

	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration such as 30m or 24h: %w", key, err)
	}
	return parsed, nil
}

package postgres

import (
	"fmt"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const sqliteBusyTimeoutMillis = 5000

// SQLiteDSN adds the go-sqlite3 options units of work rely on: transactions
// take the write lock at BEGIN, and a connection waits for a busy database
// instead of failing with "database is locked".
func SQLiteDSN(path string) string {
	separator := "?"
	if strings.Contains(path, "?") {
		separator = "&"
	}
	return fmt.Sprintf("%s%s_busy_timeout=%d&_txlock=immediate", path, separator, sqliteBusyTimeoutMillis)
}

// OpenSQLite opens the database file at path for concurrent use. SQLite allows
// one writer at a time, so the pool holds a single connection and concurrent
// units of work queue for it rather than racing for the file lock.
func OpenSQLite(path string, config *gorm.Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(SQLiteDSN(path)), config)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

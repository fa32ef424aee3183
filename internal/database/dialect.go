package database

import (
	"database/sql"
	"regexp"
	"strconv"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// Dialect abstracts the differences between the supported SQL backends
type Dialect interface {
	// DriverName returns the driver name for sql.Open
	DriverName() string

	// RewriteQuery converts ? placeholders if the backend needs it
	RewriteQuery(query string) string

	// SupportsLastInsertId reports whether the driver implements
	// LastInsertId; when false, inserts use a RETURNING clause instead
	SupportsLastInsertId() bool

	// ConfigureConnection applies backend-specific connection settings
	ConfigureConnection(db *sql.DB) error

	// MigrationsSubdir returns the per-backend migrations directory name
	MigrationsSubdir() string

	// CreateMigrationsTableQuery returns the SQL for the migration
	// tracking table
	CreateMigrationsTableQuery() string
}

var placeholderPattern = regexp.MustCompile(`\?`)

// numberPlaceholders converts ? placeholders to $1, $2, ...
func numberPlaceholders(query string) string {
	n := 0
	return placeholderPattern.ReplaceAllStringFunc(query, func(string) string {
		n++
		return "$" + strconv.Itoa(n)
	})
}

func configurePool(db *sql.DB) {
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(1 * time.Minute)
}

// SQLiteDialect implements Dialect for SQLite
type SQLiteDialect struct{}

func (d SQLiteDialect) DriverName() string { return "sqlite3" }

func (d SQLiteDialect) RewriteQuery(query string) string { return query }

func (d SQLiteDialect) SupportsLastInsertId() bool { return true }

func (d SQLiteDialect) ConfigureConnection(db *sql.DB) error {
	configurePool(db)
	// WAL for concurrent readers, foreign keys for referential integrity
	if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		return err
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON;"); err != nil {
		return err
	}
	return nil
}

func (d SQLiteDialect) MigrationsSubdir() string { return "sqlite" }

func (d SQLiteDialect) CreateMigrationsTableQuery() string {
	return `
		CREATE TABLE IF NOT EXISTS migrations (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			filename TEXT UNIQUE NOT NULL,
			executed_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`
}

// PostgresDialect implements Dialect for PostgreSQL
type PostgresDialect struct{}

func (d PostgresDialect) DriverName() string { return "postgres" }

func (d PostgresDialect) RewriteQuery(query string) string {
	return numberPlaceholders(query)
}

func (d PostgresDialect) SupportsLastInsertId() bool { return false }

func (d PostgresDialect) ConfigureConnection(db *sql.DB) error {
	configurePool(db)
	return nil
}

func (d PostgresDialect) MigrationsSubdir() string { return "postgres" }

func (d PostgresDialect) CreateMigrationsTableQuery() string {
	return `
		CREATE TABLE IF NOT EXISTS migrations (
			id BIGSERIAL PRIMARY KEY,
			filename TEXT UNIQUE NOT NULL,
			executed_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
		);
	`
}

// MySQLDialect implements Dialect for MySQL
type MySQLDialect struct{}

func (d MySQLDialect) DriverName() string { return "mysql" }

func (d MySQLDialect) RewriteQuery(query string) string { return query }

func (d MySQLDialect) SupportsLastInsertId() bool { return true }

func (d MySQLDialect) ConfigureConnection(db *sql.DB) error {
	configurePool(db)
	if _, err := db.Exec("SET FOREIGN_KEY_CHECKS = 1;"); err != nil {
		return err
	}
	return nil
}

func (d MySQLDialect) MigrationsSubdir() string { return "mysql" }

func (d MySQLDialect) CreateMigrationsTableQuery() string {
	return `
		CREATE TABLE IF NOT EXISTS migrations (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			filename VARCHAR(255) UNIQUE NOT NULL,
			executed_at DATETIME(6) DEFAULT CURRENT_TIMESTAMP(6)
		);
	`
}

// Package database provides the SQL connection layer for the self-hosted
// store mode, with dialect support for SQLite, PostgreSQL and MySQL.
package database

import (
	"database/sql"
	"fmt"
	"strings"
)

// DB wraps the database connection with dialect-aware query helpers
type DB struct {
	conn    *sql.DB
	dialect Dialect
}

// Open connects to the database named by dbType ("sqlite", "postgres" or
// "mysql") using dsn (a file path for SQLite, a connection URL otherwise)
func Open(dbType, dsn string) (*DB, error) {
	var dialect Dialect

	switch strings.ToLower(dbType) {
	case "sqlite", "sqlite3", "":
		dialect = SQLiteDialect{}
	case "postgres", "postgresql":
		dialect = PostgresDialect{}
	case "mysql":
		dialect = MySQLDialect{}
	default:
		return nil, fmt.Errorf("unsupported database type: %s", dbType)
	}

	conn, err := sql.Open(dialect.DriverName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := conn.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := dialect.ConfigureConnection(conn); err != nil {
		return nil, fmt.Errorf("failed to configure connection: %w", err)
	}

	return &DB{conn: conn, dialect: dialect}, nil
}

// Close closes the underlying connection
func (db *DB) Close() error {
	return db.conn.Close()
}

// Dialect returns the active dialect
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Exec runs a statement with automatic placeholder rewriting
func (db *DB) Exec(query string, args ...interface{}) (sql.Result, error) {
	return db.conn.Exec(db.dialect.RewriteQuery(query), args...)
}

// Query runs a query with automatic placeholder rewriting
func (db *DB) Query(query string, args ...interface{}) (*sql.Rows, error) {
	return db.conn.Query(db.dialect.RewriteQuery(query), args...)
}

// QueryRow runs a single-row query with automatic placeholder rewriting
func (db *DB) QueryRow(query string, args ...interface{}) *sql.Row {
	return db.conn.QueryRow(db.dialect.RewriteQuery(query), args...)
}

// ExecReturningID runs an INSERT and returns the new row id. On backends
// without LastInsertId support the statement gets a RETURNING clause.
func (db *DB) ExecReturningID(query string, args ...interface{}) (int64, error) {
	if db.dialect.SupportsLastInsertId() {
		result, err := db.Exec(query, args...)
		if err != nil {
			return 0, err
		}
		return result.LastInsertId()
	}

	var id int64
	err := db.QueryRow(query+" RETURNING id", args...).Scan(&id)
	return id, err
}

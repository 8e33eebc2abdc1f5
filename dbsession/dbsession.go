// Package dbsession manages the relational database connection pool.
// The planner core does not read or write relational data today; the
// session exists for deployments that persist plans or account data
// alongside the service, and for the /health-style liveness ping.
package dbsession

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// Session wraps a *sql.DB with the pool settings the service uses.
type Session struct {
	db *sql.DB
}

// Open connects to the MySQL DSN and verifies the connection. An empty
// DSN is a configuration decision, not an error; callers should skip
// opening a session in that case.
func Open(ctx context.Context, dsn string) (*Session, error) {
	if dsn == "" {
		return nil, fmt.Errorf("empty database DSN")
	}
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	return &Session{db: db}, nil
}

// NewFromDB wraps an existing handle; used by tests with sqlmock.
func NewFromDB(db *sql.DB) *Session {
	return &Session{db: db}
}

// Ping verifies the pool is still healthy.
func (s *Session) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// DB exposes the underlying handle for future persistence layers.
func (s *Session) DB() *sql.DB {
	return s.db
}

// Close releases the pool.
func (s *Session) Close() error {
	return s.db.Close()
}

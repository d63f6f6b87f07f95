package postgres

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
)

// HealthPinger opens a plain database/sql connection for liveness probing,
// separate from the pgxpool-backed Connection used on the read/write path.
// A probe has no business borrowing a pooled connection meant for request
// traffic, so it gets its own single-connection handle via lib/pq.
type HealthPinger struct {
	db *sql.DB
}

// NewHealthPinger opens (but does not yet connect) a database/sql handle
// against dsn using the lib/pq driver.
func NewHealthPinger(dsn string) (*HealthPinger, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	return &HealthPinger{db: db}, nil
}

// Ping reports whether the database is reachable, suitable for passing to
// observability.DatabaseHealthChecker.
func (p *HealthPinger) Ping(ctx context.Context) error {
	return p.db.PingContext(ctx)
}

// Close releases the underlying connection.
func (p *HealthPinger) Close() error {
	return p.db.Close()
}

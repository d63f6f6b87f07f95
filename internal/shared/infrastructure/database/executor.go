package database

import (
	"context"
	"database/sql"
)

// Row is what ScheduleRepository.FindByID and friends Scan a schedule or
// time block row out of. It abstracts pgx.Row and *sql.Row so the same
// scan code runs against either backend.
type Row interface {
	Scan(dest ...any) error
}

// Rows is what ScheduleRepository.loadTimeBlocks iterates to reconstruct a
// schedule's committed TimeBlocks. It abstracts pgx.Rows and *sql.Rows.
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Close() error
	Err() error
}

// Result is what ScheduleRepository's insert/update/delete statements
// return; LastInsertId is unused by Postgres (its tables are UUID-keyed)
// but present for the sqlite backend's database/sql.Result.
type Result interface {
	RowsAffected() (int64, error)
	LastInsertId() (int64, error)
}

// Executor runs the SQL statements queries.go renders for either backend.
// ScheduleRepository holds one of these (or obtains one ambient to the
// current transaction via ExecutorFromContext) rather than a concrete
// *pgxpool.Pool or *sql.DB, so it never branches on driver.
type Executor interface {
	// Exec runs a statement that doesn't return rows (INSERT, UPDATE, DELETE).
	Exec(ctx context.Context, query string, args ...any) (Result, error)

	// QueryRow runs a statement that returns at most one row.
	QueryRow(ctx context.Context, query string, args ...any) Row

	// Query runs a statement that returns multiple rows.
	Query(ctx context.Context, query string, args ...any) (Rows, error)
}

// Transaction is an Executor ScheduleRepository.Save opens when committing
// a schedule's blocks, so a partial insert failure can't leave a schedule
// row with only some of its TimeBlocks persisted.
type Transaction interface {
	Executor
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Connection is the open handle cmd/scheduler hands to
// persistence.NewScheduleRepository; which concrete backend sits behind it
// is chosen once, in NewConnection, from Config.Driver.
type Connection interface {
	Executor
	// BeginTx starts a new transaction.
	BeginTx(ctx context.Context) (Transaction, error)
	// Close closes the underlying connection or pool.
	Close() error
	// Ping verifies the connection is still alive. The health command uses
	// its own dedicated postgres.HealthPinger rather than this method, so it
	// can probe connectivity without holding a pool open for the whole run.
	Ping(ctx context.Context) error
	// Driver reports which backend this Connection talks to, so
	// persistence.queriesFor can pick the matching SQL dialect.
	Driver() Driver
}

// sqlResult wraps sql.Result to implement our Result interface.
type sqlResult struct {
	result sql.Result
}

func (r *sqlResult) RowsAffected() (int64, error) {
	return r.result.RowsAffected()
}

func (r *sqlResult) LastInsertId() (int64, error) {
	return r.result.LastInsertId()
}

// WrapSQLResult wraps a sql.Result to implement the Result interface.
func WrapSQLResult(r sql.Result) Result {
	return &sqlResult{result: r}
}

// sqlRows wraps sql.Rows to implement our Rows interface.
type sqlRows struct {
	rows *sql.Rows
}

func (r *sqlRows) Next() bool {
	return r.rows.Next()
}

func (r *sqlRows) Scan(dest ...any) error {
	return r.rows.Scan(dest...)
}

func (r *sqlRows) Close() error {
	return r.rows.Close()
}

func (r *sqlRows) Err() error {
	return r.rows.Err()
}

// WrapSQLRows wraps sql.Rows to implement the Rows interface.
func WrapSQLRows(r *sql.Rows) Rows {
	return &sqlRows{rows: r}
}

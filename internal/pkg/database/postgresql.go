package database

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrTimeout is returned when a datastore call does not complete within the
// configured query timeout. Timeout is the only datastore failure callers may
// retry (with backoff).
var ErrTimeout = errors.New("datastore operation timed out")

const DefaultQueryTimeout = 5 * time.Second

type DB struct {
	*pgxpool.Pool
	queryTimeout time.Duration
}

func NewPostgreSQLDB(dsn string, queryTimeout time.Duration) (*DB, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}

	// Connection pool settings
	config.MaxConns = 25
	config.MinConns = 5

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(context.Background()); err != nil {
		return nil, err
	}

	return NewDB(pool, queryTimeout), nil
}

// NewDB wraps an existing pool. Service tests use it with a nil pool since
// only the query timeout matters there.
func NewDB(pool *pgxpool.Pool, queryTimeout time.Duration) *DB {
	if queryTimeout <= 0 {
		queryTimeout = DefaultQueryTimeout
	}
	return &DB{Pool: pool, queryTimeout: queryTimeout}
}

func (db *DB) BeginTx(ctx context.Context) (pgx.Tx, error) {
	return db.Pool.Begin(ctx)
}

// QueryTimeout bounds one public operation against the datastore. Services
// call it once at the top of each operation so no datastore call can hang
// indefinitely.
func (db *DB) QueryTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, db.queryTimeout)
}

// MapError converts context deadline expiry into ErrTimeout so callers can
// tell a slow datastore apart from a genuine failure.
func MapError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrTimeout
	}
	return err
}

type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, arguments ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

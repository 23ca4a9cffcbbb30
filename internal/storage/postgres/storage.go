package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/dzinstall/storefront/internal/domain/errors"
	"github.com/dzinstall/storefront/internal/domain/repository"
)

type pgxPool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage keeps JSON documents in a single PostgreSQL table.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

var _ repository.DocumentStore = (*Storage)(nil)

const (
	selectDocument  = `SELECT value FROM documents WHERE key=$1`
	selectForUpdate = selectDocument + ` FOR UPDATE`
	upsertDocument  = `INSERT INTO documents (key, value, updated_at) VALUES ($1, $2::jsonb, NOW()) ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`
	deleteDocument  = `DELETE FROM documents WHERE key=$1`
)

const healthCheckTimeout = 2 * time.Second

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS documents (
            key TEXT PRIMARY KEY,
            value JSONB NOT NULL,
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_documents_updated ON documents(updated_at DESC)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			if concurrentCreate(err) {
				s.logger.Warn("schema created concurrently", slog.String("error", err.Error()))
				continue
			}
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// concurrentCreate detects the catalog race two instances hit when both run
// CREATE ... IF NOT EXISTS at once.
func concurrentCreate(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgerrcode.UniqueViolation || pgErr.Code == pgerrcode.DuplicateTable || pgErr.Code == pgerrcode.DuplicateObject
}

// View runs fn in a read-only repeatable-read transaction.
func (s *Storage) View(ctx context.Context, fn func(repository.DocumentTx) error) error {
	opts := pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}
	return s.WithinTransaction(ctx, opts, func(tx pgx.Tx) error {
		return fn(&documentTx{q: tx, query: selectDocument})
	})
}

// Update runs fn in a read-write transaction, locking every document it reads.
func (s *Storage) Update(ctx context.Context, fn func(repository.DocumentTx) error) error {
	return s.WithinTransaction(ctx, pgx.TxOptions{}, func(tx pgx.Tx) error {
		return fn(&documentTx{q: tx, query: selectForUpdate})
	})
}

type querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type documentTx struct {
	q     querier
	query string
}

func (t *documentTx) Read(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	if err := t.q.QueryRow(ctx, t.query, key).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	return value, nil
}

func (t *documentTx) Write(ctx context.Context, key string, value []byte) error {
	if _, err := t.q.Exec(ctx, upsertDocument, key, string(value)); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

func (t *documentTx) Delete(ctx context.Context, key string) error {
	if _, err := t.q.Exec(ctx, deleteDocument, key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, opts pgx.TxOptions, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, opts)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()
	return s.pool.Ping(ctx)
}

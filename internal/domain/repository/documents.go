package repository

import "context"

// DocumentTx reads and writes JSON documents inside one unit of work.
// Read returns domain errors.ErrNotFound for absent keys.
type DocumentTx interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// DocumentStore persists JSON documents under string keys.
type DocumentStore interface {
	// View runs fn against a consistent read-only snapshot.
	View(ctx context.Context, fn func(tx DocumentTx) error) error
	// Update runs fn and commits every write atomically when fn returns nil.
	Update(ctx context.Context, fn func(tx DocumentTx) error) error
	HealthCheck(ctx context.Context) error
	Close()
}

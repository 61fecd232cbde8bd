// Package ledger defines the key-value store interface the auction engine
// runs on. The store is the only shared mutable resource: all cross-request
// safety comes from its optimistic transactions (watch a key set, abort the
// commit if any watched key changed since the watch began).
package ledger

import (
	"context"
	"errors"
)

// Errors returned by ledger operations.
var (
	// ErrNotFound is returned when a key is absent.
	ErrNotFound = errors.New("ledger: key not found")
	// ErrConflict is returned when an optimistic transaction aborts because
	// a watched key changed between watch and commit.
	ErrConflict = errors.New("ledger: transaction conflict")
)

// Writes buffers the mutations of a transaction. All buffered writes are
// applied atomically on commit, or not at all.
type Writes interface {
	// Set buffers a plain key write.
	Set(key, value string)
	// LPrepend buffers a prepend to the list at key.
	LPrepend(key, value string)
}

// Tx is the view inside a watched transaction. Reads go through the store
// connection holding the watch; Commit submits the buffered writes and
// returns ErrConflict if any watched key was mutated since the watch began.
type Tx interface {
	Get(ctx context.Context, key string) (string, error)
	LRange(ctx context.Context, key string, start, stop int64) ([]string, error)
	Commit(ctx context.Context, build func(w Writes)) error
}

// Store is the ledger interface. Lists are most-recent-first: LPrepend puts
// the newest element at index 0.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	LPrepend(ctx context.Context, key, value string) error
	LRange(ctx context.Context, key string, start, stop int64) ([]string, error)

	// Watch begins an optimistic transaction over keys and runs fn with its
	// Tx. A commit inside fn fails with ErrConflict if any watched key
	// changed after the watch began. Watch runs fn at most once; retrying is
	// the caller's responsibility.
	Watch(ctx context.Context, fn func(tx Tx) error, keys ...string) error

	// Ping checks the underlying connection health.
	Ping(ctx context.Context) error
	Close() error
}

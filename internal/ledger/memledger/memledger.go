// Package memledger provides an in-process ledger.Store with the same
// optimistic-transaction semantics as the Redis driver: every key carries a
// version that is bumped on mutation, and a commit aborts when any watched
// key's version moved after the watch began.
//
// It backs tests and local development; it is not durable.
package memledger

import (
	"context"
	"sync"

	"github.com/openbid/auctiond/internal/config"
	"github.com/openbid/auctiond/internal/ledger"
)

func init() {
	ledger.Register("memory", func(_ context.Context, _ config.LedgerConfig) (ledger.Store, error) {
		return New(), nil
	})
}

type entry struct {
	value   string
	list    []string // index 0 is the most recently prepended element
	version uint64
}

// Store implements ledger.Store over a mutex-guarded map.
type Store struct {
	mu   sync.Mutex
	data map[string]*entry
}

// New returns an empty in-memory store.
func New() *Store {
	return &Store{data: make(map[string]*entry)}
}

func (s *Store) Get(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.get(key)
}

func (s *Store) get(key string) (string, error) {
	e, ok := s.data[key]
	if !ok || e.list != nil {
		return "", ledger.ErrNotFound
	}
	return e.value, nil
}

func (s *Store) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.set(key, value)
	return nil
}

func (s *Store) set(key, value string) {
	e, ok := s.data[key]
	if !ok {
		e = &entry{}
		s.data[key] = e
	}
	e.value = value
	e.list = nil
	e.version++
}

func (s *Store) LPrepend(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lprepend(key, value)
	return nil
}

func (s *Store) lprepend(key, value string) {
	e, ok := s.data[key]
	if !ok {
		e = &entry{}
		s.data[key] = e
	}
	e.list = append([]string{value}, e.list...)
	e.version++
}

func (s *Store) LRange(_ context.Context, key string, start, stop int64) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lrange(key, start, stop)
}

// lrange follows list-range conventions: inclusive bounds, negative indexes
// count from the end, out-of-range requests clamp to an empty result.
func (s *Store) lrange(key string, start, stop int64) ([]string, error) {
	e, ok := s.data[key]
	if !ok {
		return nil, nil
	}
	n := int64(len(e.list))
	if start < 0 {
		start += n
	}
	if stop < 0 {
		stop += n
	}
	if start < 0 {
		start = 0
	}
	if stop >= n {
		stop = n - 1
	}
	if start > stop || start >= n {
		return nil, nil
	}
	out := make([]string, stop-start+1)
	copy(out, e.list[start:stop+1])
	return out, nil
}

func (s *Store) version(key string) uint64 {
	if e, ok := s.data[key]; ok {
		return e.version
	}
	return 0
}

// tx implements ledger.Tx. Reads observe current state; the version snapshot
// taken when the watch began decides whether Commit succeeds.
type tx struct {
	s       *Store
	watched map[string]uint64
}

func (t *tx) Get(_ context.Context, key string) (string, error) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	return t.s.get(key)
}

func (t *tx) LRange(_ context.Context, key string, start, stop int64) ([]string, error) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	return t.s.lrange(key, start, stop)
}

// writes buffers mutations until Commit applies them under the store lock.
type writes struct {
	ops []func(s *Store)
}

func (w *writes) Set(key, value string) {
	w.ops = append(w.ops, func(s *Store) { s.set(key, value) })
}

func (w *writes) LPrepend(key, value string) {
	w.ops = append(w.ops, func(s *Store) { s.lprepend(key, value) })
}

func (t *tx) Commit(_ context.Context, build func(w ledger.Writes)) error {
	var buf writes
	build(&buf)

	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	for key, ver := range t.watched {
		if t.s.version(key) != ver {
			return ledger.ErrConflict
		}
	}
	for _, op := range buf.ops {
		op(t.s)
	}
	return nil
}

func (s *Store) Watch(ctx context.Context, fn func(tx ledger.Tx) error, keys ...string) error {
	t := &tx{s: s, watched: make(map[string]uint64, len(keys))}
	s.mu.Lock()
	for _, k := range keys {
		t.watched[k] = s.version(k)
	}
	s.mu.Unlock()
	return fn(t)
}

func (s *Store) Ping(context.Context) error { return nil }

func (s *Store) Close() error { return nil }

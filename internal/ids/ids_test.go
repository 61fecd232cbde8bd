package ids_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"

	"go.opentelemetry.io/otel/trace/noop"

	"github.com/openbid/auctiond/internal/ids"
	"github.com/openbid/auctiond/internal/ledger"
	"github.com/openbid/auctiond/internal/ledger/memledger"
)

var testTP = noop.NewTracerProvider()

func TestNext_Sequential(t *testing.T) {
	ctx := context.Background()
	alloc := ids.New(memledger.New(), 5, testTP)

	for want := int64(1); want <= 10; want++ {
		got, err := alloc.Next(ctx, "global:nextItemId")
		if err != nil {
			t.Fatalf("Next() error = %v", err)
		}
		if got != want {
			t.Errorf("Next() = %d, want %d", got, want)
		}
	}
}

func TestNext_IndependentCounters(t *testing.T) {
	ctx := context.Background()
	alloc := ids.New(memledger.New(), 5, testTP)

	a, err := alloc.Next(ctx, "global:nextItemId")
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	b, err := alloc.Next(ctx, "global:nextBidId")
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if a != 1 || b != 1 {
		t.Errorf("counters not independent: item=%d bid=%d, want 1 and 1", a, b)
	}
}

func TestNext_CorruptCounter(t *testing.T) {
	ctx := context.Background()
	store := memledger.New()
	_ = store.Set(ctx, "global:nextBidId", "not-a-number")

	alloc := ids.New(store, 5, testTP)
	if _, err := alloc.Next(ctx, "global:nextBidId"); err == nil {
		t.Fatal("expected error for corrupt counter value")
	}
}

// Issued ids must be pairwise distinct and cover exactly 1..N regardless of
// interleaving.
func TestNext_ConcurrentUniqueMonotonic(t *testing.T) {
	ctx := context.Background()
	// A generous retry budget: every conflicting allocator retries from a
	// fresh read, so the loop terminates quickly even under contention.
	alloc := ids.New(memledger.New(), 1000, testTP)

	const goroutines = 16
	const perG = 20

	var mu sync.Mutex
	issued := make([]int64, 0, goroutines*perG)

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perG; i++ {
				id, err := alloc.Next(ctx, "ctr")
				if err != nil {
					t.Errorf("Next() error = %v", err)
					return
				}
				mu.Lock()
				issued = append(issued, id)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	sort.Slice(issued, func(i, j int) bool { return issued[i] < issued[j] })
	for i, id := range issued {
		if id != int64(i+1) {
			t.Fatalf("issued[%d] = %d, want %d (ids must be dense, unique and increasing)", i, id, i+1)
		}
	}
}

// conflictStore wraps a store and forces every Watch to conflict.
type conflictStore struct {
	ledger.Store
}

func (c *conflictStore) Watch(ctx context.Context, fn func(tx ledger.Tx) error, keys ...string) error {
	return ledger.ErrConflict
}

func TestNext_RetryBudgetExhausted(t *testing.T) {
	ctx := context.Background()
	alloc := ids.New(&conflictStore{Store: memledger.New()}, 3, testTP)

	_, err := alloc.Next(ctx, "ctr")
	if !errors.Is(err, ledger.ErrConflict) {
		t.Fatalf("Next() error = %v, want ErrConflict", err)
	}
}

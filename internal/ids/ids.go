// Package ids allocates unique, strictly increasing identifiers on top of a
// ledger counter key. Allocation is a watched read-increment-commit: the
// store aborts the commit if another allocator moved the counter first, so no
// two callers ever observe the same issued id.
package ids

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/openbid/auctiond/internal/ledger"
)

// Allocator issues ids from named counter keys.
type Allocator struct {
	store       ledger.Store
	maxAttempts int
	tracer      trace.Tracer
}

// New creates an Allocator. maxAttempts bounds the retry loop of a single
// allocation; exhausting it surfaces ledger.ErrConflict.
func New(store ledger.Store, maxAttempts int, tp trace.TracerProvider) *Allocator {
	return &Allocator{
		store:       store,
		maxAttempts: maxAttempts,
		tracer:      tp.Tracer("github.com/openbid/auctiond/internal/ids"),
	}
}

// Next issues the next id from counterKey. An absent counter reads as 0, so
// the first issued id is 1.
func (a *Allocator) Next(ctx context.Context, counterKey string) (int64, error) {
	ctx, span := a.tracer.Start(ctx, "Allocator.Next",
		trace.WithAttributes(attribute.String("counter.key", counterKey)),
	)
	defer span.End()

	for attempt := 0; attempt < a.maxAttempts; attempt++ {
		var id int64
		err := a.store.Watch(ctx, func(tx ledger.Tx) error {
			cur, err := tx.Get(ctx, counterKey)
			if err != nil && !errors.Is(err, ledger.ErrNotFound) {
				return err
			}
			n := int64(0)
			if cur != "" {
				n, err = strconv.ParseInt(cur, 10, 64)
				if err != nil {
					return fmt.Errorf("corrupt counter %s=%q: %w", counterKey, cur, err)
				}
			}
			id = n + 1
			return tx.Commit(ctx, func(w ledger.Writes) {
				w.Set(counterKey, strconv.FormatInt(id, 10))
			})
		}, counterKey)

		if err == nil {
			return id, nil
		}
		if !errors.Is(err, ledger.ErrConflict) {
			return 0, err
		}
		// Another allocator won the race; retry from a fresh read.
	}
	return 0, fmt.Errorf("allocating id from %s after %d attempts: %w", counterKey, a.maxAttempts, ledger.ErrConflict)
}

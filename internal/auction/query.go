package auction

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/openbid/auctiond/internal/ledger"
)

// History returns the item's full bid history, each bid resolved to its
// bidder and price. Pure reads, no transaction: the view may be torn
// relative to concurrent writers, which is acceptable for display.
func (e *Engine) History(ctx context.Context, itemID int64) (*History, error) {
	ctx, span := e.tracer.Start(ctx, "Engine.History",
		trace.WithAttributes(attribute.Int64("item.id", itemID)),
	)
	defer span.End()

	name, err := e.store.Get(ctx, itemKey(itemID, "name"))
	if errors.Is(err, ledger.ErrNotFound) {
		return nil, fmt.Errorf("item %d: %w", itemID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("reading item %d name: %w", itemID, err)
	}

	h := &History{Name: name}
	var bidIDs []string

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		open, err := e.readOpen(gctx, e.store, itemID)
		if err != nil {
			return err
		}
		h.IsOpen = open
		return nil
	})
	g.Go(func() error {
		v, err := e.store.Get(gctx, itemKey(itemID, "isDeal"))
		if errors.Is(err, ledger.ErrNotFound) {
			return nil // not closed yet
		}
		if err != nil {
			return fmt.Errorf("reading item %d deal flag: %w", itemID, err)
		}
		h.IsDeal = v == "1"
		return nil
	})
	g.Go(func() error {
		v, err := e.store.Get(gctx, itemKey(itemID, "dealPrice"))
		if errors.Is(err, ledger.ErrNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading item %d deal price: %w", itemID, err)
		}
		p, err := parsePrice(v)
		if err != nil {
			return err
		}
		h.DealPrice = p
		return nil
	})
	g.Go(func() error {
		ids, err := e.store.LRange(gctx, itemKey(itemID, "bids"), 0, -1)
		if err != nil {
			return fmt.Errorf("reading item %d bid list: %w", itemID, err)
		}
		bidIDs = ids
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	h.Bids = make([]BidRecord, len(bidIDs))
	g, gctx = errgroup.WithContext(ctx)
	for i, raw := range bidIDs {
		g.Go(func() error {
			bidID, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return fmt.Errorf("corrupt bid id %q on item %d: %w", raw, itemID, err)
			}
			rec, err := e.bidRecord(gctx, bidID)
			if err != nil {
				return err
			}
			h.Bids[i] = rec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return h, nil
}

// bidRecord resolves one bid to bidder id, display name and price. An
// unregistered bidder resolves to an empty display name.
func (e *Engine) bidRecord(ctx context.Context, bidID int64) (BidRecord, error) {
	rec := BidRecord{BidID: bidID}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		uid, err := e.store.Get(gctx, bidKey(bidID, "userid"))
		if err != nil {
			return fmt.Errorf("reading bid %d bidder: %w", bidID, err)
		}
		rec.UserID = uid

		name, err := e.names.GetName(gctx, uid)
		if err != nil && !errors.Is(err, ledger.ErrNotFound) {
			return fmt.Errorf("resolving bidder %s name: %w", uid, err)
		}
		rec.Username = name
		return nil
	})
	g.Go(func() error {
		v, err := e.store.Get(gctx, bidKey(bidID, "price"))
		if err != nil {
			return fmt.Errorf("reading bid %d price: %w", bidID, err)
		}
		p, err := parsePrice(v)
		if err != nil {
			return err
		}
		rec.Price = p
		return nil
	})
	return rec, g.Wait()
}

// ItemInfo returns the summary view of one item: highest bid while open,
// deal outcome once closed.
func (e *Engine) ItemInfo(ctx context.Context, itemID int64) (*Summary, error) {
	ctx, span := e.tracer.Start(ctx, "Engine.ItemInfo",
		trace.WithAttributes(attribute.Int64("item.id", itemID)),
	)
	defer span.End()

	name, err := e.store.Get(ctx, itemKey(itemID, "name"))
	if errors.Is(err, ledger.ErrNotFound) {
		return nil, fmt.Errorf("item %d: %w", itemID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("reading item %d name: %w", itemID, err)
	}

	s := &Summary{ID: itemID, Name: name}

	owner, err := e.store.Get(ctx, itemKey(itemID, "userid"))
	if err != nil {
		return nil, fmt.Errorf("reading item %d owner: %w", itemID, err)
	}
	s.OwnerID = owner

	open, err := e.readOpen(ctx, e.store, itemID)
	if err != nil {
		return nil, err
	}
	s.IsOpen = open

	if open {
		highest, err := e.readHighestBid(ctx, e.store, itemID)
		if err != nil {
			return nil, err
		}
		s.HighestBid = highest
		return s, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		v, err := e.store.Get(gctx, itemKey(itemID, "isDeal"))
		if errors.Is(err, ledger.ErrNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading item %d deal flag: %w", itemID, err)
		}
		s.IsDeal = v == "1"
		return nil
	})
	g.Go(func() error {
		v, err := e.store.Get(gctx, itemKey(itemID, "dealPrice"))
		if errors.Is(err, ledger.ErrNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading item %d deal price: %w", itemID, err)
		}
		p, err := parsePrice(v)
		if err != nil {
			return err
		}
		s.DealPrice = p
		return nil
	})
	return s, g.Wait()
}

// UserItems lists the user's most recently published items, bounded by the
// configured limit.
func (e *Engine) UserItems(ctx context.Context, userID string) ([]Summary, error) {
	ctx, span := e.tracer.Start(ctx, "Engine.UserItems",
		trace.WithAttributes(attribute.String("user.id", userID)),
	)
	defer span.End()

	if userID == "" {
		return nil, fmt.Errorf("user id must not be empty: %w", ErrInvalidArgument)
	}

	raw, err := e.store.LRange(ctx, userKey(userID, "items"), 0, int64(e.userItemsLimit-1))
	if err != nil {
		return nil, fmt.Errorf("reading user %s item list: %w", userID, err)
	}

	out := make([]Summary, len(raw))
	g, gctx := errgroup.WithContext(ctx)
	for i, idStr := range raw {
		g.Go(func() error {
			itemID, err := strconv.ParseInt(idStr, 10, 64)
			if err != nil {
				return fmt.Errorf("corrupt item id %q for user %s: %w", idStr, userID, err)
			}
			info, err := e.ItemInfo(gctx, itemID)
			if err != nil {
				return err
			}
			out[i] = *info
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Package auction implements the transactional auction engine: item
// creation, bid placement, auction closing and history retrieval over a
// shared ledger. No in-process locks are held across operations; every
// mutation is a watched ledger transaction retried on conflict, so the
// engine is safe to run in any number of concurrent replicas.
package auction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/openbid/auctiond/internal/clock"
	"github.com/openbid/auctiond/internal/config"
	"github.com/openbid/auctiond/internal/events"
	"github.com/openbid/auctiond/internal/ids"
	"github.com/openbid/auctiond/internal/ledger"
)

// UserDirectory resolves user ids to display names. The engine only ever
// reads from it.
type UserDirectory interface {
	GetName(ctx context.Context, userID string) (string, error)
}

// Validation-failure sentinels for the in-transaction checks. They abort the
// commit without an error surfacing to the caller.
var (
	errNotOpen  = errors.New("item is not open")
	errPriceLow = errors.New("price does not exceed highest bid")
)

// Engine coordinates auction operations against the ledger.
type Engine struct {
	store     ledger.Store
	alloc     *ids.Allocator
	names     UserDirectory
	publisher events.Publisher
	logger    *slog.Logger
	tracer    trace.Tracer
	clock     clock.Clock

	maxRetries     int
	userItemsLimit int
}

// NewEngine creates an auction Engine.
func NewEngine(store ledger.Store, alloc *ids.Allocator, names UserDirectory, pub events.Publisher, logger *slog.Logger, tp trace.TracerProvider, clk clock.Clock, cfg config.EngineConfig) *Engine {
	return &Engine{
		store:          store,
		alloc:          alloc,
		names:          names,
		publisher:      pub,
		logger:         logger,
		tracer:         tp.Tracer("github.com/openbid/auctiond/internal/auction"),
		clock:          clk,
		maxRetries:     cfg.MaxRetries,
		userItemsLimit: cfg.UserItemsLimit,
	}
}

// CreateItem publishes a new open item owned by ownerID. The id comes from
// the allocator; the record commit additionally watches the item counter, so
// a racing allocation aborts the commit and the whole attempt is redone with
// a freshly allocated id.
func (e *Engine) CreateItem(ctx context.Context, ownerID, name string, reservedPrice float64) (*Item, error) {
	ctx, span := e.tracer.Start(ctx, "Engine.CreateItem",
		trace.WithAttributes(
			attribute.String("owner.id", ownerID),
			attribute.String("item.name", name),
		),
	)
	defer span.End()

	if ownerID == "" {
		return nil, fmt.Errorf("owner id must not be empty: %w", ErrInvalidArgument)
	}
	if name == "" {
		return nil, fmt.Errorf("item name must not be empty: %w", ErrInvalidArgument)
	}
	if reservedPrice < 0 || math.IsNaN(reservedPrice) || math.IsInf(reservedPrice, 0) {
		return nil, fmt.Errorf("reserved price %v must be a non-negative finite number: %w", reservedPrice, ErrInvalidArgument)
	}

	ownerItemsKey := userKey(ownerID, "items")

	for attempt := 0; attempt < e.maxRetries; attempt++ {
		id, err := e.alloc.Next(ctx, ItemCounterKey)
		if err != nil {
			return nil, fmt.Errorf("allocating item id: %w", err)
		}

		err = e.store.Watch(ctx, func(tx ledger.Tx) error {
			return tx.Commit(ctx, func(w ledger.Writes) {
				w.Set(itemKey(id, "name"), name)
				w.Set(itemKey(id, "reservedPrice"), formatPrice(reservedPrice))
				w.Set(itemKey(id, "userid"), ownerID)
				w.Set(itemKey(id, "isOpen"), formatBool(true))
				w.LPrepend(ownerItemsKey, strconv.FormatInt(id, 10))
			})
		}, ItemCounterKey, ownerItemsKey)

		if errors.Is(err, ledger.ErrConflict) {
			// A competing writer moved the counter or the owner's list;
			// retry with a fresh id so issued ids stay strictly increasing.
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("committing item %d: %w", id, err)
		}

		e.publish(ctx, events.ItemCreated, events.ItemCreatedData{
			ItemID:        id,
			OwnerID:       ownerID,
			Name:          name,
			ReservedPrice: reservedPrice,
		})

		e.logger.InfoContext(ctx, "item created",
			slog.Int64("item_id", id),
			slog.String("owner_id", ownerID),
			slog.Float64("reserved_price", reservedPrice),
		)
		return &Item{
			ID:            id,
			Name:          name,
			ReservedPrice: reservedPrice,
			OwnerID:       ownerID,
			HighestBid:    0,
			IsOpen:        true,
		}, nil
	}
	return nil, fmt.Errorf("creating item after %d attempts: %w", e.maxRetries, ledger.ErrConflict)
}

// PlaceBid attempts an ascending bid on an open item. The commit watches the
// item's open flag, the item's bid list and the bidder's bid list, so the
// validated preconditions (item still open, price still above the highest
// bid) hold at commit time, not just at read time.
func (e *Engine) PlaceBid(ctx context.Context, itemID int64, bidderID string, price float64) (*BidResult, error) {
	ctx, span := e.tracer.Start(ctx, "Engine.PlaceBid",
		trace.WithAttributes(
			attribute.Int64("item.id", itemID),
			attribute.String("bidder.id", bidderID),
			attribute.Float64("bid.price", price),
		),
	)
	defer span.End()

	if bidderID == "" {
		return nil, fmt.Errorf("bidder id must not be empty: %w", ErrInvalidArgument)
	}
	if !validPrice(price) {
		return nil, fmt.Errorf("bid price %v must be a positive finite number: %w", price, ErrInvalidArgument)
	}
	if err := e.ensureItem(ctx, itemID); err != nil {
		return nil, err
	}

	openKey := itemKey(itemID, "isOpen")
	itemBidsKey := itemKey(itemID, "bids")
	bidderBidsKey := userKey(bidderID, "bids")

	for attempt := 0; attempt < e.maxRetries; attempt++ {
		open, err := e.readOpen(ctx, e.store, itemID)
		if err != nil {
			return nil, err
		}
		if !open {
			return &BidResult{Reason: ReasonItemNotOpen}, nil
		}
		highest, err := e.readHighestBid(ctx, e.store, itemID)
		if err != nil {
			return nil, err
		}
		if price <= highest {
			return &BidResult{Reason: ReasonPriceTooLow}, nil
		}

		bidID, err := e.alloc.Next(ctx, BidCounterKey)
		if err != nil {
			return nil, fmt.Errorf("allocating bid id: %w", err)
		}

		err = e.store.Watch(ctx, func(tx ledger.Tx) error {
			// Re-validate against the watched state: these checks become
			// preconditions of the commit.
			open, err := e.readOpen(ctx, tx, itemID)
			if err != nil {
				return err
			}
			if !open {
				return errNotOpen
			}
			highest, err := e.readHighestBid(ctx, tx, itemID)
			if err != nil {
				return err
			}
			if price <= highest {
				return errPriceLow
			}

			return tx.Commit(ctx, func(w ledger.Writes) {
				w.Set(bidKey(bidID, "itemid"), strconv.FormatInt(itemID, 10))
				w.Set(bidKey(bidID, "userid"), bidderID)
				w.Set(bidKey(bidID, "price"), formatPrice(price))
				w.LPrepend(itemBidsKey, strconv.FormatInt(bidID, 10))
				w.LPrepend(bidderBidsKey, strconv.FormatInt(bidID, 10))
			})
		}, openKey, itemBidsKey, bidderBidsKey)

		switch {
		case err == nil:
			e.publish(ctx, events.BidAccepted, events.BidAcceptedData{
				ItemID: itemID,
				BidID:  bidID,
				UserID: bidderID,
				Price:  price,
			})
			e.logger.InfoContext(ctx, "bid accepted",
				slog.Int64("item_id", itemID),
				slog.Int64("bid_id", bidID),
				slog.String("bidder_id", bidderID),
				slog.Float64("price", price),
			)
			return &BidResult{Accepted: true, BidID: bidID}, nil
		case errors.Is(err, errNotOpen):
			return &BidResult{Reason: ReasonItemNotOpen}, nil
		case errors.Is(err, errPriceLow):
			return &BidResult{Reason: ReasonPriceTooLow}, nil
		case errors.Is(err, ledger.ErrConflict):
			// The item closed, a competing bid landed, or the bidder's list
			// moved. Re-validate from fresh state with a fresh bid id.
		default:
			return nil, fmt.Errorf("committing bid on item %d: %w", itemID, err)
		}
	}

	// Retry budget exhausted. Report a rejection against the latest
	// observable state rather than an error; an unsafe write is never
	// accepted silently.
	open, err := e.readOpen(ctx, e.store, itemID)
	if err == nil && !open {
		return &BidResult{Reason: ReasonItemNotOpen}, nil
	}
	return &BidResult{Reason: ReasonPriceTooLow}, nil
}

// CloseItem transitions an item open→closed exactly once. Only the owner may
// close; the deal flag and price are computed inside the same watched
// transaction that flips the open flag, so closing never commits against a
// stale highest bid.
func (e *Engine) CloseItem(ctx context.Context, itemID int64, callerID string) (*CloseResult, error) {
	ctx, span := e.tracer.Start(ctx, "Engine.CloseItem",
		trace.WithAttributes(
			attribute.Int64("item.id", itemID),
			attribute.String("caller.id", callerID),
		),
	)
	defer span.End()

	if callerID == "" {
		return nil, fmt.Errorf("caller id must not be empty: %w", ErrInvalidArgument)
	}

	owner, err := e.store.Get(ctx, itemKey(itemID, "userid"))
	if errors.Is(err, ledger.ErrNotFound) {
		return nil, fmt.Errorf("item %d: %w", itemID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("reading item %d owner: %w", itemID, err)
	}
	if owner != callerID {
		return &CloseResult{Reason: ReasonNotOwner}, nil
	}

	openKey := itemKey(itemID, "isOpen")
	itemBidsKey := itemKey(itemID, "bids")

	for attempt := 0; attempt < e.maxRetries; attempt++ {
		var isDeal bool
		var dealPrice float64

		err := e.store.Watch(ctx, func(tx ledger.Tx) error {
			open, err := e.readOpen(ctx, tx, itemID)
			if err != nil {
				return err
			}
			if !open {
				return errNotOpen
			}

			highest, err := e.readHighestBid(ctx, tx, itemID)
			if err != nil {
				return err
			}
			reservedStr, err := tx.Get(ctx, itemKey(itemID, "reservedPrice"))
			if err != nil {
				return fmt.Errorf("reading reserved price: %w", err)
			}
			reserved, err := parsePrice(reservedStr)
			if err != nil {
				return err
			}

			isDeal = highest > reserved
			dealPrice = 0
			if isDeal {
				dealPrice = highest
			}

			return tx.Commit(ctx, func(w ledger.Writes) {
				w.Set(openKey, formatBool(false))
				w.Set(itemKey(itemID, "isDeal"), formatBool(isDeal))
				w.Set(itemKey(itemID, "dealPrice"), formatPrice(dealPrice))
			})
		}, openKey, itemBidsKey)

		switch {
		case err == nil:
			e.publish(ctx, events.ItemClosed, events.ItemClosedData{
				ItemID:    itemID,
				IsDeal:    isDeal,
				DealPrice: dealPrice,
			})
			e.logger.InfoContext(ctx, "item closed",
				slog.Int64("item_id", itemID),
				slog.Bool("is_deal", isDeal),
				slog.Float64("deal_price", dealPrice),
			)
			return &CloseResult{Success: true, IsDeal: isDeal, DealPrice: dealPrice}, nil
		case errors.Is(err, errNotOpen):
			return &CloseResult{Reason: ReasonAlreadyClosed}, nil
		case errors.Is(err, ledger.ErrConflict):
			// A bid landed between read and commit; recompute the deal
			// against the new highest bid.
		default:
			return nil, fmt.Errorf("closing item %d: %w", itemID, err)
		}
	}
	return nil, fmt.Errorf("closing item %d after %d attempts: %w", itemID, e.maxRetries, ledger.ErrConflict)
}

// reader is the common read surface of ledger.Store and ledger.Tx.
type reader interface {
	Get(ctx context.Context, key string) (string, error)
	LRange(ctx context.Context, key string, start, stop int64) ([]string, error)
}

// ensureItem confirms the item exists.
func (e *Engine) ensureItem(ctx context.Context, itemID int64) error {
	_, err := e.store.Get(ctx, itemKey(itemID, "name"))
	if errors.Is(err, ledger.ErrNotFound) {
		return fmt.Errorf("item %d: %w", itemID, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("reading item %d: %w", itemID, err)
	}
	return nil
}

func (e *Engine) readOpen(ctx context.Context, r reader, itemID int64) (bool, error) {
	v, err := r.Get(ctx, itemKey(itemID, "isOpen"))
	if errors.Is(err, ledger.ErrNotFound) {
		return false, fmt.Errorf("item %d: %w", itemID, ErrNotFound)
	}
	if err != nil {
		return false, fmt.Errorf("reading item %d open flag: %w", itemID, err)
	}
	return v == "1", nil
}

// readHighestBid returns the price of the most recently accepted bid, or 0
// if the item has no bids. Bid records are immutable, so reading the price
// outside the watch set is safe: only the list head can move, and the list
// is watched.
func (e *Engine) readHighestBid(ctx context.Context, r reader, itemID int64) (float64, error) {
	head, err := r.LRange(ctx, itemKey(itemID, "bids"), 0, 0)
	if err != nil {
		return 0, fmt.Errorf("reading item %d bid list: %w", itemID, err)
	}
	if len(head) == 0 {
		return 0, nil
	}
	bidID, err := strconv.ParseInt(head[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("corrupt bid id %q on item %d: %w", head[0], itemID, err)
	}
	priceStr, err := r.Get(ctx, bidKey(bidID, "price"))
	if err != nil {
		return 0, fmt.Errorf("reading bid %d price: %w", bidID, err)
	}
	return parsePrice(priceStr)
}

// publish sends a domain event, best effort. Publish failures are logged and
// never fail the operation that produced them.
func (e *Engine) publish(ctx context.Context, t events.Type, payload any) {
	evt, err := events.New(t, payload, e.clock.Now().UTC())
	if err != nil {
		e.logger.ErrorContext(ctx, "failed to build event",
			slog.String("type", string(t)),
			slog.Any("error", err),
		)
		return
	}
	if err := e.publisher.Publish(ctx, evt); err != nil {
		e.logger.ErrorContext(ctx, "failed to publish event",
			slog.String("type", string(t)),
			slog.String("event_id", evt.ID),
			slog.Any("error", err),
		)
	}
}

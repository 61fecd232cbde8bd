package auction_test

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace/noop"

	"github.com/openbid/auctiond/internal/auction"
	"github.com/openbid/auctiond/internal/clock"
	"github.com/openbid/auctiond/internal/config"
	"github.com/openbid/auctiond/internal/directory"
	"github.com/openbid/auctiond/internal/events"
	"github.com/openbid/auctiond/internal/ids"
	"github.com/openbid/auctiond/internal/ledger"
	"github.com/openbid/auctiond/internal/ledger/memledger"
	"github.com/openbid/auctiond/internal/telemetry"
)

var (
	testTP  = noop.NewTracerProvider()
	testClk = clock.Mock{T: time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)}
)

// --- test helpers ---

type fixture struct {
	engine *auction.Engine
	store  *memledger.Store
	dir    *directory.Directory
	pub    *capturePublisher
}

// capturePublisher records published events.
type capturePublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *capturePublisher) Publish(_ context.Context, e events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return nil
}

func (p *capturePublisher) Close() error { return nil }

func (p *capturePublisher) byType(t events.Type) []events.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []events.Event
	for _, e := range p.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memledger.New()
	dir := directory.New(store)
	pub := &capturePublisher{}
	// A generous retry budget keeps the contention tests deterministic;
	// production uses a much smaller bound.
	cfg := config.EngineConfig{MaxRetries: 100, UserItemsLimit: 6}
	alloc := ids.New(store, 1000, testTP)
	logger := telemetry.NewNopProvider().Logger
	eng := auction.NewEngine(store, alloc, dir, pub, logger, testTP, testClk, cfg)
	return &fixture{engine: eng, store: store, dir: dir, pub: pub}
}

// conflictOnWatch wraps a store and forces Watch calls with a matching key
// count to conflict, leaving plain reads and other transactions untouched.
type conflictOnWatch struct {
	ledger.Store
	keyCount int
}

func (c *conflictOnWatch) Watch(ctx context.Context, fn func(tx ledger.Tx) error, keys ...string) error {
	if len(keys) == c.keyCount {
		return ledger.ErrConflict
	}
	return c.Store.Watch(ctx, fn, keys...)
}

// --- CreateItem ---

func TestCreateItem(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	item, err := f.engine.CreateItem(ctx, "u1", "Antique Clock", 100)
	if err != nil {
		t.Fatalf("CreateItem() error = %v", err)
	}
	if item.ID != 1 {
		t.Errorf("ID = %d, want 1", item.ID)
	}
	if item.Name != "Antique Clock" || item.OwnerID != "u1" || item.ReservedPrice != 100 {
		t.Errorf("item = %+v, want name/owner/reserve populated", item)
	}
	if !item.IsOpen || item.HighestBid != 0 {
		t.Errorf("new item must be open with no bids, got %+v", item)
	}

	second, err := f.engine.CreateItem(ctx, "u1", "Vase", 50)
	if err != nil {
		t.Fatalf("CreateItem() error = %v", err)
	}
	if second.ID != 2 {
		t.Errorf("second ID = %d, want 2", second.ID)
	}
}

func TestCreateItem_InvalidArguments(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		ownerID  string
		itemName string
		reserve  float64
	}{
		{"empty owner", "", "Clock", 10},
		{"empty name", "u1", "", 10},
		{"negative reserve", "u1", "Clock", -1},
		{"NaN reserve", "u1", "Clock", math.NaN()},
		{"infinite reserve", "u1", "Clock", math.Inf(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.engine.CreateItem(ctx, tt.ownerID, tt.itemName, tt.reserve)
			if !errors.Is(err, auction.ErrInvalidArgument) {
				t.Errorf("CreateItem() error = %v, want ErrInvalidArgument", err)
			}
		})
	}
}

func TestCreateItem_ZeroReserveAllowed(t *testing.T) {
	f := newFixture(t)
	if _, err := f.engine.CreateItem(context.Background(), "u1", "Freebie", 0); err != nil {
		t.Fatalf("CreateItem() error = %v", err)
	}
}

// Item ids issued under concurrency are pairwise distinct. Ids burned on
// aborted commits may leave gaps, so only uniqueness is asserted.
func TestCreateItem_ConcurrentMonotonicIDs(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	const goroutines = 12

	idsCh := make(chan int64, goroutines)
	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			item, err := f.engine.CreateItem(ctx, "u1", "Lot", 10)
			if err != nil {
				t.Errorf("CreateItem() error = %v", err)
				return
			}
			idsCh <- item.ID
		}()
	}
	wg.Wait()
	close(idsCh)

	seen := make(map[int64]bool)
	for id := range idsCh {
		if seen[id] {
			t.Fatalf("duplicate item id %d issued", id)
		}
		seen[id] = true
		if id < 1 {
			t.Fatalf("item id %d is not positive", id)
		}
	}
	if len(seen) != goroutines {
		t.Fatalf("issued %d ids, want %d", len(seen), goroutines)
	}
}

// --- PlaceBid ---

func TestPlaceBid(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	item, _ := f.engine.CreateItem(ctx, "seller", "Clock", 100)

	res, err := f.engine.PlaceBid(ctx, item.ID, "buyer", 50)
	if err != nil {
		t.Fatalf("PlaceBid() error = %v", err)
	}
	if !res.Accepted {
		t.Fatalf("PlaceBid() = %+v, want accepted", res)
	}
	if res.BidID != 1 {
		t.Errorf("BidID = %d, want 1", res.BidID)
	}
}

func TestPlaceBid_RejectsNonIncreasing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	item, _ := f.engine.CreateItem(ctx, "seller", "Clock", 100)

	if res, _ := f.engine.PlaceBid(ctx, item.ID, "b1", 50); !res.Accepted {
		t.Fatalf("first bid rejected: %+v", res)
	}

	tests := []struct {
		name  string
		price float64
	}{
		{"equal to highest", 50},
		{"below highest", 49.99},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := f.engine.PlaceBid(ctx, item.ID, "b2", tt.price)
			if err != nil {
				t.Fatalf("PlaceBid() error = %v", err)
			}
			if res.Accepted || res.Reason != auction.ReasonPriceTooLow {
				t.Errorf("PlaceBid(%v) = %+v, want rejected price_too_low", tt.price, res)
			}
		})
	}

	// A strictly higher bid still lands.
	res, err := f.engine.PlaceBid(ctx, item.ID, "b2", 50.01)
	if err != nil {
		t.Fatalf("PlaceBid() error = %v", err)
	}
	if !res.Accepted {
		t.Errorf("PlaceBid(50.01) = %+v, want accepted", res)
	}
}

func TestPlaceBid_InvalidPrice(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	item, _ := f.engine.CreateItem(ctx, "seller", "Clock", 100)

	for _, price := range []float64{0, -5, math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := f.engine.PlaceBid(ctx, item.ID, "b1", price); !errors.Is(err, auction.ErrInvalidArgument) {
			t.Errorf("PlaceBid(price=%v) error = %v, want ErrInvalidArgument", price, err)
		}
	}
}

func TestPlaceBid_UnknownItem(t *testing.T) {
	f := newFixture(t)
	_, err := f.engine.PlaceBid(context.Background(), 999, "b1", 10)
	if !errors.Is(err, auction.ErrNotFound) {
		t.Fatalf("PlaceBid() error = %v, want ErrNotFound", err)
	}
}

func TestPlaceBid_ClosedItem(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	item, _ := f.engine.CreateItem(ctx, "seller", "Clock", 100)
	_, _ = f.engine.PlaceBid(ctx, item.ID, "b1", 120)
	if _, err := f.engine.CloseItem(ctx, item.ID, "seller"); err != nil {
		t.Fatalf("CloseItem() error = %v", err)
	}

	res, err := f.engine.PlaceBid(ctx, item.ID, "b2", 500)
	if err != nil {
		t.Fatalf("PlaceBid() error = %v", err)
	}
	if res.Accepted || res.Reason != auction.ReasonItemNotOpen {
		t.Fatalf("PlaceBid() on closed item = %+v, want rejected item_not_open", res)
	}

	// The bid list must be unchanged.
	h, err := f.engine.History(ctx, item.ID)
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if len(h.Bids) != 1 {
		t.Errorf("bid list grew to %d entries after rejected bid, want 1", len(h.Bids))
	}
}

// Accepted bid prices form a strictly increasing sequence regardless of the
// interleaving of concurrent bidders.
func TestPlaceBid_HighestBidMonotonic(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	item, _ := f.engine.CreateItem(ctx, "seller", "Clock", 10)

	const goroutines = 10
	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(base float64) {
			defer wg.Done()
			for i := 0; i < 5; i++ {
				_, err := f.engine.PlaceBid(ctx, item.ID, "bidder", base+float64(i)*10)
				if err != nil {
					t.Errorf("PlaceBid() error = %v", err)
					return
				}
			}
		}(float64(g + 1))
	}
	wg.Wait()

	h, err := f.engine.History(ctx, item.ID)
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	// History is most-recent-first; walk oldest to newest.
	for i := len(h.Bids) - 1; i > 0; i-- {
		older, newer := h.Bids[i], h.Bids[i-1]
		if newer.Price <= older.Price {
			t.Fatalf("accepted prices not strictly increasing: %v then %v", older.Price, newer.Price)
		}
	}
}

// N concurrent bids at the same price: exactly one wins, the rest are
// rejected as too low.
func TestPlaceBid_AtMostOneWinner(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	item, _ := f.engine.CreateItem(ctx, "seller", "Clock", 10)

	const bidders = 16
	const price = 42.0

	results := make([]*auction.BidResult, bidders)
	var wg sync.WaitGroup
	for i := 0; i < bidders; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := f.engine.PlaceBid(ctx, item.ID, "bidder", price)
			if err != nil {
				t.Errorf("PlaceBid() error = %v", err)
				return
			}
			results[i] = res
		}()
	}
	wg.Wait()

	accepted := 0
	for _, res := range results {
		if res == nil {
			t.Fatal("missing result")
		}
		if res.Accepted {
			accepted++
		} else if res.Reason != auction.ReasonPriceTooLow {
			t.Errorf("losing bid rejected with %q, want price_too_low", res.Reason)
		}
	}
	if accepted != 1 {
		t.Fatalf("%d bids accepted at the same price, want exactly 1", accepted)
	}
}

func TestPlaceBid_RetryBudgetExhausted(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	item, _ := f.engine.CreateItem(ctx, "seller", "Clock", 100)

	// Force the three-key bid transaction to conflict forever; allocation
	// (single-key) and creation (two-key) still work.
	store := &conflictOnWatch{Store: f.store, keyCount: 3}
	cfg := config.EngineConfig{MaxRetries: 3, UserItemsLimit: 6}
	eng := auction.NewEngine(store, ids.New(store, 10, testTP), f.dir, events.Nop{},
		telemetry.NewNopProvider().Logger, testTP, testClk, cfg)

	res, err := eng.PlaceBid(ctx, item.ID, "b1", 50)
	if err != nil {
		t.Fatalf("PlaceBid() error = %v, want a rejection result", err)
	}
	if res.Accepted {
		t.Fatal("bid accepted despite exhausted retries")
	}
	if res.Reason != auction.ReasonPriceTooLow {
		t.Errorf("Reason = %q, want price_too_low for a still-open item", res.Reason)
	}
}

// --- CloseItem ---

func TestCloseItem_Deal(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	item, _ := f.engine.CreateItem(ctx, "seller", "Clock", 100)
	_, _ = f.engine.PlaceBid(ctx, item.ID, "b1", 50)
	_, _ = f.engine.PlaceBid(ctx, item.ID, "b2", 120)

	res, err := f.engine.CloseItem(ctx, item.ID, "seller")
	if err != nil {
		t.Fatalf("CloseItem() error = %v", err)
	}
	if !res.Success {
		t.Fatalf("CloseItem() = %+v, want success", res)
	}
	if !res.IsDeal || res.DealPrice != 120 {
		t.Errorf("deal = %v/%v, want true/120", res.IsDeal, res.DealPrice)
	}
}

func TestCloseItem_NoDeal(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name string
		bids []float64
	}{
		{"no bids", nil},
		{"highest below reserve", []float64{50}},
		{"highest equals reserve", []float64{50, 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, _ := f.engine.CreateItem(ctx, "seller", "Clock", 100)
			for _, p := range tt.bids {
				if res, _ := f.engine.PlaceBid(ctx, item.ID, "b1", p); !res.Accepted {
					t.Fatalf("setup bid %v rejected", p)
				}
			}

			res, err := f.engine.CloseItem(ctx, item.ID, "seller")
			if err != nil {
				t.Fatalf("CloseItem() error = %v", err)
			}
			if !res.Success {
				t.Fatalf("CloseItem() = %+v, want success", res)
			}
			if res.IsDeal || res.DealPrice != 0 {
				t.Errorf("deal = %v/%v, want false/0", res.IsDeal, res.DealPrice)
			}
		})
	}
}

func TestCloseItem_NotOwner(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	item, _ := f.engine.CreateItem(ctx, "seller", "Clock", 100)

	res, err := f.engine.CloseItem(ctx, item.ID, "intruder")
	if err != nil {
		t.Fatalf("CloseItem() error = %v", err)
	}
	if res.Success || res.Reason != auction.ReasonNotOwner {
		t.Fatalf("CloseItem() = %+v, want denied not_owner", res)
	}

	// Denied close must leave the item open.
	info, err := f.engine.ItemInfo(ctx, item.ID)
	if err != nil {
		t.Fatalf("ItemInfo() error = %v", err)
	}
	if !info.IsOpen {
		t.Error("item closed by a non-owner")
	}
}

func TestCloseItem_AlreadyClosed(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	item, _ := f.engine.CreateItem(ctx, "seller", "Clock", 100)
	if _, err := f.engine.CloseItem(ctx, item.ID, "seller"); err != nil {
		t.Fatalf("CloseItem() error = %v", err)
	}

	res, err := f.engine.CloseItem(ctx, item.ID, "seller")
	if err != nil {
		t.Fatalf("CloseItem() error = %v", err)
	}
	if res.Success || res.Reason != auction.ReasonAlreadyClosed {
		t.Fatalf("second CloseItem() = %+v, want denied already_closed", res)
	}
}

func TestCloseItem_UnknownItem(t *testing.T) {
	f := newFixture(t)
	_, err := f.engine.CloseItem(context.Background(), 999, "seller")
	if !errors.Is(err, auction.ErrNotFound) {
		t.Fatalf("CloseItem() error = %v, want ErrNotFound", err)
	}
}

// N concurrent closes by the owner: exactly one succeeds.
func TestCloseItem_ExactlyOnce(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	item, _ := f.engine.CreateItem(ctx, "seller", "Clock", 100)
	_, _ = f.engine.PlaceBid(ctx, item.ID, "b1", 150)

	const closers = 12
	results := make([]*auction.CloseResult, closers)
	var wg sync.WaitGroup
	for i := 0; i < closers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := f.engine.CloseItem(ctx, item.ID, "seller")
			if err != nil {
				t.Errorf("CloseItem() error = %v", err)
				return
			}
			results[i] = res
		}()
	}
	wg.Wait()

	succeeded := 0
	for _, res := range results {
		if res == nil {
			t.Fatal("missing result")
		}
		if res.Success {
			succeeded++
			if !res.IsDeal || res.DealPrice != 150 {
				t.Errorf("winning close = %+v, want deal at 150", res)
			}
		} else if res.Reason != auction.ReasonAlreadyClosed {
			t.Errorf("losing close rejected with %q, want already_closed", res.Reason)
		}
	}
	if succeeded != 1 {
		t.Fatalf("%d closes succeeded, want exactly 1", succeeded)
	}
}

func TestCloseItem_RetryBudgetExhausted(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	item, _ := f.engine.CreateItem(ctx, "seller", "Clock", 100)

	store := &conflictOnWatch{Store: f.store, keyCount: 2}
	cfg := config.EngineConfig{MaxRetries: 3, UserItemsLimit: 6}
	eng := auction.NewEngine(store, ids.New(store, 10, testTP), f.dir, events.Nop{},
		telemetry.NewNopProvider().Logger, testTP, testClk, cfg)

	_, err := eng.CloseItem(ctx, item.ID, "seller")
	if !errors.Is(err, ledger.ErrConflict) {
		t.Fatalf("CloseItem() error = %v, want ErrConflict", err)
	}
}

// --- History / listings ---

func TestHistory(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_ = f.dir.SetName(ctx, "b1", "Alice")
	_ = f.dir.SetName(ctx, "b2", "Bob")

	item, _ := f.engine.CreateItem(ctx, "seller", "Clock", 100)
	_, _ = f.engine.PlaceBid(ctx, item.ID, "b1", 50)
	_, _ = f.engine.PlaceBid(ctx, item.ID, "b2", 120)

	h, err := f.engine.History(ctx, item.ID)
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if h.Name != "Clock" || !h.IsOpen {
		t.Errorf("history header = %+v, want open Clock", h)
	}
	if len(h.Bids) != 2 {
		t.Fatalf("len(Bids) = %d, want 2", len(h.Bids))
	}
	// Most recent first.
	if h.Bids[0].Price != 120 || h.Bids[0].UserID != "b2" || h.Bids[0].Username != "Bob" {
		t.Errorf("Bids[0] = %+v, want Bob's 120", h.Bids[0])
	}
	if h.Bids[1].Price != 50 || h.Bids[1].Username != "Alice" {
		t.Errorf("Bids[1] = %+v, want Alice's 50", h.Bids[1])
	}

	if _, err := f.engine.CloseItem(ctx, item.ID, "seller"); err != nil {
		t.Fatalf("CloseItem() error = %v", err)
	}
	h, err = f.engine.History(ctx, item.ID)
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if h.IsOpen || !h.IsDeal || h.DealPrice != 120 {
		t.Errorf("closed history = %+v, want deal at 120", h)
	}
}

func TestHistory_UnregisteredBidder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	item, _ := f.engine.CreateItem(ctx, "seller", "Clock", 100)
	_, _ = f.engine.PlaceBid(ctx, item.ID, "nameless", 50)

	h, err := f.engine.History(ctx, item.ID)
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if h.Bids[0].UserID != "nameless" || h.Bids[0].Username != "" {
		t.Errorf("Bids[0] = %+v, want empty display name", h.Bids[0])
	}
}

func TestHistory_UnknownItem(t *testing.T) {
	f := newFixture(t)
	_, err := f.engine.History(context.Background(), 999)
	if !errors.Is(err, auction.ErrNotFound) {
		t.Fatalf("History() error = %v, want ErrNotFound", err)
	}
}

func TestUserItems(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	const created = 8
	var last *auction.Item
	for i := 0; i < created; i++ {
		var err error
		last, err = f.engine.CreateItem(ctx, "seller", "Lot", 10)
		if err != nil {
			t.Fatalf("CreateItem() error = %v", err)
		}
	}
	_, _ = f.engine.PlaceBid(ctx, last.ID, "b1", 25)

	items, err := f.engine.UserItems(ctx, "seller")
	if err != nil {
		t.Fatalf("UserItems() error = %v", err)
	}
	if len(items) != 6 {
		t.Fatalf("len(items) = %d, want the configured bound of 6", len(items))
	}
	// Most recently created first, carrying its live highest bid.
	if items[0].ID != last.ID {
		t.Errorf("items[0].ID = %d, want %d", items[0].ID, last.ID)
	}
	if items[0].HighestBid != 25 {
		t.Errorf("items[0].HighestBid = %v, want 25", items[0].HighestBid)
	}
}

func TestUserItems_Empty(t *testing.T) {
	f := newFixture(t)
	items, err := f.engine.UserItems(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("UserItems() error = %v", err)
	}
	if len(items) != 0 {
		t.Errorf("len(items) = %d, want 0", len(items))
	}
}

func TestItemInfo_ClosedShowsDeal(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	item, _ := f.engine.CreateItem(ctx, "seller", "Clock", 100)
	_, _ = f.engine.PlaceBid(ctx, item.ID, "b1", 150)
	_, _ = f.engine.CloseItem(ctx, item.ID, "seller")

	info, err := f.engine.ItemInfo(ctx, item.ID)
	if err != nil {
		t.Fatalf("ItemInfo() error = %v", err)
	}
	if info.IsOpen || !info.IsDeal || info.DealPrice != 150 {
		t.Errorf("info = %+v, want closed deal at 150", info)
	}
}

// --- events ---

func TestEventsPublished(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	item, _ := f.engine.CreateItem(ctx, "seller", "Clock", 100)
	_, _ = f.engine.PlaceBid(ctx, item.ID, "b1", 150)
	_, _ = f.engine.CloseItem(ctx, item.ID, "seller")

	if n := len(f.pub.byType(events.ItemCreated)); n != 1 {
		t.Errorf("item.created events = %d, want 1", n)
	}
	if n := len(f.pub.byType(events.BidAccepted)); n != 1 {
		t.Errorf("bid.accepted events = %d, want 1", n)
	}
	if n := len(f.pub.byType(events.ItemClosed)); n != 1 {
		t.Errorf("item.closed events = %d, want 1", n)
	}
}

func TestRejectedBidPublishesNothing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	item, _ := f.engine.CreateItem(ctx, "seller", "Clock", 100)
	_, _ = f.engine.PlaceBid(ctx, item.ID, "b1", 50)
	_, _ = f.engine.PlaceBid(ctx, item.ID, "b2", 50) // too low

	if n := len(f.pub.byType(events.BidAccepted)); n != 1 {
		t.Errorf("bid.accepted events = %d, want 1 (rejection must not publish)", n)
	}
}

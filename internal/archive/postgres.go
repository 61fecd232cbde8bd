// Package archive persists auction events into Postgres for durable,
// queryable history. The archiver consumes the event stream; the auction
// write path never touches Postgres.
package archive

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/XSAM/otelsql"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/openbid/auctiond/internal/config"
	"github.com/openbid/auctiond/internal/events"
)

// Connect opens and verifies a Postgres connection with OTEL instrumentation.
func Connect(ctx context.Context, cfg config.ArchiveConfig) (*sqlx.DB, error) {
	dsn := cfg.DSN()

	// Register the OTel-instrumented driver wrapping lib/pq.
	driverName, err := otelsql.Register("postgres",
		otelsql.WithAttributes(semconv.DBSystemPostgreSQL),
	)
	if err != nil {
		return nil, fmt.Errorf("registering otel driver: %w", err)
	}

	db, err := sqlx.ConnectContext(ctx, driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return db, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS archived_items (
	event_id     TEXT PRIMARY KEY,
	item_id      BIGINT NOT NULL,
	owner_id     TEXT NOT NULL,
	name         TEXT NOT NULL,
	reserved_price DOUBLE PRECISION NOT NULL,
	occurred_at  TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS archived_bids (
	event_id    TEXT PRIMARY KEY,
	bid_id      BIGINT NOT NULL,
	item_id     BIGINT NOT NULL,
	user_id     TEXT NOT NULL,
	price       DOUBLE PRECISION NOT NULL,
	occurred_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS archived_bids_item_idx ON archived_bids (item_id);

CREATE TABLE IF NOT EXISTS archived_closes (
	event_id    TEXT PRIMARY KEY,
	item_id     BIGINT NOT NULL,
	is_deal     BOOLEAN NOT NULL,
	deal_price  DOUBLE PRECISION NOT NULL,
	occurred_at TIMESTAMPTZ NOT NULL
);
`

// Store records auction events in Postgres. Inserts are keyed by event id,
// so redelivered events are absorbed without duplicates.
type Store struct {
	db *sqlx.DB
}

// NewStore returns a new Store.
func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// InitSchema creates the archive tables if they do not exist.
func (s *Store) InitSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("creating archive schema: %w", err)
	}
	return nil
}

// Record stores a single event envelope in the table matching its type.
// Unknown event types are skipped so the consumer survives schema growth.
func (s *Store) Record(ctx context.Context, e events.Event) error {
	switch e.Type {
	case events.ItemCreated:
		var d events.ItemCreatedData
		if err := json.Unmarshal(e.Data, &d); err != nil {
			return fmt.Errorf("decoding %s payload: %w", e.Type, err)
		}
		return s.recordItem(ctx, e, d)
	case events.BidAccepted:
		var d events.BidAcceptedData
		if err := json.Unmarshal(e.Data, &d); err != nil {
			return fmt.Errorf("decoding %s payload: %w", e.Type, err)
		}
		return s.recordBid(ctx, e, d)
	case events.ItemClosed:
		var d events.ItemClosedData
		if err := json.Unmarshal(e.Data, &d); err != nil {
			return fmt.Errorf("decoding %s payload: %w", e.Type, err)
		}
		return s.recordClose(ctx, e, d)
	default:
		return nil
	}
}

func (s *Store) recordItem(ctx context.Context, e events.Event, d events.ItemCreatedData) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO archived_items (event_id, item_id, owner_id, name, reserved_price, occurred_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (event_id) DO NOTHING`,
		e.ID, d.ItemID, d.OwnerID, d.Name, d.ReservedPrice, e.OccurredAt)
	if err != nil {
		return fmt.Errorf("archiving item %d: %w", d.ItemID, err)
	}
	return nil
}

func (s *Store) recordBid(ctx context.Context, e events.Event, d events.BidAcceptedData) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO archived_bids (event_id, bid_id, item_id, user_id, price, occurred_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (event_id) DO NOTHING`,
		e.ID, d.BidID, d.ItemID, d.UserID, d.Price, e.OccurredAt)
	if err != nil {
		return fmt.Errorf("archiving bid %d: %w", d.BidID, err)
	}
	return nil
}

func (s *Store) recordClose(ctx context.Context, e events.Event, d events.ItemClosedData) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO archived_closes (event_id, item_id, is_deal, deal_price, occurred_at)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (event_id) DO NOTHING`,
		e.ID, d.ItemID, d.IsDeal, d.DealPrice, e.OccurredAt)
	if err != nil {
		return fmt.Errorf("archiving close of item %d: %w", d.ItemID, err)
	}
	return nil
}

// ArchivedBid is a row of the archived_bids table.
type ArchivedBid struct {
	EventID    string    `db:"event_id"`
	BidID      int64     `db:"bid_id"`
	ItemID     int64     `db:"item_id"`
	UserID     string    `db:"user_id"`
	Price      float64   `db:"price"`
	OccurredAt time.Time `db:"occurred_at"`
}

// ListBids returns the archived bids of an item, oldest first.
func (s *Store) ListBids(ctx context.Context, itemID int64) ([]ArchivedBid, error) {
	var bids []ArchivedBid
	err := s.db.SelectContext(ctx, &bids,
		`SELECT event_id, bid_id, item_id, user_id, price, occurred_at
		 FROM archived_bids WHERE item_id = $1 ORDER BY bid_id ASC`, itemID)
	if err != nil {
		return nil, fmt.Errorf("listing archived bids: %w", err)
	}
	return bids, nil
}

// Ping verifies the database connection.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the underlying connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}

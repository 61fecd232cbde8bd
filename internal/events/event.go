// Package events defines the domain events the engine emits after a
// successful commit, and the publishers that carry them. Publishing is best
// effort: the auction write path never depends on a consumer.
package events

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Type identifies an event kind.
type Type string

const (
	ItemCreated Type = "item.created"
	BidAccepted Type = "bid.accepted"
	ItemClosed  Type = "item.closed"
)

// Subject returns the NATS subject for the type, under StreamSubjects.
func (t Type) Subject() string {
	return "auction.events." + strings.ReplaceAll(string(t), ".", "_")
}

// Event is the envelope published for every domain event.
type Event struct {
	ID         string          `json:"id"`
	Type       Type            `json:"type"`
	Data       json.RawMessage `json:"data"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// New wraps a payload in an Event envelope with a fresh uuid.
func New(t Type, payload any, occurredAt time.Time) (Event, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Event{}, fmt.Errorf("marshalling %s payload: %w", t, err)
	}
	return Event{
		ID:         uuid.New().String(),
		Type:       t,
		Data:       data,
		OccurredAt: occurredAt,
	}, nil
}

// ItemCreatedData is the payload for ItemCreated events.
type ItemCreatedData struct {
	ItemID        int64   `json:"item_id"`
	OwnerID       string  `json:"owner_id"`
	Name          string  `json:"name"`
	ReservedPrice float64 `json:"reserved_price"`
}

// BidAcceptedData is the payload for BidAccepted events.
type BidAcceptedData struct {
	ItemID int64   `json:"item_id"`
	BidID  int64   `json:"bid_id"`
	UserID string  `json:"user_id"`
	Price  float64 `json:"price"`
}

// ItemClosedData is the payload for ItemClosed events.
type ItemClosedData struct {
	ItemID    int64   `json:"item_id"`
	IsDeal    bool    `json:"is_deal"`
	DealPrice float64 `json:"deal_price"`
}

package auction

import "errors"

// Errors returned by engine operations. Business-rule refusals (not owner,
// price too low, item closed) are never errors; they come back as Reason
// values on the operation results.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("item not found")
)

// Reason explains a denied outcome.
type Reason string

const (
	ReasonItemNotOpen   Reason = "item_not_open"
	ReasonPriceTooLow   Reason = "price_too_low"
	ReasonNotOwner      Reason = "not_owner"
	ReasonAlreadyClosed Reason = "already_closed"
)

// Item is the record returned by CreateItem.
type Item struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	ReservedPrice float64 `json:"reservedPrice"`
	OwnerID       string  `json:"ownerId"`
	HighestBid    float64 `json:"highestBid"`
	IsOpen        bool    `json:"isOpen"`
}

// Summary is the per-item view used in user listings. HighestBid is
// meaningful while the item is open; IsDeal/DealPrice once it is closed.
type Summary struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	OwnerID    string  `json:"ownerId"`
	IsOpen     bool    `json:"isOpen"`
	HighestBid float64 `json:"highestBid"`
	IsDeal     bool    `json:"isDeal"`
	DealPrice  float64 `json:"dealPrice"`
}

// BidResult reports the outcome of PlaceBid. A losing bid is a normal,
// reportable outcome: Accepted=false with a Reason, never an error.
type BidResult struct {
	Accepted bool   `json:"accepted"`
	BidID    int64  `json:"bidId,omitempty"`
	Reason   Reason `json:"reason,omitempty"`
}

// CloseResult reports the outcome of CloseItem.
type CloseResult struct {
	Success   bool    `json:"success"`
	Reason    Reason  `json:"reason,omitempty"`
	IsDeal    bool    `json:"isDeal"`
	DealPrice float64 `json:"dealPrice"`
}

// BidRecord is one resolved entry of an item's bid history.
type BidRecord struct {
	BidID    int64   `json:"bidId"`
	UserID   string  `json:"userid"`
	Username string  `json:"username"`
	Price    float64 `json:"price"`
}

// History is the full bid history of an item, most recent bid first.
type History struct {
	Name      string      `json:"name"`
	IsOpen    bool        `json:"isOpen"`
	IsDeal    bool        `json:"isDeal"`
	DealPrice float64     `json:"dealPrice"`
	Bids      []BidRecord `json:"bids"`
}

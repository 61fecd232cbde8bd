package auction

import (
	"fmt"
	"math"
	"strconv"
)

// Ledger keyspace. Lists are most-recent-first; booleans are "1"/"0";
// prices are decimal strings.
//
//	global:nextItemId            item id counter
//	global:nextBidId             bid id counter
//	item:{id}:name               item name
//	item:{id}:reservedPrice      reserve price, fixed at creation
//	item:{id}:userid             owner user id
//	item:{id}:isOpen             open flag
//	item:{id}:isDeal             deal flag, written on close
//	item:{id}:dealPrice          deal price, written on close (0 = no deal)
//	item:{id}:bids               bid ids on the item
//	bid:{id}:itemid              owning item id
//	bid:{id}:userid              bidder user id
//	bid:{id}:price               bid price
//	user:{id}:items              item ids published by the user
//	user:{id}:bids               bid ids placed by the user
const (
	ItemCounterKey = "global:nextItemId"
	BidCounterKey  = "global:nextBidId"
)

func itemKey(id int64, field string) string {
	return fmt.Sprintf("item:%d:%s", id, field)
}

func bidKey(id int64, field string) string {
	return fmt.Sprintf("bid:%d:%s", id, field)
}

func userKey(id, field string) string {
	return fmt.Sprintf("user:%s:%s", id, field)
}

func formatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}

func parsePrice(s string) (float64, error) {
	p, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("corrupt price %q: %w", s, err)
	}
	return p, nil
}

func formatBool(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func validPrice(p float64) bool {
	return p > 0 && !math.IsInf(p, 0) && !math.IsNaN(p)
}

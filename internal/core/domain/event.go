package domain

import "time"

type EventKind string

const (
	EventProductViewed EventKind = "product-viewed"
	EventAddedToCart   EventKind = "added-to-cart"
)

// A ShopperEvent records one catalog interaction for the activity stream.
type ShopperEvent struct {
	Shopper     string
	Kind        EventKind
	ProductID   string
	ProductName string
	Category    string
	Price       int64
	At          time.Time
}

// ShopperActivity is the tallied per-shopper view over the event stream.
type ShopperActivity struct {
	Shopper string
	Viewed  int64
	Added   int64
}

// Package activity turns collection and order records into a single,
// recency-ordered feed of display-ready items.
package activity

import "time"

// Kind identifies the record an Item was derived from.
type Kind string

const (
	KindCollection Kind = "collection"
	KindOrder      Kind = "order"
)

// Item is a normalized activity entry. It is computed per request and never stored.
type Item struct {
	Kind        Kind
	Title       string
	Description string
	Timestamp   time.Time
	Status      *string
	Quantity    *int

	CollectionID string
	OrderID      string

	// Synthetic marks placeholder entries that do not correspond to real records.
	Synthetic bool
}

package activity

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MrJamesThe3rd/ecocycle/internal/collection"
	"github.com/MrJamesThe3rd/ecocycle/internal/order"
	"github.com/MrJamesThe3rd/ecocycle/internal/rewards"
)

const (
	defaultWasteType        = "Mixed Waste"
	defaultCollectionStatus = "scheduled"
	defaultOrderStatus      = "placed"
	orderIDPrefixLen        = 8
)

var orderStatusPhrases = map[order.Status]string{
	order.StatusPending:   "Waiting for approval",
	order.StatusAccepted:  "Order accepted",
	order.StatusPaid:      "Payment received",
	order.StatusDelivered: "Order delivered",
	order.StatusCompleted: "Order completed",
	order.StatusCancelled: "Order cancelled",
}

// OrderStatusPhrase describes an order status for humans.
func OrderStatusPhrase(s order.Status) string {
	if p, ok := orderStatusPhrases[s]; ok {
		return p
	}

	return "Order placed"
}

// FromCollection normalizes a collection. The timestamp falls back from the
// scheduled date to the creation time to now.
func FromCollection(c *collection.Collection, now time.Time) Item {
	status := strings.ToLower(string(c.Status))
	if status == "" {
		status = defaultCollectionStatus
	}

	wasteType := c.WasteType
	if strings.TrimSpace(wasteType) == "" {
		wasteType = defaultWasteType
	}

	qty := strconv.FormatFloat(rewards.ParseQuantity(c.Quantity), 'f', -1, 64)

	ts := now
	switch {
	case c.Date != nil && !c.Date.IsZero():
		ts = *c.Date
	case c.CreatedAt != nil && !c.CreatedAt.IsZero():
		ts = *c.CreatedAt
	}

	return Item{
		Kind:         KindCollection,
		Title:        "Collection " + status,
		Description:  fmt.Sprintf("%s - %skg", wasteType, qty),
		Timestamp:    ts,
		Status:       optionalStatus(string(c.Status)),
		CollectionID: c.ID,
	}
}

// FromOrder normalizes an order. The timestamp falls back from the creation
// time to now.
func FromOrder(o *order.Order, now time.Time) Item {
	status := strings.ToLower(string(o.Status))
	if status == "" {
		status = defaultOrderStatus
	}

	ts := now
	if o.CreatedAt != nil && !o.CreatedAt.IsZero() {
		ts = *o.CreatedAt
	}

	qty := o.Quantity

	return Item{
		Kind:        KindOrder,
		Title:       "Order " + status,
		Description: fmt.Sprintf("Order #%s - %s", shortID(o.ID), OrderStatusPhrase(o.Status)),
		Timestamp:   ts,
		Status:      optionalStatus(string(o.Status)),
		Quantity:    &qty,
		OrderID:     o.ID,
	}
}

func shortID(id string) string {
	r := []rune(id)
	if len(r) <= orderIDPrefixLen {
		return id
	}

	return string(r[:orderIDPrefixLen])
}

func optionalStatus(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

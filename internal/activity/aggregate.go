package activity

import (
	"slices"
	"time"

	"github.com/MrJamesThe3rd/ecocycle/internal/collection"
	"github.com/MrJamesThe3rd/ecocycle/internal/order"
)

// Aggregate normalizes collections and orders, orders them newest first and
// keeps at most limit items. Items with equal timestamps keep their input
// order: collections before orders, each in the order given. The result is
// never nil.
func Aggregate(collections []*collection.Collection, orders []*order.Order, limit int, now time.Time) []Item {
	if limit <= 0 {
		return []Item{}
	}

	items := make([]Item, 0, len(collections)+len(orders))

	for _, c := range collections {
		if c == nil {
			continue
		}

		items = append(items, FromCollection(c, now))
	}

	for _, o := range orders {
		if o == nil {
			continue
		}

		items = append(items, FromOrder(o, now))
	}

	slices.SortStableFunc(items, func(a, b Item) int {
		return b.Timestamp.Compare(a.Timestamp)
	})

	if len(items) > limit {
		items = items[:limit]
	}

	return items
}

// Samples is the fixed placeholder feed shown to new individual accounts when
// sample activity is switched on. Every item is marked Synthetic.
func Samples(now time.Time) []Item {
	pending, completed, scheduled := string(order.StatusPending), string(order.StatusCompleted), string(collection.StatusScheduled)
	q1, q2 := 222, 150

	return []Item{
		{
			Kind:        KindOrder,
			Title:       "Order pending",
			Description: "Order #682daf7d - Waiting for approval",
			Timestamp:   now,
			Status:      &pending,
			Quantity:    &q1,
			Synthetic:   true,
		},
		{
			Kind:        KindOrder,
			Title:       "Order completed",
			Description: "Order #682da33d - Order completed",
			Timestamp:   now.Add(-24 * time.Hour),
			Status:      &completed,
			Quantity:    &q2,
			Synthetic:   true,
		},
		{
			Kind:        KindCollection,
			Title:       "Collection scheduled",
			Description: "Mixed Waste - 5kg",
			Timestamp:   now.Add(-48 * time.Hour),
			Status:      &scheduled,
			Synthetic:   true,
		},
	}
}

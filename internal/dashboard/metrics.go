// Package dashboard assembles the per-user dashboard: counters, role-specific
// money totals and the recent activity window.
package dashboard

import (
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/ecocycle/internal/account"
	"github.com/MrJamesThe3rd/ecocycle/internal/activity"
	"github.com/MrJamesThe3rd/ecocycle/internal/collection"
	"github.com/MrJamesThe3rd/ecocycle/internal/order"
	"github.com/MrJamesThe3rd/ecocycle/internal/product"
	"github.com/MrJamesThe3rd/ecocycle/internal/rewards"
)

// Metrics is always fully populated: slices are never nil and numbers
// default to zero.
type Metrics struct {
	Collections      []*collection.Collection
	Products         []*product.Product
	Orders           []*order.Order
	RecentActivity   []activity.Item
	Points           int
	TotalCollections int
	TotalProducts    int
	TotalOrders      int
	TotalWeightKg    float64
	TotalSpent       decimal.Decimal
	TotalRevenue     decimal.Decimal
}

type Input struct {
	Collections []*collection.Collection
	Orders      []*order.Order
	// OrderCount is the buyer's total order count; it wins over len(Orders)
	// when the fetched window is truncated.
	OrderCount int
	Products   []*product.Product
	Points     int
	Activity   []activity.Item
}

// Build derives the dashboard for role from already fetched records.
func Build(role account.Role, in Input) *Metrics {
	m := &Metrics{
		Collections:    nonNil(in.Collections),
		Products:       []*product.Product{},
		Orders:         nonNil(in.Orders),
		RecentActivity: nonNil(in.Activity),
		Points:         max(in.Points, 0),
		TotalSpent:     decimal.Zero,
		TotalRevenue:   decimal.Zero,
	}

	m.TotalCollections = len(m.Collections)
	m.TotalOrders = max(len(m.Orders), in.OrderCount)

	for _, c := range m.Collections {
		if c != nil {
			m.TotalWeightKg += max(rewards.ParseQuantity(c.Quantity), 0)
		}
	}

	switch role {
	case account.RoleBusiness:
		m.TotalSpent = sumOrders(m.Orders)
	case account.RoleCollector:
		m.TotalRevenue = sumOrders(m.Orders)
		m.Products = nonNil(in.Products)
	}

	m.TotalProducts = len(m.Products)

	return m
}

func sumOrders(orders []*order.Order) decimal.Decimal {
	total := decimal.Zero

	for _, o := range orders {
		if o != nil {
			total = total.Add(o.TotalPrice)
		}
	}

	if total.IsNegative() {
		return decimal.Zero
	}

	return total
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}

	return s
}

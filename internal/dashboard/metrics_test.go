package dashboard_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/ecocycle/internal/account"
	"github.com/MrJamesThe3rd/ecocycle/internal/activity"
	"github.com/MrJamesThe3rd/ecocycle/internal/collection"
	"github.com/MrJamesThe3rd/ecocycle/internal/dashboard"
	"github.com/MrJamesThe3rd/ecocycle/internal/order"
	"github.com/MrJamesThe3rd/ecocycle/internal/product"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestBuild_EmptyInputs(t *testing.T) {
	for _, role := range []account.Role{account.RoleIndividual, account.RoleBusiness, account.RoleCollector} {
		t.Run(string(role), func(t *testing.T) {
			m := dashboard.Build(role, dashboard.Input{})

			assert.NotNil(t, m.Collections)
			assert.NotNil(t, m.Products)
			assert.NotNil(t, m.Orders)
			assert.NotNil(t, m.RecentActivity)
			assert.Empty(t, m.RecentActivity)
			assert.Zero(t, m.Points)
			assert.Zero(t, m.TotalCollections)
			assert.Zero(t, m.TotalProducts)
			assert.Zero(t, m.TotalOrders)
			assert.Zero(t, m.TotalWeightKg)
			assert.True(t, m.TotalSpent.IsZero())
			assert.True(t, m.TotalRevenue.IsZero())
		})
	}
}

func TestBuild_ByRole(t *testing.T) {
	collections := []*collection.Collection{
		{ID: "c1", Quantity: "12.5"},
		{ID: "c2", Quantity: "oops"},
		{ID: "c3", Quantity: "-4"},
	}
	orders := []*order.Order{
		{ID: "o1", TotalPrice: price("19.90")},
		{ID: "o2", TotalPrice: price("5.10")},
	}
	products := []*product.Product{{ID: "p1"}, {ID: "p2"}, {ID: "p3"}}
	items := []activity.Item{{Kind: activity.KindOrder, Timestamp: time.Now()}}

	tests := []struct {
		role         account.Role
		wantSpent    string
		wantRevenue  string
		wantProducts int
	}{
		{role: account.RoleIndividual, wantSpent: "0", wantRevenue: "0", wantProducts: 0},
		{role: account.RoleBusiness, wantSpent: "25", wantRevenue: "0", wantProducts: 0},
		{role: account.RoleCollector, wantSpent: "0", wantRevenue: "25", wantProducts: 3},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			m := dashboard.Build(tt.role, dashboard.Input{
				Collections: collections,
				Orders:      orders,
				Products:    products,
				Points:      140,
				Activity:    items,
			})

			assert.Equal(t, 3, m.TotalCollections)
			assert.Equal(t, 2, m.TotalOrders)
			assert.Equal(t, 140, m.Points)
			assert.Equal(t, 12.5, m.TotalWeightKg)
			assert.Len(t, m.RecentActivity, 1)
			assert.True(t, price(tt.wantSpent).Equal(m.TotalSpent), "spent %s", m.TotalSpent)
			assert.True(t, price(tt.wantRevenue).Equal(m.TotalRevenue), "revenue %s", m.TotalRevenue)
			assert.Len(t, m.Products, tt.wantProducts)
			assert.Equal(t, tt.wantProducts, m.TotalProducts)
		})
	}
}

func TestBuild_OrderCountWinsOverWindow(t *testing.T) {
	orders := []*order.Order{{ID: "o1"}, {ID: "o2"}}

	assert.Equal(t, 17, dashboard.Build(account.RoleBusiness, dashboard.Input{Orders: orders, OrderCount: 17}).TotalOrders)
	assert.Equal(t, 2, dashboard.Build(account.RoleBusiness, dashboard.Input{Orders: orders, OrderCount: 0}).TotalOrders)
}

func TestBuild_ClampsNegatives(t *testing.T) {
	m := dashboard.Build(account.RoleBusiness, dashboard.Input{
		Orders: []*order.Order{{TotalPrice: price("-30")}, {TotalPrice: price("10")}},
		Points: -5,
	})

	assert.True(t, m.TotalSpent.IsZero())
	assert.Zero(t, m.Points)
}

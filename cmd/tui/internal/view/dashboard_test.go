package view

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/ecocycle/internal/account"
	"github.com/MrJamesThe3rd/ecocycle/internal/activity"
	"github.com/MrJamesThe3rd/ecocycle/internal/dashboard"
)

type dashboardFunc func(ctx context.Context, id account.Identity) (*dashboard.Metrics, error)

func (f dashboardFunc) Get(ctx context.Context, id account.Identity) (*dashboard.Metrics, error) {
	return f(ctx, id)
}

var collector = account.Identity{UserID: "u1", Email: "c@example.com", Role: account.RoleCollector}

func TestActivityRows(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	items := []activity.Item{
		{Title: "Collection scheduled", Description: "PET - 5kg", Timestamp: now.Add(-2 * time.Hour)},
		{Title: "Order paid", Description: "Order #abc - Payment received", Timestamp: now.AddDate(0, 0, -1), Synthetic: true},
	}

	rows := activityRows(items, now)
	require.Len(t, rows, 2)
	assert.Equal(t, "2 hours ago", rows[0][0])
	assert.Equal(t, "Collection scheduled", rows[0][1])
	assert.Equal(t, "Order paid (sample)", rows[1][1])
	assert.Equal(t, "Order #abc - Payment received", rows[1][2])
}

func TestDashboardModel_Load(t *testing.T) {
	metrics := &dashboard.Metrics{
		Points:       42,
		TotalOrders:  3,
		TotalRevenue: decimal.RequireFromString("1500"),
		RecentActivity: []activity.Item{
			{Title: "Order paid", Timestamp: time.Now()},
		},
	}

	var got account.Identity

	svc := dashboardFunc(func(_ context.Context, id account.Identity) (*dashboard.Metrics, error) {
		got = id
		return metrics, nil
	})

	m := NewDashboardModel(svc, collector)
	msg := m.Init()()

	updated, _ := m.Update(msg)
	dm := updated.(DashboardModel)

	assert.Equal(t, collector, got)
	assert.False(t, dm.loading)
	assert.Same(t, metrics, dm.metrics)
	assert.Len(t, dm.table.Rows(), 1)
	assert.Contains(t, dm.View(), "$1,500.00")
	assert.Contains(t, dm.View(), "42 pts")
}

func TestDashboardModel_LoadError(t *testing.T) {
	svc := dashboardFunc(func(context.Context, account.Identity) (*dashboard.Metrics, error) {
		return nil, errors.New("db down")
	})

	m := NewDashboardModel(svc, collector)
	updated, _ := m.Update(m.Init()())

	assert.Contains(t, updated.View(), "db down")
}

func TestMetricsPanel_RoleSpecificCards(t *testing.T) {
	mt := &dashboard.Metrics{TotalSpent: decimal.RequireFromString("10"), TotalRevenue: decimal.RequireFromString("20")}

	business := metricsPanel(account.RoleBusiness, mt)
	assert.Contains(t, business, "Spent")
	assert.NotContains(t, business, "Revenue")

	coll := metricsPanel(account.RoleCollector, mt)
	assert.Contains(t, coll, "Revenue")
	assert.Contains(t, coll, "Listings")

	individual := metricsPanel(account.RoleIndividual, mt)
	assert.NotContains(t, individual, "Spent")
	assert.NotContains(t, individual, "Revenue")
}

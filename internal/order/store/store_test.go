package store_test

import (
	"context"
	"errors"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/ecocycle/internal/order"
	"github.com/MrJamesThe3rd/ecocycle/internal/order/store"
)

var cols = []string{"id", "buyer_id", "product_id", "status", "total_price", "quantity", "created_at"}

func TestStore_ListByBuyer(t *testing.T) {
	created := time.Date(2024, 5, 2, 12, 0, 0, 0, time.UTC)
	productID := "p1"

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	rows := pgxmock.NewRows(cols).
		AddRow("o1", "u1", &productID, "PAID", decimal.RequireFromString("19.90"), 3, &created).
		AddRow("o2", "u1", (*string)(nil), "PENDING", decimal.Zero, 1, &created)

	mock.ExpectQuery(`SELECT .+ FROM orders WHERE buyer_id = \$1 ORDER BY created_at DESC LIMIT 10`).
		WithArgs("u1").
		WillReturnRows(rows)

	got, err := store.New(mock).ListByBuyer(context.Background(), "u1", 10)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, order.StatusPaid, got[0].Status)
	assert.True(t, got[0].TotalPrice.Equal(decimal.RequireFromString("19.9")))
	assert.Equal(t, "p1", got[0].ProductID)
	assert.Equal(t, 3, got[0].Quantity)
	assert.Empty(t, got[1].ProductID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_ListByBuyer_Error(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`SELECT .+ FROM orders`).
		WithArgs("u1").
		WillReturnError(errors.New("timeout"))

	_, err = store.New(mock).ListByBuyer(context.Background(), "u1", 10)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_CountByBuyer(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM orders WHERE buyer_id = \$1`).
		WithArgs("u1").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(17))

	n, err := store.New(mock).CountByBuyer(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 17, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

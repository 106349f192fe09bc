package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/ecocycle/internal/database"
	"github.com/MrJamesThe3rd/ecocycle/internal/order"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var columns = []string{"id", "buyer_id", "product_id", "status", "total_price", "quantity", "created_at"}

type Store struct {
	db database.Querier
}

func New(db database.Querier) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanOrder(s scanner) (*order.Order, error) {
	var (
		o         order.Order
		productID *string
		status    string
		total     decimal.Decimal
	)

	if err := s.Scan(&o.ID, &o.BuyerID, &productID, &status, &total, &o.Quantity, &o.CreatedAt); err != nil {
		return nil, err
	}

	o.Status = order.Status(status)
	o.TotalPrice = total

	if productID != nil {
		o.ProductID = *productID
	}

	return &o, nil
}

// ListByBuyer returns the buyer's orders, newest first.
func (s *Store) ListByBuyer(ctx context.Context, buyerID string, limit int) ([]*order.Order, error) {
	if limit <= 0 {
		return []*order.Order{}, nil
	}

	query, args, err := psql.Select(columns...).
		From("orders").
		Where(sq.Eq{"buyer_id": buyerID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, database.MapError("building orders query", err)
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, database.MapError("listing orders", err)
	}
	defer rows.Close()

	orders := make([]*order.Order, 0, limit)

	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, database.MapError("scanning order", err)
		}

		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		return nil, database.MapError("iterating orders", err)
	}

	return orders, nil
}

// CountByBuyer counts all of the buyer's orders, not just the fetched window.
func (s *Store) CountByBuyer(ctx context.Context, buyerID string) (int, error) {
	query, args, err := psql.Select("COUNT(*)").
		From("orders").
		Where(sq.Eq{"buyer_id": buyerID}).
		ToSql()
	if err != nil {
		return 0, database.MapError("building order count", err)
	}

	var n int
	if err := s.db.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, database.MapError("counting orders", err)
	}

	return n, nil
}

// Create inserts an order. Purchases happen elsewhere; the seeder uses this.
func (s *Store) Create(ctx context.Context, o *order.Order) error {
	var productID *string
	if o.ProductID != "" {
		productID = &o.ProductID
	}

	query, args, err := psql.Insert("orders").
		Columns(columns[:len(columns)-1]...).
		Values(o.ID, o.BuyerID, productID, string(o.Status), o.TotalPrice, o.Quantity).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return database.MapError("building order insert", err)
	}

	if err := s.db.QueryRow(ctx, query, args...).Scan(&o.CreatedAt); err != nil {
		return database.MapError("creating order", err)
	}

	return nil
}

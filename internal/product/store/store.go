package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/MrJamesThe3rd/ecocycle/internal/database"
	"github.com/MrJamesThe3rd/ecocycle/internal/product"
	"github.com/MrJamesThe3rd/ecocycle/internal/rewards"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var columns = []string{
	"id", "seller_id", "name", "price", "category", "description", "image", "quantity", "unit",
	"plastic_type", "in_stock", "is_new", "discount", "reward_points", "created_at",
}

type Store struct {
	db database.Querier
}

func New(db database.Querier) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProduct(s scanner) (*product.Product, error) {
	var (
		p    product.Product
		unit string
	)

	err := s.Scan(
		&p.ID, &p.SellerID, &p.Name, &p.Price, &p.Category, &p.Description, &p.Image, &p.Quantity, &unit,
		&p.PlasticType, &p.InStock, &p.IsNew, &p.Discount, &p.RewardPoints, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.Unit = rewards.ParseUnit(unit)

	return &p, nil
}

// Create inserts the product and credits its reward points to the seller in
// a single statement.
func (s *Store) Create(ctx context.Context, p *product.Product) error {
	query, args, err := psql.Insert("products").
		Prefix("WITH credit AS (UPDATE users SET points = points + ? WHERE id = ?)", p.RewardPoints, p.SellerID).
		Columns(columns[:len(columns)-1]...).
		Values(
			p.ID, p.SellerID, p.Name, p.Price, p.Category, p.Description, p.Image, p.Quantity, string(p.Unit),
			p.PlasticType, p.InStock, p.IsNew, p.Discount, p.RewardPoints,
		).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return database.MapError("building product insert", err)
	}

	if err := s.db.QueryRow(ctx, query, args...).Scan(&p.CreatedAt); err != nil {
		return database.MapError("creating product", err)
	}

	return nil
}

// ListBySeller returns all of the seller's products, newest first.
func (s *Store) ListBySeller(ctx context.Context, sellerID string) ([]*product.Product, error) {
	query, args, err := psql.Select(columns...).
		From("products").
		Where(sq.Eq{"seller_id": sellerID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, database.MapError("building products query", err)
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, database.MapError("listing products", err)
	}
	defer rows.Close()

	products := []*product.Product{}

	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, database.MapError("scanning product", err)
		}

		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, database.MapError("iterating products", err)
	}

	return products, nil
}

package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/MrJamesThe3rd/ecocycle/internal/collection"
	"github.com/MrJamesThe3rd/ecocycle/internal/database"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var columns = []string{"id", "user_id", "type", "waste_type", "quantity", "status", "address", "date", "created_at"}

type Store struct {
	db database.Querier
}

func New(db database.Querier) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

// scanCollection expects the column order in columns.
func scanCollection(s scanner) (*collection.Collection, error) {
	var (
		c                            collection.Collection
		status                       string
		wasteType, quantity, address *string
	)

	if err := s.Scan(&c.ID, &c.UserID, &c.Type, &wasteType, &quantity, &status, &address, &c.Date, &c.CreatedAt); err != nil {
		return nil, err
	}

	c.Status = collection.Status(status)

	if wasteType != nil {
		c.WasteType = *wasteType
	}

	if quantity != nil {
		c.Quantity = *quantity
	}

	if address != nil {
		c.Address = *address
	}

	return &c, nil
}

// ListByUser returns the user's collections, most recently scheduled first.
func (s *Store) ListByUser(ctx context.Context, userID string, limit int) ([]*collection.Collection, error) {
	if limit <= 0 {
		return []*collection.Collection{}, nil
	}

	query, args, err := psql.Select(columns...).
		From("collections").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("date DESC NULLS LAST", "created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, database.MapError("building collections query", err)
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, database.MapError("listing collections", err)
	}
	defer rows.Close()

	collections := make([]*collection.Collection, 0, limit)

	for rows.Next() {
		c, err := scanCollection(rows)
		if err != nil {
			return nil, database.MapError("scanning collection", err)
		}

		collections = append(collections, c)
	}

	if err := rows.Err(); err != nil {
		return nil, database.MapError("iterating collections", err)
	}

	return collections, nil
}

// Create inserts a collection. Scheduling happens elsewhere; the seeder uses this.
func (s *Store) Create(ctx context.Context, c *collection.Collection) error {
	query, args, err := psql.Insert("collections").
		Columns(columns[:len(columns)-1]...).
		Values(c.ID, c.UserID, c.Type, c.WasteType, c.Quantity, string(c.Status), c.Address, c.Date).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return database.MapError("building collection insert", err)
	}

	if err := s.db.QueryRow(ctx, query, args...).Scan(&c.CreatedAt); err != nil {
		return database.MapError("creating collection", err)
	}

	return nil
}

package store

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/MrJamesThe3rd/ecocycle/internal/account"
	"github.com/MrJamesThe3rd/ecocycle/internal/database"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Store struct {
	db database.Querier
}

func New(db database.Querier) *Store {
	return &Store{db: db}
}

// PointsBalance returns the stored reward balance. A missing user has a zero
// balance rather than an error, matching how the dashboard treats new accounts.
func (s *Store) PointsBalance(ctx context.Context, userID string) (int, error) {
	query, args, err := psql.Select("points").
		From("users").
		Where(sq.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return 0, database.MapError("building points query", err)
	}

	var points int
	if err := s.db.QueryRow(ctx, query, args...).Scan(&points); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}

		return 0, database.MapError("loading points balance", err)
	}

	return points, nil
}

// AddPoints credits delta points to the user.
func (s *Store) AddPoints(ctx context.Context, userID string, delta int) error {
	query, args, err := psql.Update("users").
		Set("points", sq.Expr("points + ?", delta)).
		Where(sq.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return database.MapError("building points update", err)
	}

	tag, err := s.db.Exec(ctx, query, args...)
	if err != nil {
		return database.MapError("crediting points", err)
	}

	if tag.RowsAffected() == 0 {
		return database.MapError("crediting points", pgx.ErrNoRows)
	}

	return nil
}

// Upsert inserts or refreshes a user row. Used by the seeder.
func (s *Store) Upsert(ctx context.Context, u *account.User) error {
	query, args, err := psql.Insert("users").
		Columns("id", "name", "email", "user_type", "points").
		Values(u.ID, u.Name, u.Email, string(u.Role), u.Points).
		Suffix("ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, email = EXCLUDED.email, user_type = EXCLUDED.user_type").
		ToSql()
	if err != nil {
		return database.MapError("building user upsert", err)
	}

	if _, err := s.db.Exec(ctx, query, args...); err != nil {
		return database.MapError("upserting user", err)
	}

	return nil
}

// Get loads a user by id.
func (s *Store) Get(ctx context.Context, userID string) (*account.User, error) {
	query, args, err := psql.Select("id", "name", "email", "user_type", "points").
		From("users").
		Where(sq.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return nil, database.MapError("building user query", err)
	}

	var (
		u    account.User
		role string
	)

	if err := s.db.QueryRow(ctx, query, args...).Scan(&u.ID, &u.Name, &u.Email, &role, &u.Points); err != nil {
		return nil, database.MapError("loading user", err)
	}

	u.Role = account.ParseRole(role)

	return &u, nil
}

package activity

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MrJamesThe3rd/ecocycle/internal/account"
	"github.com/MrJamesThe3rd/ecocycle/internal/collection"
	"github.com/MrJamesThe3rd/ecocycle/internal/order"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=activity
type CollectionReader interface {
	ListByUser(ctx context.Context, userID string, limit int) ([]*collection.Collection, error)
}

type OrderReader interface {
	ListByBuyer(ctx context.Context, buyerID string, limit int) ([]*order.Order, error)
}

type Options struct {
	Cap              int
	CollectionsLimit int
	OrdersLimit      int
	// SampleActivity enables the placeholder feed for empty individual accounts.
	SampleActivity bool
	Now            func() time.Time
}

type Service struct {
	collections CollectionReader
	orders      OrderReader
	opts        Options
	logger      *slog.Logger
}

func NewService(collections CollectionReader, orders OrderReader, opts Options, logger *slog.Logger) *Service {
	if opts.Now == nil {
		opts.Now = time.Now
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Service{
		collections: collections,
		orders:      orders,
		opts:        opts,
		logger:      logger,
	}
}

// Feed returns the caller's recent activity. A failed read fails the whole
// feed; partial results are never returned.
func (s *Service) Feed(ctx context.Context, id account.Identity) ([]Item, error) {
	var (
		collections []*collection.Collection
		orders      []*order.Order
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error

		collections, err = s.collections.ListByUser(gctx, id.UserID, s.opts.CollectionsLimit)
		if err != nil {
			return fmt.Errorf("listing collections: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		var err error

		orders, err = s.orders.ListByBuyer(gctx, id.UserID, s.opts.OrdersLimit)
		if err != nil {
			return fmt.Errorf("listing orders: %w", err)
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	now := s.opts.Now()
	items := Aggregate(collections, orders, s.opts.Cap, now)

	return WithSamples(items, id.Role, s.opts.SampleActivity, s.opts.Cap, now), nil
}

// WithSamples substitutes Samples for an empty feed when enabled and the role
// is individual. Otherwise items is returned unchanged.
func WithSamples(items []Item, role account.Role, enabled bool, limit int, now time.Time) []Item {
	if !enabled || len(items) > 0 || role != account.RoleIndividual || limit <= 0 {
		return items
	}

	samples := Samples(now)
	if len(samples) > limit {
		samples = samples[:limit]
	}

	return samples
}

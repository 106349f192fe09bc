package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MrJamesThe3rd/ecocycle/internal/account"
	"github.com/MrJamesThe3rd/ecocycle/internal/activity"
	"github.com/MrJamesThe3rd/ecocycle/internal/collection"
	"github.com/MrJamesThe3rd/ecocycle/internal/order"
	"github.com/MrJamesThe3rd/ecocycle/internal/product"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=dashboard
type PointsReader interface {
	PointsBalance(ctx context.Context, userID string) (int, error)
}

type CollectionReader interface {
	ListByUser(ctx context.Context, userID string, limit int) ([]*collection.Collection, error)
}

type OrderReader interface {
	ListByBuyer(ctx context.Context, buyerID string, limit int) ([]*order.Order, error)
	CountByBuyer(ctx context.Context, buyerID string) (int, error)
}

type ProductReader interface {
	ListBySeller(ctx context.Context, sellerID string) ([]*product.Product, error)
}

type Options struct {
	ActivityCap      int
	CollectionsLimit int
	OrdersLimit      int
	SampleActivity   bool
	Now              func() time.Time
}

type Service struct {
	points      PointsReader
	collections CollectionReader
	orders      OrderReader
	products    ProductReader
	opts        Options
	logger      *slog.Logger
}

func NewService(
	points PointsReader,
	collections CollectionReader,
	orders OrderReader,
	products ProductReader,
	opts Options,
	logger *slog.Logger,
) *Service {
	if opts.Now == nil {
		opts.Now = time.Now
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Service{
		points:      points,
		collections: collections,
		orders:      orders,
		products:    products,
		opts:        opts,
		logger:      logger,
	}
}

// Get loads everything the dashboard needs concurrently. Any failed read
// fails the whole dashboard.
func (s *Service) Get(ctx context.Context, id account.Identity) (*Metrics, error) {
	var in Input

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		points, err := s.points.PointsBalance(gctx, id.UserID)
		if err != nil {
			return fmt.Errorf("loading points: %w", err)
		}

		in.Points = points

		return nil
	})

	g.Go(func() error {
		collections, err := s.collections.ListByUser(gctx, id.UserID, s.opts.CollectionsLimit)
		if err != nil {
			return fmt.Errorf("listing collections: %w", err)
		}

		in.Collections = collections

		return nil
	})

	g.Go(func() error {
		orders, err := s.orders.ListByBuyer(gctx, id.UserID, s.opts.OrdersLimit)
		if err != nil {
			return fmt.Errorf("listing orders: %w", err)
		}

		in.Orders = orders

		return nil
	})

	g.Go(func() error {
		count, err := s.orders.CountByBuyer(gctx, id.UserID)
		if err != nil {
			return fmt.Errorf("counting orders: %w", err)
		}

		in.OrderCount = count

		return nil
	})

	if id.Role == account.RoleCollector {
		g.Go(func() error {
			products, err := s.products.ListBySeller(gctx, id.UserID)
			if err != nil {
				return fmt.Errorf("listing products: %w", err)
			}

			in.Products = products

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	now := s.opts.Now()
	in.Activity = activity.WithSamples(
		activity.Aggregate(in.Collections, in.Orders, s.opts.ActivityCap, now),
		id.Role, s.opts.SampleActivity, s.opts.ActivityCap, now,
	)

	m := Build(id.Role, in)

	s.logger.Debug("dashboard built",
		"user_id", id.UserID,
		"role", id.Role,
		"collections", m.TotalCollections,
		"orders", m.TotalOrders,
		"activity", len(m.RecentActivity),
	)

	return m, nil
}

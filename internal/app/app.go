// Package app wires configuration, stores and services together for the
// commands.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MrJamesThe3rd/ecocycle/internal/account"
	accountStore "github.com/MrJamesThe3rd/ecocycle/internal/account/store"
	"github.com/MrJamesThe3rd/ecocycle/internal/activity"
	collectionStore "github.com/MrJamesThe3rd/ecocycle/internal/collection/store"
	"github.com/MrJamesThe3rd/ecocycle/internal/config"
	"github.com/MrJamesThe3rd/ecocycle/internal/dashboard"
	"github.com/MrJamesThe3rd/ecocycle/internal/database"
	"github.com/MrJamesThe3rd/ecocycle/internal/events"
	orderStore "github.com/MrJamesThe3rd/ecocycle/internal/order/store"
	"github.com/MrJamesThe3rd/ecocycle/internal/product"
	"github.com/MrJamesThe3rd/ecocycle/internal/product/catalog"
	productStore "github.com/MrJamesThe3rd/ecocycle/internal/product/store"
	"github.com/MrJamesThe3rd/ecocycle/internal/rewards"
	"github.com/MrJamesThe3rd/ecocycle/internal/storage"
)

type App struct {
	Config *config.Config
	Logger *slog.Logger
	DB     *pgxpool.Pool

	Accounts    *accountStore.Store
	Collections *collectionStore.Store
	Orders      *orderStore.Store
	Products    *productStore.Store
	Rewards     *rewards.Calculator

	Dashboard *dashboard.Service
	Activity  *activity.Service

	// Set by OpenMarketplace.
	Catalog     *catalog.Catalog
	Images      storage.ObjectStore
	Events      events.Publisher
	Marketplace *product.Service

	closers []func(context.Context) error
}

// Open connects to postgres, optionally migrates it, and builds the read
// services.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	pool, err := database.New(ctx, cfg.ConnectionString(), database.PoolConfig{
		MaxConns:        cfg.DB.MaxConns,
		MinConns:        cfg.DB.MinConns,
		MaxConnLifetime: cfg.DB.MaxConnLifetime,
	})
	if err != nil {
		return nil, err
	}

	if cfg.DB.Migrate {
		if err := database.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
	}

	a := &App{
		Config:      cfg,
		Logger:      logger,
		DB:          pool,
		Accounts:    accountStore.New(pool),
		Collections: collectionStore.New(pool),
		Orders:      orderStore.New(pool),
		Products:    productStore.New(pool),
		Rewards:     rewards.NewCalculator(cfg.Rewards.PieceWeightKg),
	}

	a.Dashboard = dashboard.NewService(a.Accounts, a.Collections, a.Orders, a.Products, dashboard.Options{
		ActivityCap:      cfg.Dashboard.ActivityCap,
		CollectionsLimit: cfg.Dashboard.CollectionsLimit,
		OrdersLimit:      cfg.Dashboard.OrdersLimit,
		SampleActivity:   cfg.Dashboard.SampleActivity,
	}, logger)

	a.Activity = activity.NewService(a.Collections, a.Orders, activity.Options{
		Cap:              cfg.Dashboard.FeedCap,
		CollectionsLimit: cfg.Dashboard.FeedCollections,
		OrdersLimit:      cfg.Dashboard.FeedOrders,
		SampleActivity:   cfg.Dashboard.SampleActivity,
	}, logger)

	a.closers = append(a.closers, func(context.Context) error {
		pool.Close()
		return nil
	})

	return a, nil
}

// OpenMarketplace connects the document store, the image store and the event
// publisher, then builds the product service.
func (a *App) OpenMarketplace(ctx context.Context) error {
	cfg := a.Config

	cat, client, err := catalog.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database, cfg.Mongo.Collection)
	if err != nil {
		return err
	}

	a.Catalog = cat
	a.closers = append(a.closers, client.Disconnect)

	switch cfg.Storage.Driver {
	case "s3":
		s3Store, err := storage.NewS3(ctx, cfg.Storage.S3Region, cfg.Storage.S3Bucket, cfg.Storage.PublicPrefix)
		if err != nil {
			return err
		}

		a.Images = s3Store
	default:
		a.Images = storage.NewLocal(cfg.Storage.UploadDir, cfg.Storage.PublicPrefix)
	}

	a.Events = events.Nop{}

	if cfg.Kafka.Enabled {
		k, err := events.NewKafka(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		if err != nil {
			return err
		}

		a.Events = k
	}

	publisher := a.Events
	a.closers = append(a.closers, func(context.Context) error { return publisher.Close() })

	a.Marketplace = product.NewService(a.Products, a.Catalog, a.Images, a.Accounts, a.Events, a.Rewards, a.Logger)

	return nil
}

// Close releases resources in reverse order of acquisition.
func (a *App) Close(ctx context.Context) error {
	var errs []error

	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}

	a.closers = nil

	if len(errs) > 0 {
		return fmt.Errorf("closing app: %w", errors.Join(errs...))
	}

	return nil
}

// Identity loads a user and returns it as an identity, for tools that act on
// behalf of a user without a token.
func (a *App) Identity(ctx context.Context, userID string) (account.Identity, error) {
	u, err := a.Accounts.Get(ctx, userID)
	if err != nil {
		return account.Identity{}, fmt.Errorf("loading user %s: %w", userID, err)
	}

	return account.Identity{UserID: u.ID, Email: u.Email, Role: u.Role}, nil
}

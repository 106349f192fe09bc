package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/MrJamesThe3rd/ecocycle/cmd/seed/internal/seed"
	"github.com/MrJamesThe3rd/ecocycle/internal/account"
	"github.com/MrJamesThe3rd/ecocycle/internal/app"
	"github.com/MrJamesThe3rd/ecocycle/internal/auth"
	"github.com/MrJamesThe3rd/ecocycle/internal/config"
	"github.com/MrJamesThe3rd/ecocycle/internal/product/catalog"
)

var opts struct {
	plan     seed.Plan
	seed     int64
	migrate  bool
	catalog  bool
	tokens   bool
	tokenTTL time.Duration
}

var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seeds demo users, collections, orders and products",
	Long: `seed fills the database with fake users of every role together with their pickups,
marketplace listings and orders, so the dashboard and activity feed have something to show.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		if opts.migrate {
			cfg.DB.Migrate = true
		}

		return run(cmd.Context(), cfg)
	},
}

func init() {
	rootCmd.Flags().IntVar(&opts.plan.Users, "users", 6, "Number of users to create")
	rootCmd.Flags().IntVar(&opts.plan.CollectionsPerUser, "collections", 3, "Collections per user")
	rootCmd.Flags().IntVar(&opts.plan.OrdersPerBuyer, "orders", 2, "Orders per user")
	rootCmd.Flags().IntVar(&opts.plan.ProductsPerSeller, "products", 2, "Products per individual or collector")
	rootCmd.Flags().Int64Var(&opts.seed, "seed", 42, "Random seed for generated data")
	rootCmd.Flags().BoolVar(&opts.migrate, "migrate", false, "Apply migrations before seeding")
	rootCmd.Flags().BoolVar(&opts.catalog, "catalog", false, "Mirror products into the document store")
	rootCmd.Flags().BoolVar(&opts.tokens, "tokens", false, "Print a bearer token for every seeded user")
	rootCmd.Flags().DurationVar(&opts.tokenTTL, "token-ttl", 24*time.Hour, "Lifetime of printed tokens")
}

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	logger := app.NewLogger(os.Stderr, cfg.App.LogFormat, cfg.App.LogLevel)

	a, err := app.Open(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("opening app: %w", err)
	}

	defer func() {
		if err := a.Close(context.Background()); err != nil {
			logger.Error("failed to close resources", "error", err)
		}
	}()

	var cat seed.Catalog

	if opts.catalog {
		c, client, err := catalog.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database, cfg.Mongo.Collection)
		if err != nil {
			return err
		}

		defer func() {
			if err := client.Disconnect(context.Background()); err != nil {
				logger.Error("failed to disconnect catalog", "error", err)
			}
		}()

		cat = c
	}

	factory := seed.NewFactory(opts.seed, a.Rewards, time.Now())
	seeder := seed.NewSeeder(a.Accounts, a.Collections, a.Orders, a.Products, cat, factory, logger)

	bar := progressbar.NewOptions(opts.plan.Steps(),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("seeding"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	users, err := seeder.Run(ctx, opts.plan, func() { _ = bar.Add(1) })
	_ = bar.Finish()

	if err != nil {
		return err
	}

	return printUsers(users, cfg)
}

func printUsers(users []*account.User, cfg *config.Config) error {
	tokens := auth.NewTokens(cfg.Auth.JWTSecret, cfg.Auth.Issuer)

	for _, u := range users {
		fmt.Printf("%-26s %-11s %5d pts  %s\n", u.ID, u.Role, u.Points, u.Email)

		if !opts.tokens {
			continue
		}

		token, err := tokens.Issue(account.Identity{UserID: u.ID, Email: u.Email, Role: u.Role}, opts.tokenTTL)
		if err != nil {
			return fmt.Errorf("issuing token for %s: %w", u.ID, err)
		}

		fmt.Printf("  %s\n", token)
	}

	return nil
}

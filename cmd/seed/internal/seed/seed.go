// Package seed fills a database with demo users and their activity.
package seed

//go:generate mockgen -source=seed.go -destination=seed_mock.go -package=seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/MrJamesThe3rd/ecocycle/internal/account"
	"github.com/MrJamesThe3rd/ecocycle/internal/collection"
	"github.com/MrJamesThe3rd/ecocycle/internal/order"
	"github.com/MrJamesThe3rd/ecocycle/internal/product"
)

type UserWriter interface {
	Upsert(ctx context.Context, u *account.User) error
}

type CollectionWriter interface {
	Create(ctx context.Context, c *collection.Collection) error
}

type OrderWriter interface {
	Create(ctx context.Context, o *order.Order) error
}

type ProductWriter interface {
	Create(ctx context.Context, p *product.Product) error
}

// Catalog mirrors products into the document store.
type Catalog interface {
	Upsert(ctx context.Context, p *product.Product) error
}

type Plan struct {
	Users              int
	CollectionsPerUser int
	OrdersPerBuyer     int
	ProductsPerSeller  int
}

// Steps is the number of writes Run performs, for sizing a progress bar.
func (p Plan) Steps() int {
	sellers := 0

	for i := range p.Users {
		if roles[i%len(roles)].CanSell() {
			sellers++
		}
	}

	return p.Users*(1+p.CollectionsPerUser+p.OrdersPerBuyer) + sellers*p.ProductsPerSeller
}

type Seeder struct {
	users       UserWriter
	collections CollectionWriter
	orders      OrderWriter
	products    ProductWriter
	catalog     Catalog
	factory     *Factory
	logger      *slog.Logger
}

// NewSeeder builds a seeder. catalog may be nil to skip mirroring.
func NewSeeder(
	users UserWriter,
	collections CollectionWriter,
	orders OrderWriter,
	products ProductWriter,
	catalog Catalog,
	factory *Factory,
	logger *slog.Logger,
) *Seeder {
	if logger == nil {
		logger = slog.Default()
	}

	return &Seeder{
		users:       users,
		collections: collections,
		orders:      orders,
		products:    products,
		catalog:     catalog,
		factory:     factory,
		logger:      logger,
	}
}

// Roles cycle so every role is represented once there are three users.
var roles = []account.Role{account.RoleIndividual, account.RoleBusiness, account.RoleCollector}

// Run creates plan.Users users. Everyone gets collections, sellers get
// products, and everyone places orders against the listings created so far.
// step is called after each write.
func (s *Seeder) Run(ctx context.Context, plan Plan, step func()) ([]*account.User, error) {
	if step == nil {
		step = func() {}
	}

	users := make([]*account.User, 0, plan.Users)

	for i := range plan.Users {
		u := s.factory.User(roles[i%len(roles)])
		if err := s.users.Upsert(ctx, u); err != nil {
			return users, fmt.Errorf("seeding user: %w", err)
		}

		users = append(users, u)
		step()
	}

	for _, u := range users {
		for range plan.CollectionsPerUser {
			if err := s.collections.Create(ctx, s.factory.Collection(u.ID)); err != nil {
				return users, fmt.Errorf("seeding collection for %s: %w", u.ID, err)
			}

			step()
		}
	}

	var listings []*product.Product

	for _, u := range users {
		if !u.Role.CanSell() {
			continue
		}

		for range plan.ProductsPerSeller {
			p := s.factory.Product(u.ID)
			if err := s.products.Create(ctx, p); err != nil {
				return users, fmt.Errorf("seeding product for %s: %w", u.ID, err)
			}

			u.Points += p.RewardPoints
			listings = append(listings, p)

			if s.catalog != nil {
				p.Seller = &product.Seller{ID: u.ID, Name: u.Name, UserType: string(u.Role)}
				if err := s.catalog.Upsert(ctx, p); err != nil {
					s.logger.Warn("failed to mirror seeded product", "product_id", p.ID, "error", err)
				}
			}

			step()
		}
	}

	for i, u := range users {
		for j := range plan.OrdersPerBuyer {
			var p *product.Product
			if len(listings) > 0 {
				p = listings[(i+j)%len(listings)]
			}

			if err := s.orders.Create(ctx, s.factory.Order(u.ID, p)); err != nil {
				return users, fmt.Errorf("seeding order for %s: %w", u.ID, err)
			}

			step()
		}
	}

	return users, nil
}

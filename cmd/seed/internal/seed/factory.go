package seed

import (
	"math/rand"
	"strconv"
	"time"

	"github.com/jaswdr/faker"
	"github.com/lucsky/cuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/ecocycle/internal/account"
	"github.com/MrJamesThe3rd/ecocycle/internal/collection"
	"github.com/MrJamesThe3rd/ecocycle/internal/order"
	"github.com/MrJamesThe3rd/ecocycle/internal/product"
	"github.com/MrJamesThe3rd/ecocycle/internal/rewards"
)

var (
	plastics   = []string{"PET", "HDPE", "PVC", "LDPE", "PP", "PS", "OTHER"}
	categories = []string{"Bottles", "Containers", "Bags", "Furniture", "Crafts"}
	units      = []rewards.Unit{rewards.UnitKilogram, rewards.UnitGram, rewards.UnitPiece}

	collectionStatuses = []collection.Status{
		collection.StatusScheduled, collection.StatusInProgress, collection.StatusCompleted, collection.StatusCancelled,
	}
	orderStatuses = []order.Status{
		order.StatusPending, order.StatusAccepted, order.StatusPaid,
		order.StatusDelivered, order.StatusCompleted, order.StatusCancelled,
	}
)

// Factory builds plausible fake records. Ids are cuids; everything else is
// drawn from a seeded faker so runs are reproducible apart from ids.
type Factory struct {
	fake faker.Faker
	rng  *rand.Rand
	calc *rewards.Calculator
	now  time.Time
}

func NewFactory(seed int64, calc *rewards.Calculator, now time.Time) *Factory {
	return &Factory{
		fake: faker.NewWithSeed(rand.NewSource(seed)),
		rng:  rand.New(rand.NewSource(seed)),
		calc: calc,
		now:  now,
	}
}

func (f *Factory) User(role account.Role) *account.User {
	return &account.User{
		ID:    cuid.New(),
		Name:  f.fake.Person().Name(),
		Email: f.fake.Internet().Email(),
		Role:  role,
	}
}

// Collection returns a pickup within 30 days either side of now.
func (f *Factory) Collection(userID string) *collection.Collection {
	date := f.fake.Time().TimeBetween(f.now.AddDate(0, 0, -30), f.now.AddDate(0, 0, 30))

	return &collection.Collection{
		ID:        cuid.New(),
		UserID:    userID,
		Type:      "PICKUP",
		WasteType: f.fake.RandomStringElement(plastics),
		Quantity:  strconv.Itoa(f.fake.IntBetween(1, 50)),
		Status:    collectionStatuses[f.rng.Intn(len(collectionStatuses))],
		Address:   f.fake.Address().Address(),
		Date:      &date,
	}
}

func (f *Factory) Product(sellerID string) *product.Product {
	material := f.fake.RandomStringElement(plastics)
	unit := units[f.rng.Intn(len(units))]
	quantity := f.fake.IntBetween(1, 100)

	return &product.Product{
		ID:           cuid.New(),
		SellerID:     sellerID,
		Name:         f.fake.Lorem().Word() + " " + material,
		Price:        decimal.New(int64(f.fake.IntBetween(100, 50000)), -2),
		Category:     f.fake.RandomStringElement(categories),
		Description:  f.fake.Lorem().Sentence(10),
		Image:        "/uploads/products/placeholder.png",
		Quantity:     quantity,
		Unit:         unit,
		PlasticType:  material,
		InStock:      true,
		IsNew:        true,
		RewardPoints: f.calc.Points(material, float64(quantity), unit),
	}
}

// Order returns a purchase of p, or a standalone order when p is nil.
func (f *Factory) Order(buyerID string, p *product.Product) *order.Order {
	o := &order.Order{
		ID:       cuid.New(),
		BuyerID:  buyerID,
		Status:   orderStatuses[f.rng.Intn(len(orderStatuses))],
		Quantity: f.fake.IntBetween(1, 5),
	}

	if p != nil {
		o.ProductID = p.ID
		o.TotalPrice = p.Price.Mul(decimal.NewFromInt(int64(o.Quantity)))
	} else {
		o.TotalPrice = decimal.New(int64(f.fake.IntBetween(100, 20000)), -2)
	}

	return o
}

package product

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/ecocycle/internal/account"
	"github.com/MrJamesThe3rd/ecocycle/internal/events"
	"github.com/MrJamesThe3rd/ecocycle/internal/rewards"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=product
type Repository interface {
	// Create persists the product and credits its reward points to the seller atomically.
	Create(ctx context.Context, p *Product) error
	ListBySeller(ctx context.Context, sellerID string) ([]*Product, error)
}

type Catalog interface {
	Upsert(ctx context.Context, p *Product) error
	List(ctx context.Context, category string) ([]*Product, error)
}

type ImageStore interface {
	Put(ctx context.Context, name, contentType string, body io.Reader) (string, error)
}

type AccountReader interface {
	Get(ctx context.Context, userID string) (*account.User, error)
}

type Publisher interface {
	Publish(ctx context.Context, e events.Event) error
}

type Service struct {
	repo     Repository
	catalog  Catalog
	images   ImageStore
	accounts AccountReader
	events   Publisher
	calc     *rewards.Calculator
	logger   *slog.Logger
}

func NewService(
	repo Repository,
	catalog Catalog,
	images ImageStore,
	accounts AccountReader,
	publisher Publisher,
	calc *rewards.Calculator,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}

	return &Service{
		repo:     repo,
		catalog:  catalog,
		images:   images,
		accounts: accounts,
		events:   publisher,
		calc:     calc,
		logger:   logger,
	}
}

// CreateParams carries the raw form values of a new listing.
type CreateParams struct {
	Name        string
	Price       string
	Category    string
	Description string
	Quantity    string
	Unit        string
	PlasticType string
	Discount    string
}

type Image struct {
	Name        string
	ContentType string
	Body        io.Reader
}

type createdPayload struct {
	ProductID    string `json:"productId"`
	SellerID     string `json:"sellerId"`
	Category     string `json:"category"`
	PlasticType  string `json:"plasticType"`
	RewardPoints int    `json:"rewardPoints"`
}

// Create lists a new product for the caller. The image is uploaded first,
// then the product and the seller's reward points are written together.
// Mirroring to the catalog and publishing the event are best effort.
func (s *Service) Create(ctx context.Context, id account.Identity, params CreateParams, img *Image) (*Product, error) {
	if !id.Role.CanSell() {
		return nil, ErrForbidden
	}

	if img == nil || img.Body == nil {
		return nil, &ValidationError{Field: "image"}
	}

	p, qty, err := parse(params)
	if err != nil {
		return nil, err
	}

	ref, err := s.images.Put(ctx, img.Name, img.ContentType, img.Body)
	if err != nil {
		return nil, fmt.Errorf("uploading product image: %w", err)
	}

	p.ID = uuid.NewString()
	p.SellerID = id.UserID
	p.Image = ref
	p.InStock = true
	p.IsNew = true
	p.RewardPoints = s.calc.Points(p.PlasticType, qty, p.Unit)

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("creating product: %w", err)
	}

	p.Seller = s.seller(ctx, id)

	if err := s.catalog.Upsert(ctx, p); err != nil {
		s.logger.Error("failed to mirror product to catalog", "product_id", p.ID, "error", err)
	}

	err = s.events.Publish(ctx, events.Event{
		Type:       events.TypeProductCreated,
		Key:        p.ID,
		OccurredAt: time.Now().UTC(),
		Payload: createdPayload{
			ProductID:    p.ID,
			SellerID:     p.SellerID,
			Category:     p.Category,
			PlasticType:  p.PlasticType,
			RewardPoints: p.RewardPoints,
		},
	})
	if err != nil {
		s.logger.Error("failed to publish product event", "product_id", p.ID, "error", err)
	}

	return p, nil
}

func (s *Service) seller(ctx context.Context, id account.Identity) *Seller {
	seller := &Seller{ID: id.UserID, Name: id.Email, UserType: string(id.Role)}

	u, err := s.accounts.Get(ctx, id.UserID)
	if err != nil {
		s.logger.Warn("failed to load seller", "user_id", id.UserID, "error", err)
		return seller
	}

	if u.Name != "" {
		seller.Name = u.Name
	}

	return seller
}

// ListBySeller returns the caller's own listings, newest first.
func (s *Service) ListBySeller(ctx context.Context, id account.Identity) ([]*Product, error) {
	products, err := s.repo.ListBySeller(ctx, id.UserID)
	if err != nil {
		return nil, fmt.Errorf("listing seller products: %w", err)
	}

	return products, nil
}

// Catalog lists public listings. An empty category or "all" disables the filter.
func (s *Service) Catalog(ctx context.Context, category string) ([]*Product, error) {
	category = strings.TrimSpace(category)
	if strings.EqualFold(category, "all") {
		category = ""
	}

	products, err := s.catalog.List(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("listing catalog: %w", err)
	}

	return products, nil
}

// parse validates the required fields in form order and converts the numeric ones.
// The returned quantity keeps any fraction for the reward calculation; the
// stored quantity is truncated to whole units.
func parse(params CreateParams) (*Product, float64, error) {
	required := []struct {
		field string
		value string
	}{
		{"name", params.Name},
		{"price", params.Price},
		{"category", params.Category},
		{"description", params.Description},
		{"quantity", params.Quantity},
		{"plasticType", params.PlasticType},
	}

	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return nil, 0, &ValidationError{Field: r.field}
		}
	}

	price, err := decimal.NewFromString(strings.TrimSpace(params.Price))
	if err != nil || price.IsNegative() {
		return nil, 0, &ValidationError{Field: "price", Reason: "must be a non-negative number"}
	}

	qty, err := strconv.ParseFloat(strings.TrimSpace(params.Quantity), 64)
	if err != nil || qty < 0 || math.IsInf(qty, 0) || math.IsNaN(qty) || qty > math.MaxInt32 {
		return nil, 0, &ValidationError{Field: "quantity", Reason: "must be a non-negative number"}
	}

	discount := 0
	if d := strings.TrimSpace(params.Discount); d != "" {
		discount, err = strconv.Atoi(d)
		if err != nil || discount < 0 || discount > 100 {
			return nil, 0, &ValidationError{Field: "discount", Reason: "must be a whole percentage"}
		}
	}

	return &Product{
		Name:        strings.TrimSpace(params.Name),
		Price:       price,
		Category:    strings.TrimSpace(params.Category),
		Description: strings.TrimSpace(params.Description),
		Quantity:    int(qty),
		Unit:        rewards.ParseUnit(params.Unit),
		PlasticType: strings.TrimSpace(params.PlasticType),
		Discount:    discount,
	}, qty, nil
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

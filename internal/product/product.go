package product

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/ecocycle/internal/rewards"
)

var ErrForbidden = errors.New("only individuals and collectors can create products")

// Product is a marketplace listing of recycled material.
type Product struct {
	ID           string
	SellerID     string
	Name         string
	Price        decimal.Decimal
	Category     string
	Description  string
	Image        string
	Quantity     int
	Unit         rewards.Unit
	PlasticType  string
	InStock      bool
	IsNew        bool
	Discount     int
	RewardPoints int
	CreatedAt    time.Time

	// Seller is only populated by catalog reads.
	Seller *Seller
}

type Seller struct {
	ID       string
	Name     string
	UserType string
}

// ValidationError names the first offending form field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "image" && e.Reason == "" {
		return "Missing product image"
	}

	if e.Reason != "" {
		return "Invalid field " + e.Field + ": " + e.Reason
	}

	return "Missing required field: " + e.Field
}

package order

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status is the marketplace order state. Transitions happen outside this service.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusAccepted  Status = "ACCEPTED"
	StatusPaid      Status = "PAID"
	StatusDelivered Status = "DELIVERED"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

// Order is a marketplace purchase.
type Order struct {
	ID         string
	BuyerID    string
	ProductID  string
	Status     Status
	TotalPrice decimal.Decimal
	Quantity   int
	CreatedAt  *time.Time
}

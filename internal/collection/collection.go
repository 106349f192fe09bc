package collection

import "time"

// Status is the pickup workflow state. Transitions happen outside this service.
type Status string

const (
	StatusScheduled  Status = "SCHEDULED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
	StatusCancelled  Status = "CANCELLED"
)

// Collection is a scheduled pickup of recyclable material.
type Collection struct {
	ID        string
	UserID    string
	Type      string
	WasteType string
	Quantity  string // Free text as entered; parse with rewards.ParseQuantity.
	Status    Status
	Address   string
	Date      *time.Time
	CreatedAt *time.Time
}

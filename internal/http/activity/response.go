package activity

import (
	"time"

	"github.com/MrJamesThe3rd/ecocycle/internal/activity"
)

type ItemResponse struct {
	Type         activity.Kind `json:"type"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	Date         time.Time     `json:"date"`
	Status       *string       `json:"status,omitempty"`
	Quantity     *int          `json:"quantity,omitempty"`
	OrderID      string        `json:"orderId,omitempty"`
	CollectionID string        `json:"collectionId,omitempty"`
	Synthetic    bool          `json:"synthetic,omitempty"`
}

func ToResponse(it activity.Item) ItemResponse {
	return ItemResponse{
		Type:         it.Kind,
		Title:        it.Title,
		Description:  it.Description,
		Date:         it.Timestamp.UTC(),
		Status:       it.Status,
		Quantity:     it.Quantity,
		OrderID:      it.OrderID,
		CollectionID: it.CollectionID,
		Synthetic:    it.Synthetic,
	}
}

func ToResponseList(items []activity.Item) []ItemResponse {
	resp := make([]ItemResponse, len(items))
	for i, it := range items {
		resp[i] = ToResponse(it)
	}

	return resp
}

// isEmpty reports whether the feed holds no real activity.
func isEmpty(items []activity.Item) bool {
	for _, it := range items {
		if !it.Synthetic {
			return false
		}
	}

	return true
}

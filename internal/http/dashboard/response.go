package dashboard

import (
	"time"

	"github.com/MrJamesThe3rd/ecocycle/internal/collection"
	"github.com/MrJamesThe3rd/ecocycle/internal/dashboard"
	"github.com/MrJamesThe3rd/ecocycle/internal/order"
	httpactivity "github.com/MrJamesThe3rd/ecocycle/internal/http/activity"
	httpproduct "github.com/MrJamesThe3rd/ecocycle/internal/http/product"
)

type collectionResponse struct {
	ID        string            `json:"id"`
	Type      string            `json:"type"`
	WasteType string            `json:"wasteType,omitempty"`
	Quantity  string            `json:"quantity,omitempty"`
	Status    collection.Status `json:"status"`
	Address   string            `json:"address,omitempty"`
	Date      *time.Time        `json:"date"`
	CreatedAt *time.Time        `json:"createdAt"`
}

type orderResponse struct {
	ID         string       `json:"id"`
	BuyerID    string       `json:"buyerId"`
	Status     order.Status `json:"status"`
	TotalPrice float64      `json:"totalPrice"`
	Quantity   int          `json:"quantity"`
	CreatedAt  *time.Time   `json:"createdAt"`
}

type metricsResponse struct {
	Success          bool                        `json:"success"`
	Collections      []collectionResponse        `json:"collections"`
	Products         []httpproduct.Response      `json:"products"`
	Points           int                         `json:"points"`
	TotalCollections int                         `json:"totalCollections"`
	TotalProducts    int                         `json:"totalProducts"`
	TotalOrders      int                         `json:"totalOrders"`
	TotalWeightKg    float64                     `json:"totalWeightKg"`
	RecentActivity   []httpactivity.ItemResponse `json:"recentActivity"`
	TotalSpent       float64                     `json:"totalSpent"`
	TotalRevenue     float64                     `json:"totalRevenue"`
	Orders           []orderResponse             `json:"orders"`
}

func toResponse(m *dashboard.Metrics) metricsResponse {
	resp := metricsResponse{
		Success:          true,
		Collections:      make([]collectionResponse, 0, len(m.Collections)),
		Products:         httpproduct.ToResponseList(m.Products),
		Points:           m.Points,
		TotalCollections: m.TotalCollections,
		TotalProducts:    m.TotalProducts,
		TotalOrders:      m.TotalOrders,
		TotalWeightKg:    m.TotalWeightKg,
		RecentActivity:   httpactivity.ToResponseList(m.RecentActivity),
		TotalSpent:       m.TotalSpent.InexactFloat64(),
		TotalRevenue:     m.TotalRevenue.InexactFloat64(),
		Orders:           make([]orderResponse, 0, len(m.Orders)),
	}

	for _, c := range m.Collections {
		if c == nil {
			continue
		}

		resp.Collections = append(resp.Collections, collectionResponse{
			ID:        c.ID,
			Type:      c.Type,
			WasteType: c.WasteType,
			Quantity:  c.Quantity,
			Status:    c.Status,
			Address:   c.Address,
			Date:      utc(c.Date),
			CreatedAt: utc(c.CreatedAt),
		})
	}

	for _, o := range m.Orders {
		if o == nil {
			continue
		}

		resp.Orders = append(resp.Orders, orderResponse{
			ID:         o.ID,
			BuyerID:    o.BuyerID,
			Status:     o.Status,
			TotalPrice: o.TotalPrice.InexactFloat64(),
			Quantity:   o.Quantity,
			CreatedAt:  utc(o.CreatedAt),
		})
	}

	return resp
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}

	u := t.UTC()

	return &u
}

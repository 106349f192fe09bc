package product

import (
	"time"

	"github.com/MrJamesThe3rd/ecocycle/internal/product"
	"github.com/MrJamesThe3rd/ecocycle/internal/rewards"
)

type sellerResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	UserType string `json:"userType"`
}

type Response struct {
	ID           string          `json:"id"`
	SellerID     string          `json:"sellerId"`
	Name         string          `json:"name"`
	Price        float64         `json:"price"`
	Category     string          `json:"category"`
	Description  string          `json:"description"`
	Image        string          `json:"image"`
	Quantity     int             `json:"quantity"`
	Unit         rewards.Unit    `json:"unit"`
	PlasticType  string          `json:"plasticType"`
	InStock      bool            `json:"inStock"`
	IsNew        bool            `json:"isNew"`
	Discount     int             `json:"discount"`
	RewardPoints int             `json:"rewardPoints"`
	Seller       *sellerResponse `json:"seller,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
}

func ToResponse(p *product.Product) Response {
	resp := Response{
		ID:           p.ID,
		SellerID:     p.SellerID,
		Name:         p.Name,
		Price:        p.Price.InexactFloat64(),
		Category:     p.Category,
		Description:  p.Description,
		Image:        p.Image,
		Quantity:     p.Quantity,
		Unit:         p.Unit,
		PlasticType:  p.PlasticType,
		InStock:      p.InStock,
		IsNew:        p.IsNew,
		Discount:     p.Discount,
		RewardPoints: p.RewardPoints,
		CreatedAt:    p.CreatedAt.UTC(),
	}

	if p.Seller != nil {
		resp.Seller = &sellerResponse{ID: p.Seller.ID, Name: p.Seller.Name, UserType: p.Seller.UserType}
	}

	return resp
}

func ToResponseList(products []*product.Product) []Response {
	resp := make([]Response, 0, len(products))
	for _, p := range products {
		if p != nil {
			resp = append(resp, ToResponse(p))
		}
	}

	return resp
}

package response

import (
	"time"

	"ophelia-market/internal/data/entity"
)

type ProductResponse struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Category    entity.Category  `json:"category"`
	Gender      entity.Gender    `json:"gender"`
	Size        string           `json:"size"`
	Price       int              `json:"price"`
	Condition   entity.Condition `json:"condition"`
	SellerID    string           `json:"seller_id"`
	SellerPhone string           `json:"seller_phone"`
	Images      []string         `json:"images"`
	Sold        bool             `json:"sold"`
	CreatedAt   time.Time        `json:"created_at"`
}

// SellerDashboardResponse is the seller's own listings plus the counters
// shown above them.
type SellerDashboardResponse struct {
	Products    []ProductResponse `json:"products"`
	ActiveCount int               `json:"active_count"`
	SoldCount   int               `json:"sold_count"`
}

type ListingStepResponse struct {
	Step     int  `json:"step"`
	NextStep int  `json:"next_step"`
	Complete bool `json:"complete"`
}

type ContactResponse struct {
	URL     string `json:"url"`
	Message string `json:"message"`
}

type RatingResponse struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}

func ProductToResponse(p *entity.Product) ProductResponse {
	images := p.Images
	if images == nil {
		images = []string{}
	}
	return ProductResponse{
		ID:          p.ID.String(),
		Title:       p.Title,
		Description: p.Description,
		Category:    p.Category,
		Gender:      p.Gender,
		Size:        p.Size,
		Price:       p.Price,
		Condition:   p.Condition,
		SellerID:    p.SellerID.String(),
		SellerPhone: p.SellerPhone,
		Images:      images,
		Sold:        p.Sold,
		CreatedAt:   p.CreatedAt,
	}
}

func ProductsToResponse(products []*entity.Product) []ProductResponse {
	out := make([]ProductResponse, len(products))
	for i, p := range products {
		out[i] = ProductToResponse(p)
	}
	return out
}

func RatingToResponse(r *entity.Rating) RatingResponse {
	return RatingResponse{
		ID:        r.ID.String(),
		ProductID: r.ProductID.String(),
		Rating:    r.Rating,
		CreatedAt: r.CreatedAt,
	}
}

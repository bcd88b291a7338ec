package adaptor

import (
	"ophelia-market/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	Product *ProductHandler
	Listing *ListingHandler
	Rating  *RatingHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		Product: NewProductHandler(service.Product, log),
		Listing: NewListingHandler(service.Listing, log),
		Rating:  NewRatingHandler(service.Rating, log),
	}
}

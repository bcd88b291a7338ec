package usecase

import (
	"ophelia-market/internal/data/repository"
	"ophelia-market/pkg/cache"
	"ophelia-market/pkg/storage"
	"ophelia-market/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	Product ProductService
	Listing ListingService
	Rating  RatingService
}

func NewService(
	repo *repository.Repository,
	sessions *cache.SessionStore,
	store storage.Storage,
	config *utils.Config,
	log *zap.Logger,
) *Service {
	return &Service{
		Auth:    NewAuthService(repo, sessions, config, log),
		Product: NewProductService(repo, config.Contact, log),
		Listing: NewListingService(repo, store, log),
		Rating:  NewRatingService(repo, log),
	}
}

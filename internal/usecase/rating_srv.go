package usecase

import (
	"context"
	"fmt"
	"time"

	"ophelia-market/internal/data/entity"
	"ophelia-market/internal/data/repository"
	"ophelia-market/internal/dto/request"
	"ophelia-market/internal/dto/response"
	"ophelia-market/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RatingService interface {
	AddRating(ctx context.Context, userID uuid.UUID, req *request.CreateRatingRequest) (*response.RatingResponse, error)
}

type ratingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewRatingService(repo *repository.Repository, log *zap.Logger) RatingService {
	return &ratingService{
		repo: repo,
		log:  log.With(zap.String("service", "rating")),
	}
}

// AddRating inserts a new row every time. Repeat ratings are allowed.
func (s *ratingService) AddRating(ctx context.Context, userID uuid.UUID, req *request.CreateRatingRequest) (*response.RatingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Rating validation failed", zap.Any("errors", errs))
		return nil, newValidationError(errs)
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return nil, newValidationError(map[string]string{"product_id": "Must be a valid UUID"})
	}

	product, err := s.repo.Product.FindByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("find product: %w", err)
	}
	if product == nil {
		return nil, fmt.Errorf("product %s: %w", req.ProductID, ErrNotFound)
	}

	rating := &entity.Rating{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:    userID,
		ProductID: productID,
		Rating:    req.Rating,
	}

	if err := s.repo.Rating.Create(ctx, rating); err != nil {
		return nil, fmt.Errorf("create rating: %w", err)
	}

	s.log.Info("Rating added",
		zap.String("rating_id", rating.ID.String()),
		zap.String("product_id", req.ProductID),
		zap.Int("rating", req.Rating),
	)

	resp := response.RatingToResponse(rating)
	return &resp, nil
}

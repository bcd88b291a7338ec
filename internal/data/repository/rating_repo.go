package repository

import (
	"context"
	"fmt"

	"ophelia-market/internal/data/entity"
	"ophelia-market/pkg/database"

	"go.uber.org/zap"
)

// RatingRepository only writes. Ratings are never read back.
type RatingRepository interface {
	Create(ctx context.Context, rating *entity.Rating) error
}

type ratingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRatingRepository(db database.PgxIface, log *zap.Logger) RatingRepository {
	return &ratingRepository{
		db:  db,
		log: log.With(zap.String("repository", "rating")),
	}
}

func (r *ratingRepository) Create(ctx context.Context, rating *entity.Rating) error {
	query := `
		INSERT INTO ratings (id, user_id, product_id, rating, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		rating.ID,
		rating.UserID,
		rating.ProductID,
		rating.Rating,
		rating.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create rating",
			zap.Error(err),
			zap.String("user_id", rating.UserID.String()),
			zap.String("product_id", rating.ProductID.String()),
		)
		return fmt.Errorf("create rating for product %s by user %s: %w",
			rating.ProductID.String(), rating.UserID.String(), err)
	}

	return nil
}

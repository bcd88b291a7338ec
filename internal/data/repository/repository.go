package repository

import (
	"ophelia-market/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User    UserRepository
	Session SessionRepository
	Product ProductRepository
	Rating  RatingRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:    NewUserRepository(db, log),
		Session: NewSessionRepository(db, log),
		Product: NewProductRepository(db, log),
		Rating:  NewRatingRepository(db, log),
	}
}

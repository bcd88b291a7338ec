package wire

import (
	"net/http"

	"ophelia-market/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireRating(r chi.Router, ratingHandler *adaptor.RatingHandler, requireAuth func(http.Handler) http.Handler) {
	r.With(requireAuth).Post("/api/ratings", ratingHandler.AddRating)
}

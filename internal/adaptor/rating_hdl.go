package adaptor

import (
	"net/http"

	"ophelia-market/internal/dto/request"
	"ophelia-market/internal/usecase"
	"ophelia-market/pkg/utils"

	"go.uber.org/zap"
)

type RatingHandler struct {
	service usecase.RatingService
	log     *zap.Logger
}

func NewRatingHandler(service usecase.RatingService, log *zap.Logger) *RatingHandler {
	return &RatingHandler{
		service: service,
		log:     log.With(zap.String("handler", "rating")),
	}
}

// AddRating handles POST /api/ratings
func (h *RatingHandler) AddRating(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateRatingRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	rating, err := h.service.AddRating(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "add rating")
		return
	}

	utils.ResponseCreated(w, "success", rating)
}

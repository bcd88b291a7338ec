package wire

import (
	"net/http"

	"ophelia-market/internal/adaptor"
	"ophelia-market/internal/data/entity"
	"ophelia-market/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireListing(
	r chi.Router,
	listingHandler *adaptor.ListingHandler,
	requireAuth func(http.Handler) http.Handler,
	log *zap.Logger,
) {
	// ==================== SELLER ROUTES ====================
	// AuthSession -> RequireRole(seller)
	r.Group(func(r chi.Router) {
		r.Use(requireAuth)
		r.Use(middleware.RequireRole(string(entity.RoleSeller), log))

		r.Post("/api/listings/validate", listingHandler.ValidateStep)
		r.Post("/api/listings", listingHandler.CreateListing)

		r.Get("/api/seller/products", listingHandler.SellerProducts)
		r.Patch("/api/seller/products/{id}/sold", listingHandler.MarkAsSold)
	})
}

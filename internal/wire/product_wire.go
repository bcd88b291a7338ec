package wire

import (
	"net/http"

	"ophelia-market/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireProduct mounts buyer browsing. Any signed-in role can browse.
func wireProduct(r chi.Router, productHandler *adaptor.ProductHandler, requireAuth func(http.Handler) http.Handler) {
	r.Route("/api/products", func(r chi.Router) {
		r.Use(requireAuth)

		r.Get("/", productHandler.ListProducts)               // GET /api/products?gender=&category=
		r.Get("/{id}", productHandler.GetProduct)             // GET /api/products/{id}
		r.Post("/{id}/contact", productHandler.ContactSeller) // POST /api/products/{id}/contact
	})
}

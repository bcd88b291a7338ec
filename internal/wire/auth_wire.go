package wire

import (
	"net/http"

	"ophelia-market/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler, requireAuth func(http.Handler) http.Handler) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/api/signup", authHandler.SignUp)
	r.Post("/api/signin", authHandler.SignIn)

	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(requireAuth)

		r.Post("/api/signout", authHandler.SignOut)
		r.Get("/api/me", authHandler.Me)
		// switch between buyer and seller without signing in again
		r.Put("/api/me/role", authHandler.SetRole)
	})
}

package middleware

import (
	"context"
	"net/http"
	"strings"

	"ophelia-market/pkg/cache"
	"ophelia-market/pkg/utils"

	"go.uber.org/zap"
)

// SessionResolver turns a bearer token into the identity persisted for it.
// It returns nil, nil for unknown, revoked or expired tokens.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (*cache.Identity, error)
}

// AuthSession validates the bearer session token and puts the user id, role
// and token on the request context.
func AuthSession(sessions SessionResolver, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			token, ok := strings.CutPrefix(authHeader, "Bearer ")
			token = strings.TrimSpace(token)
			if !ok || token == "" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			identity, err := sessions.Resolve(r.Context(), token)
			if err != nil {
				logger.Error("Failed to validate session", zap.Error(err))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if identity == nil {
				logger.Debug("Invalid or expired session", zap.String("path", r.URL.Path))
				utils.ResponseUnauthorized(w, "Invalid or expired session")
				return
			}

			ctx := utils.SetUserContext(r.Context(), identity.UserID, identity.Role)
			ctx = utils.SetTokenContext(ctx, token)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole lets the request through only when the session role matches.
// The role is whatever the client chose at sign-in.
func RequireRole(role string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			current, ok := utils.GetRoleFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			if current != role {
				userID, _ := utils.GetUserIDFromContext(r.Context())
				logger.Warn("Role check failed",
					zap.String("user_id", userID.String()),
					zap.String("role", current),
					zap.String("required", role),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "This action requires the "+role+" role")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

package response

import (
	"time"

	"ophelia-market/internal/data/entity"
	"ophelia-market/pkg/cache"
)

type AuthResponse struct {
	UserID    string          `json:"user_id"`
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expires_at"`
	Email     string          `json:"email"`
	Username  string          `json:"username"`
	Role      entity.UserRole `json:"role"`
}

// IdentityResponse is what GET /api/me rehydrates.
type IdentityResponse struct {
	ID       string          `json:"id"`
	Username string          `json:"username"`
	Email    string          `json:"email"`
	Role     entity.UserRole `json:"role"`
}

func AuthToResponse(user *entity.User, session *entity.Session) AuthResponse {
	resp := AuthResponse{
		UserID:   user.ID.String(),
		Email:    user.Email,
		Username: user.Username,
	}

	if session != nil {
		resp.Token = session.Token.String()
		resp.ExpiresAt = session.ExpiresAt
		resp.Role = session.Role
	}

	return resp
}

func IdentityToResponse(identity *cache.Identity) IdentityResponse {
	return IdentityResponse{
		ID:       identity.UserID.String(),
		Username: identity.Username,
		Email:    identity.Email,
		Role:     entity.UserRole(identity.Role),
	}
}

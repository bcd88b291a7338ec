package adaptor

import (
	"net/http"

	"ophelia-market/internal/dto/request"
	"ophelia-market/internal/usecase"
	"ophelia-market/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// SignUp handles POST /api/signup
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req request.SignUpRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	resp, err := h.service.SignUp(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "sign up")
		return
	}

	utils.ResponseCreated(w, "Account created", resp)
}

// SignIn handles POST /api/signin
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req request.SignInRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	resp, err := h.service.SignIn(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "sign in")
		return
	}

	utils.ResponseSuccess(w, "Signed in", resp)
}

// SignOut handles POST /api/signout
func (h *AuthHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	token, ok := utils.GetTokenFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	if err := h.service.SignOut(r.Context(), token); err != nil {
		handleServiceError(h.log, w, err, "sign out")
		return
	}

	utils.ResponseSuccess(w, "Signed out", nil)
}

// Me handles GET /api/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	token, ok := utils.GetTokenFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	me, err := h.service.Me(r.Context(), token)
	if err != nil {
		handleServiceError(h.log, w, err, "load identity")
		return
	}

	utils.ResponseSuccess(w, "success", me)
}

// SetRole handles PUT /api/me/role
func (h *AuthHandler) SetRole(w http.ResponseWriter, r *http.Request) {
	token, ok := utils.GetTokenFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.SetRoleRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	me, err := h.service.SetRole(r.Context(), token, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "set role")
		return
	}

	utils.ResponseSuccess(w, "Role updated", me)
}

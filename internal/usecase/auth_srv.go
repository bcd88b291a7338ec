package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"ophelia-market/internal/data/entity"
	"ophelia-market/internal/data/repository"
	"ophelia-market/internal/dto/request"
	"ophelia-market/internal/dto/response"
	"ophelia-market/pkg/cache"
	"ophelia-market/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	SignUp(ctx context.Context, req *request.SignUpRequest) (*response.AuthResponse, error)
	SignIn(ctx context.Context, req *request.SignInRequest) (*response.AuthResponse, error)
	SignOut(ctx context.Context, token string) error
	SetRole(ctx context.Context, token string, req *request.SetRoleRequest) (*response.IdentityResponse, error)
	Me(ctx context.Context, token string) (*response.IdentityResponse, error)

	// Resolve turns a bearer token into the identity behind it, or nil when
	// the token is unknown, revoked or expired.
	Resolve(ctx context.Context, token string) (*cache.Identity, error)
}

type authService struct {
	repo     *repository.Repository
	sessions *cache.SessionStore
	ttl      time.Duration
	log      *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	sessions *cache.SessionStore,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	ttl := config.Session.TTL
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &authService{
		repo:     repo,
		sessions: sessions,
		ttl:      ttl,
		log:      log.With(zap.String("service", "auth")),
	}
}

func (s *authService) SignUp(ctx context.Context, req *request.SignUpRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Sign up validation failed", zap.Any("errors", errs))
		return nil, newValidationError(errs)
	}

	email := normalizeEmail(req.Email)

	existing, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("email already registered: %w", ErrConflict)
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &entity.User{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Username:     strings.TrimSpace(req.Username),
		Email:        email,
		PasswordHash: hashed,
	}

	// a concurrent sign-up can still win the race past FindByEmail
	if err := s.repo.User.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("email already registered: %w", ErrConflict)
		}
		return nil, fmt.Errorf("create profile: %w", err)
	}

	// a fresh account always starts browsing as a buyer
	session, err := s.createSession(ctx, user, entity.RoleBuyer)
	if err != nil {
		return nil, err
	}

	s.log.Info("User signed up",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	resp := response.AuthToResponse(user, session)
	return &resp, nil
}

func (s *authService) SignIn(ctx context.Context, req *request.SignInRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Sign in validation failed", zap.Any("errors", errs))
		return nil, newValidationError(errs)
	}

	user, err := s.repo.User.FindByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		return nil, fmt.Errorf("find profile: %w", err)
	}
	if user == nil || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid credentials", zap.String("email", req.Email))
		return nil, fmt.Errorf("invalid credentials: %w", ErrUnauthorized)
	}

	session, err := s.createSession(ctx, user, entity.UserRole(req.Role))
	if err != nil {
		return nil, err
	}

	s.log.Info("User signed in",
		zap.String("user_id", user.ID.String()),
		zap.String("role", req.Role))

	resp := response.AuthToResponse(user, session)
	return &resp, nil
}

func (s *authService) SignOut(ctx context.Context, token string) error {
	if err := s.repo.Session.Revoke(ctx, token); err != nil {
		if errors.Is(err, repository.ErrNoRowsAffected) {
			return fmt.Errorf("session not active: %w", ErrUnauthorized)
		}
		return fmt.Errorf("revoke session: %w", err)
	}

	if err := s.sessions.Drop(ctx, token); err != nil {
		s.log.Warn("Failed to drop cached session", zap.Error(err))
	}

	s.log.Info("User signed out")
	return nil
}

func (s *authService) SetRole(ctx context.Context, token string, req *request.SetRoleRequest) (*response.IdentityResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, newValidationError(errs)
	}

	if err := s.repo.Session.UpdateRole(ctx, token, entity.UserRole(req.Role)); err != nil {
		if errors.Is(err, repository.ErrNoRowsAffected) {
			return nil, fmt.Errorf("session not active: %w", ErrUnauthorized)
		}
		return nil, fmt.Errorf("update role: %w", err)
	}

	// the cached identity still has the old role
	if err := s.sessions.Drop(ctx, token); err != nil {
		s.log.Warn("Failed to drop cached session", zap.Error(err))
	}

	return s.Me(ctx, token)
}

func (s *authService) Me(ctx context.Context, token string) (*response.IdentityResponse, error) {
	identity, err := s.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}
	if identity == nil {
		return nil, fmt.Errorf("session not active: %w", ErrUnauthorized)
	}

	resp := response.IdentityToResponse(identity)
	return &resp, nil
}

func (s *authService) Resolve(ctx context.Context, token string) (*cache.Identity, error) {
	if _, err := uuid.Parse(token); err != nil {
		return nil, nil
	}

	identity, err := s.sessions.Load(ctx, token)
	if err != nil {
		s.log.Warn("Session cache read failed, falling back to database", zap.Error(err))
	}
	if identity != nil {
		return identity, nil
	}

	session, err := s.repo.Session.FindValidSession(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("find session: %w", err)
	}
	if session == nil {
		return nil, nil
	}

	user, err := s.repo.User.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, fmt.Errorf("find profile: %w", err)
	}
	if user == nil {
		return nil, nil
	}

	identity = newIdentity(user, session)
	if err := s.sessions.Save(ctx, token, identity); err != nil {
		s.log.Warn("Failed to cache session", zap.Error(err))
	}

	return identity, nil
}

func (s *authService) createSession(ctx context.Context, user *entity.User, role entity.UserRole) (*entity.Session, error) {
	now := time.Now()
	session := &entity.Session{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		UserID:    user.ID,
		Token:     utils.GenerateSessionToken(),
		Role:      role,
		ExpiresAt: now.Add(s.ttl),
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	if err := s.sessions.Save(ctx, session.Token.String(), newIdentity(user, session)); err != nil {
		s.log.Warn("Failed to cache session", zap.Error(err))
	}

	return session, nil
}

func newIdentity(user *entity.User, session *entity.Session) *cache.Identity {
	return &cache.Identity{
		UserID:    user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      string(session.Role),
		ExpiresAt: session.ExpiresAt,
	}
}

// normalizeEmail is the stored form of an address: trimmed and lower-cased.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

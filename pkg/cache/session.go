package cache

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Identity is what a session rehydrates to: who the user is and which role
// they picked at sign-in.
type Identity struct {
	UserID    uuid.UUID `json:"user_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SessionStore keeps identities under "<namespace>:<token>" until the session
// expires.
type SessionStore struct {
	cache     *Cache
	namespace string
}

func NewSessionStore(cache *Cache, namespace string) *SessionStore {
	if namespace == "" {
		namespace = "ophelia-auth"
	}
	return &SessionStore{cache: cache, namespace: namespace}
}

func (s *SessionStore) Key(token string) string {
	return s.namespace + ":" + token
}

func (s *SessionStore) Save(ctx context.Context, token string, identity *Identity) error {
	ttl := time.Until(identity.ExpiresAt)
	if ttl <= 0 {
		return nil
	}
	return s.cache.SetJSON(ctx, s.Key(token), identity, ttl)
}

// Load returns nil when the token is not cached or already expired.
func (s *SessionStore) Load(ctx context.Context, token string) (*Identity, error) {
	var identity Identity
	found, err := s.cache.GetJSON(ctx, s.Key(token), &identity)
	if err != nil || !found {
		return nil, err
	}
	if !identity.ExpiresAt.After(time.Now()) {
		return nil, nil
	}
	return &identity, nil
}

func (s *SessionStore) Drop(ctx context.Context, token string) error {
	return s.cache.Delete(ctx, s.Key(token))
}

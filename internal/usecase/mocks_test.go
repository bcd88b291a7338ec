package usecase

import (
	"context"
	"io"

	"ophelia-market/internal/data/entity"
	"ophelia-market/internal/data/repository"
	"ophelia-market/pkg/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

type mockSessionRepo struct{ mock.Mock }

func (m *mockSessionRepo) Create(ctx context.Context, session *entity.Session) error {
	return m.Called(ctx, session).Error(0)
}

func (m *mockSessionRepo) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	args := m.Called(ctx, token)
	s, _ := args.Get(0).(*entity.Session)
	return s, args.Error(1)
}

func (m *mockSessionRepo) UpdateRole(ctx context.Context, token string, role entity.UserRole) error {
	return m.Called(ctx, token, role).Error(0)
}

func (m *mockSessionRepo) Revoke(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

type mockProductRepo struct{ mock.Mock }

func (m *mockProductRepo) Create(ctx context.Context, product *entity.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *mockProductRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*entity.Product)
	return p, args.Error(1)
}

func (m *mockProductRepo) FindAll(ctx context.Context) ([]*entity.Product, error) {
	args := m.Called(ctx)
	p, _ := args.Get(0).([]*entity.Product)
	return p, args.Error(1)
}

func (m *mockProductRepo) FindBySellerID(ctx context.Context, sellerID uuid.UUID) ([]*entity.Product, error) {
	args := m.Called(ctx, sellerID)
	p, _ := args.Get(0).([]*entity.Product)
	return p, args.Error(1)
}

func (m *mockProductRepo) MarkAsSold(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockRatingRepo struct{ mock.Mock }

func (m *mockRatingRepo) Create(ctx context.Context, rating *entity.Rating) error {
	return m.Called(ctx, rating).Error(0)
}

// memStorage records uploads in order and can fail on the nth one.
type memStorage struct {
	keys   []string
	bodies map[string][]byte
	failAt int
	err    error
}

func newMemStorage() *memStorage {
	return &memStorage{bodies: make(map[string][]byte), failAt: -1}
}

func (s *memStorage) Upload(_ context.Context, input *storage.UploadInput) error {
	if len(s.keys) == s.failAt {
		return s.err
	}
	b, err := io.ReadAll(input.Data)
	if err != nil {
		return err
	}
	s.keys = append(s.keys, input.Key)
	s.bodies[input.Key] = b
	return nil
}

func (s *memStorage) PublicURL(_ context.Context, key string) (string, error) {
	return "https://cdn.test/" + key, nil
}

type repoMocks struct {
	user    *mockUserRepo
	session *mockSessionRepo
	product *mockProductRepo
	rating  *mockRatingRepo
}

func newRepoMocks() (*repository.Repository, *repoMocks) {
	m := &repoMocks{
		user:    &mockUserRepo{},
		session: &mockSessionRepo{},
		product: &mockProductRepo{},
		rating:  &mockRatingRepo{},
	}
	return &repository.Repository{
		User:    m.user,
		Session: m.session,
		Product: m.product,
		Rating:  m.rating,
	}, m
}

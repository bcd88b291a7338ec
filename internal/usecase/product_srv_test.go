package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"ophelia-market/internal/data/entity"
	"ophelia-market/internal/dto/request"
	"ophelia-market/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newProduct(title string, g entity.Gender, c entity.Category, age time.Duration) *entity.Product {
	return &entity.Product{
		BaseSimple:  entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now().Add(-age)},
		Title:       title,
		Gender:      g,
		Category:    c,
		Price:       300,
		Condition:   entity.ConditionGood,
		SellerID:    uuid.New(),
		SellerPhone: "9876543210",
		Images:      []string{"https://cdn.test/uploads/x.jpg"},
	}
}

func catalogue() []*entity.Product {
	return []*entity.Product{
		newProduct("linen shirt", entity.GenderMen, entity.CategoryShirts, 1*time.Hour),
		newProduct("silk saree", entity.GenderWomen, entity.CategorySarees, 2*time.Hour),
		newProduct("oxford shirt", entity.GenderWomen, entity.CategoryShirts, 3*time.Hour),
		newProduct("chinos", entity.GenderMen, entity.CategoryPants, 4*time.Hour),
		newProduct("band tee", entity.GenderMen, entity.CategoryTShirts, 5*time.Hour),
	}
}

func titles(products []*entity.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Title
	}
	return out
}

func TestFilterProducts(t *testing.T) {
	all := catalogue()
	men := entity.GenderMen
	women := entity.GenderWomen
	shirts := entity.CategoryShirts
	tops := entity.CategoryTops

	tests := []struct {
		name     string
		gender   *entity.Gender
		category *entity.Category
		want     []string
	}{
		{"no filter keeps everything in order", nil, nil, []string{"linen shirt", "silk saree", "oxford shirt", "chinos", "band tee"}},
		{"gender only", &men, nil, []string{"linen shirt", "chinos", "band tee"}},
		{"category only", nil, &shirts, []string{"linen shirt", "oxford shirt"}},
		{"both", &women, &shirts, []string{"oxford shirt"}},
		{"no match", &women, &tops, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterProducts(all, tt.gender, tt.category)
			assert.Equal(t, tt.want, titles(got))
			for _, p := range got {
				if tt.gender != nil {
					assert.Equal(t, *tt.gender, p.Gender)
				}
				if tt.category != nil {
					assert.Equal(t, *tt.category, p.Category)
				}
			}
		})
	}
}

func TestFilterProducts_ExactMatchOnly(t *testing.T) {
	p := newProduct("tee", entity.GenderMen, entity.CategoryTShirts, 0)
	lower := entity.Category("t-shirts")

	assert.Empty(t, FilterProducts([]*entity.Product{p}, nil, &lower))
}

func TestProductService_ListProducts(t *testing.T) {
	repo, m := newRepoMocks()
	svc := NewProductService(repo, utils.ContactConfig{}, zap.NewNop())
	m.product.On("FindAll", mock.Anything).Return(catalogue(), nil)

	got, err := svc.ListProducts(context.Background(), &request.ProductFilter{Gender: "Men", Category: "Pants"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "chinos", got[0].Title)
}

func TestProductService_ListProducts_InvalidFilter(t *testing.T) {
	repo, m := newRepoMocks()
	svc := NewProductService(repo, utils.ContactConfig{}, zap.NewNop())

	_, err := svc.ListProducts(context.Background(), &request.ProductFilter{Gender: "Kids"})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "gender")
	m.product.AssertNotCalled(t, "FindAll", mock.Anything)
}

func TestProductService_GetProduct_NotFound(t *testing.T) {
	repo, m := newRepoMocks()
	svc := NewProductService(repo, utils.ContactConfig{}, zap.NewNop())
	id := uuid.New()
	m.product.On("FindByID", mock.Anything, id).Return(nil, nil)

	_, err := svc.GetProduct(context.Background(), id.String())
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.GetProduct(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestContactLink(t *testing.T) {
	contact := utils.ContactConfig{BaseURL: "https://wa.me/", Marketplace: "Ophelia", Currency: "₹"}
	msg := ContactMessage(contact, "Block print kurta", 450)

	assert.Equal(t, `Hi, I'm interested in your product "Block print kurta" listed on Ophelia for ₹450.`, msg)
	assert.Equal(t,
		"https://wa.me/9876543210?text=Hi%2C%20I'm%20interested%20in%20your%20product%20%22Block%20print%20kurta%22%20listed%20on%20Ophelia%20for%20%E2%82%B9450.",
		ContactLink(contact.BaseURL, "9876543210", msg),
	)
}

func TestContactLink_EscapesReservedCharacters(t *testing.T) {
	link := ContactLink("https://wa.me", "9876543210", "a+b & c=d (new)")
	assert.Equal(t, "https://wa.me/9876543210?text=a%2Bb%20%26%20c%3Dd%20(new)", link)
}

func TestProductService_ContactSeller(t *testing.T) {
	buyer := uuid.New()
	p := newProduct("denim jacket", entity.GenderWomen, entity.CategoryOther, 0)
	p.Price = 1200

	tests := []struct {
		name    string
		buyer   uuid.UUID
		phone   string
		sold    bool
		wantErr error
	}{
		{"valid", buyer, "9123456789", false, nil},
		{"phone starting with 5", buyer, "5123456789", false, ErrValidation},
		{"phone too short", buyer, "912345678", false, ErrValidation},
		{"owner contacting self", p.SellerID, "9123456789", false, ErrForbidden},
		{"already sold", buyer, "9123456789", true, ErrConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, m := newRepoMocks()
			svc := NewProductService(repo, utils.ContactConfig{}, zap.NewNop())
			cp := *p
			cp.Sold = tt.sold
			m.product.On("FindByID", mock.Anything, p.ID).Return(&cp, nil)

			resp, err := svc.ContactSeller(context.Background(), tt.buyer, p.ID.String(),
				&request.ContactRequest{BuyerPhone: tt.phone})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, resp)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "https://wa.me/9876543210?text=", resp.URL[:len("https://wa.me/9876543210?text=")])
			assert.Contains(t, resp.URL, "%E2%82%B91200.")
			assert.Contains(t, resp.Message, `"denim jacket"`)
		})
	}
}

func TestProductService_ContactSeller_RepoError(t *testing.T) {
	repo, m := newRepoMocks()
	svc := NewProductService(repo, utils.ContactConfig{}, zap.NewNop())
	id := uuid.New()
	m.product.On("FindByID", mock.Anything, id).Return(nil, errors.New("db down"))

	_, err := svc.ContactSeller(context.Background(), uuid.New(), id.String(),
		&request.ContactRequest{BuyerPhone: "9123456789"})

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"ophelia-market/internal/data/entity"
	"ophelia-market/internal/data/repository"
	"ophelia-market/internal/dto/request"
	"ophelia-market/internal/dto/response"
	"ophelia-market/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ProductService interface {
	ListProducts(ctx context.Context, filter *request.ProductFilter) ([]response.ProductResponse, error)
	GetProduct(ctx context.Context, productID string) (*response.ProductResponse, error)
	ContactSeller(ctx context.Context, buyerID uuid.UUID, productID string, req *request.ContactRequest) (*response.ContactResponse, error)
}

type productService struct {
	repo    *repository.Repository
	contact utils.ContactConfig
	log     *zap.Logger
}

func NewProductService(repo *repository.Repository, contact utils.ContactConfig, log *zap.Logger) ProductService {
	if contact.BaseURL == "" {
		contact.BaseURL = "https://wa.me"
	}
	if contact.Marketplace == "" {
		contact.Marketplace = "Ophelia"
	}
	if contact.Currency == "" {
		contact.Currency = "₹"
	}
	return &productService{
		repo:    repo,
		contact: contact,
		log:     log.With(zap.String("service", "product")),
	}
}

func (s *productService) ListProducts(ctx context.Context, filter *request.ProductFilter) ([]response.ProductResponse, error) {
	if filter == nil {
		filter = &request.ProductFilter{}
	}
	if errs := utils.ValidateStruct(filter); len(errs) > 0 {
		return nil, newValidationError(errs)
	}

	products, err := s.repo.Product.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	var gender *entity.Gender
	if filter.Gender != "" {
		g := entity.Gender(filter.Gender)
		gender = &g
	}
	var category *entity.Category
	if filter.Category != "" {
		c := entity.Category(filter.Category)
		category = &c
	}

	filtered := FilterProducts(products, gender, category)

	s.log.Debug("Products listed",
		zap.String("gender", filter.Gender),
		zap.String("category", filter.Category),
		zap.Int("total", len(products)),
		zap.Int("matched", len(filtered)),
	)

	return response.ProductsToResponse(filtered), nil
}

func (s *productService) GetProduct(ctx context.Context, productID string) (*response.ProductResponse, error) {
	product, err := s.findProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	resp := response.ProductToResponse(product)
	return &resp, nil
}

func (s *productService) ContactSeller(ctx context.Context, buyerID uuid.UUID, productID string, req *request.ContactRequest) (*response.ContactResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, newValidationError(errs)
	}

	product, err := s.findProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	if product.SellerID == buyerID {
		return nil, fmt.Errorf("cannot contact yourself about your own product: %w", ErrForbidden)
	}
	if product.Sold {
		return nil, fmt.Errorf("product %s already sold: %w", productID, ErrConflict)
	}

	message := ContactMessage(s.contact, product.Title, product.Price)
	link := ContactLink(s.contact.BaseURL, product.SellerPhone, message)

	s.log.Info("Contact link built",
		zap.String("product_id", productID),
		zap.String("buyer_id", buyerID.String()),
	)

	return &response.ContactResponse{URL: link, Message: message}, nil
}

func (s *productService) findProduct(ctx context.Context, productID string) (*entity.Product, error) {
	id, err := uuid.Parse(productID)
	if err != nil {
		return nil, newValidationError(map[string]string{"id": "Must be a valid UUID"})
	}

	product, err := s.repo.Product.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find product: %w", err)
	}
	if product == nil {
		return nil, fmt.Errorf("product %s: %w", productID, ErrNotFound)
	}
	return product, nil
}

// ContactMessage is the text pre-filled in the buyer's chat with the seller.
func ContactMessage(contact utils.ContactConfig, title string, price int) string {
	return fmt.Sprintf(`Hi, I'm interested in your product "%s" listed on %s for %s%d.`,
		title, contact.Marketplace, contact.Currency, price)
}

// encodeURIComponent escaping: QueryEscape plus %20 for spaces and the
// marks it escapes but URI components leave alone.
var uriComponent = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// ContactLink builds "<base>/<phone>?text=<message>".
func ContactLink(baseURL, phone, message string) string {
	return strings.TrimRight(baseURL, "/") + "/" + phone + "?text=" + uriComponent.Replace(url.QueryEscape(message))
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"ophelia-market/internal/data/entity"
	"ophelia-market/internal/data/repository"
	"ophelia-market/internal/dto/request"
	"ophelia-market/internal/dto/response"
	"ophelia-market/pkg/storage"
	"ophelia-market/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	ListingSteps     = 3
	MaxListingImages = 5
	uploadPrefix     = "uploads"
)

// ListingFile is one picked image with its bytes.
type ListingFile struct {
	Name        string
	ContentType string
	Size        int64
	Data        io.Reader
}

type ListingService interface {
	// ValidateStep checks draft.Step and reports the step the form moves to.
	ValidateStep(ctx context.Context, draft *request.ListingDraft) (*response.ListingStepResponse, error)
	CreateListing(ctx context.Context, sellerID uuid.UUID, draft *request.ListingDraft, files []ListingFile) (*response.ProductResponse, error)
	SellerProducts(ctx context.Context, sellerID uuid.UUID) (*response.SellerDashboardResponse, error)
	MarkAsSold(ctx context.Context, sellerID uuid.UUID, productID string) error
}

type listingService struct {
	repo  *repository.Repository
	store storage.Storage
	log   *zap.Logger
}

func NewListingService(repo *repository.Repository, store storage.Storage, log *zap.Logger) ListingService {
	return &listingService{
		repo:  repo,
		store: store,
		log:   log.With(zap.String("service", "listing")),
	}
}

// ValidateListingStep returns field -> message for one step of the draft,
// or nil when that step is complete.
func ValidateListingStep(step int, draft *request.ListingDraft) map[string]string {
	switch step {
	case 1:
		return utils.ValidateStruct(draft.ListingBasics)
	case 2:
		return utils.ValidateStruct(draft.ListingPricing)
	case 3:
		return validateImages(draft.Images)
	default:
		return map[string]string{"step": fmt.Sprintf("Must be between 1 and %d", ListingSteps)}
	}
}

// NextListingStep moves forward only when the current step validates.
// The last step stays put.
func NextListingStep(draft *request.ListingDraft) (int, map[string]string) {
	if errs := ValidateListingStep(draft.Step, draft); len(errs) > 0 {
		return draft.Step, errs
	}
	if draft.Step == ListingSteps {
		return ListingSteps, nil
	}
	return draft.Step + 1, nil
}

func validateImages(images []request.ListingImage) map[string]string {
	switch {
	case len(images) == 0:
		return map[string]string{"images": "Add at least one image"}
	case len(images) > MaxListingImages:
		return map[string]string{"images": fmt.Sprintf("You can upload at most %d images", MaxListingImages)}
	}
	for _, img := range images {
		if !strings.HasPrefix(strings.ToLower(img.ContentType), "image/") {
			return map[string]string{"images": fmt.Sprintf("%s is not an image", img.Name)}
		}
	}
	return nil
}

func (s *listingService) ValidateStep(_ context.Context, draft *request.ListingDraft) (*response.ListingStepResponse, error) {
	next, errs := NextListingStep(draft)
	if len(errs) > 0 {
		return nil, newValidationError(errs)
	}

	return &response.ListingStepResponse{
		Step:     draft.Step,
		NextStep: next,
		Complete: draft.Step == ListingSteps,
	}, nil
}

func (s *listingService) CreateListing(ctx context.Context, sellerID uuid.UUID, draft *request.ListingDraft, files []ListingFile) (*response.ProductResponse, error) {
	draft.Images = make([]request.ListingImage, len(files))
	for i, f := range files {
		draft.Images[i] = request.ListingImage{Name: f.Name, ContentType: f.ContentType, Size: f.Size}
	}

	errs := make(map[string]string)
	for step := 1; step <= ListingSteps; step++ {
		for field, msg := range ValidateListingStep(step, draft) {
			errs[field] = msg
		}
	}
	if len(errs) > 0 {
		s.log.Warn("Listing validation failed", zap.Any("errors", errs))
		return nil, newValidationError(errs)
	}

	price, _ := utils.ParsePositiveInt(draft.Price)

	// sequential, in the order the seller picked the files
	urls := make([]string, 0, len(files))
	for i, f := range files {
		key := utils.GenerateObjectKey(uploadPrefix, f.Name)

		err := s.store.Upload(ctx, &storage.UploadInput{
			Key:         key,
			ContentType: f.ContentType,
			Size:        f.Size,
			Data:        f.Data,
		})
		if err != nil {
			s.log.Error("Failed to upload listing image",
				zap.Error(err),
				zap.Int("index", i),
				zap.String("file", f.Name),
				zap.String("seller_id", sellerID.String()),
			)
			return nil, fmt.Errorf("upload %s: %w: %w", f.Name, ErrUpload, err)
		}

		publicURL, err := s.store.PublicURL(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("public url for %s: %w: %w", key, ErrUpload, err)
		}
		urls = append(urls, publicURL)
	}

	product := &entity.Product{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Title:       strings.TrimSpace(draft.Title),
		Description: strings.TrimSpace(draft.Description),
		Category:    entity.Category(draft.Category),
		Gender:      entity.Gender(draft.Gender),
		Size:        strings.TrimSpace(draft.Size),
		Price:       price,
		Condition:   entity.Condition(draft.Condition),
		SellerID:    sellerID,
		SellerPhone: draft.SellerPhone,
		Images:      urls,
		Sold:        false,
	}

	if err := s.repo.Product.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create listing: %w", err)
	}

	s.log.Info("Listing created",
		zap.String("product_id", product.ID.String()),
		zap.String("seller_id", sellerID.String()),
		zap.Int("images", len(urls)),
	)

	resp := response.ProductToResponse(product)
	return &resp, nil
}

func (s *listingService) SellerProducts(ctx context.Context, sellerID uuid.UUID) (*response.SellerDashboardResponse, error) {
	products, err := s.repo.Product.FindBySellerID(ctx, sellerID)
	if err != nil {
		return nil, fmt.Errorf("seller products: %w", err)
	}

	dashboard := &response.SellerDashboardResponse{
		Products: response.ProductsToResponse(products),
	}
	for _, p := range products {
		if p.Sold {
			dashboard.SoldCount++
		} else {
			dashboard.ActiveCount++
		}
	}

	return dashboard, nil
}

// MarkAsSold is idempotent. Marking a sold product again succeeds.
func (s *listingService) MarkAsSold(ctx context.Context, sellerID uuid.UUID, productID string) error {
	id, err := uuid.Parse(productID)
	if err != nil {
		return newValidationError(map[string]string{"id": "Must be a valid UUID"})
	}

	product, err := s.repo.Product.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find product: %w", err)
	}
	if product == nil {
		return fmt.Errorf("product %s: %w", productID, ErrNotFound)
	}
	if product.SellerID != sellerID {
		return fmt.Errorf("product %s belongs to another seller: %w", productID, ErrForbidden)
	}

	if err := s.repo.Product.MarkAsSold(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNoRowsAffected) {
			return fmt.Errorf("product %s: %w", productID, ErrNotFound)
		}
		return fmt.Errorf("mark as sold: %w", err)
	}

	s.log.Info("Product marked as sold",
		zap.String("product_id", productID),
		zap.Bool("was_sold", product.Sold),
	)
	return nil
}

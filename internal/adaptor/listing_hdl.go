package adaptor

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"

	"ophelia-market/internal/dto/request"
	"ophelia-market/internal/usecase"
	"ophelia-market/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const (
	maxImageBytes   = 10 << 20
	maxListingBytes = usecase.MaxListingImages*maxImageBytes + 1<<20
	multipartMemory = 8 << 20
)

type ListingHandler struct {
	service usecase.ListingService
	log     *zap.Logger
}

func NewListingHandler(service usecase.ListingService, log *zap.Logger) *ListingHandler {
	return &ListingHandler{
		service: service,
		log:     log.With(zap.String("handler", "listing")),
	}
}

// ValidateStep handles POST /api/listings/validate
func (h *ListingHandler) ValidateStep(w http.ResponseWriter, r *http.Request) {
	var draft request.ListingDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	step, err := h.service.ValidateStep(r.Context(), &draft)
	if err != nil {
		handleServiceError(h.log, w, err, "validate listing step")
		return
	}

	utils.ResponseSuccess(w, "success", step)
}

// CreateListing handles POST /api/listings as multipart/form-data. Text
// fields carry the draft, every "images" part is one picture in order.
func (h *ListingHandler) CreateListing(w http.ResponseWriter, r *http.Request) {
	sellerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxListingBytes)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			utils.ResponseBadRequest(w, "Upload too large", map[string]string{
				"images": "Images are too large",
			})
			return
		}
		utils.ResponseBadRequest(w, "Invalid multipart form", nil)
		return
	}
	defer func() {
		_ = r.MultipartForm.RemoveAll()
	}()

	draft := &request.ListingDraft{
		Step: usecase.ListingSteps,
		ListingBasics: request.ListingBasics{
			Title:       r.FormValue("title"),
			Description: r.FormValue("description"),
			Gender:      r.FormValue("gender"),
			Category:    r.FormValue("category"),
		},
		ListingPricing: request.ListingPricing{
			Size:        r.FormValue("size"),
			Price:       r.FormValue("price"),
			Condition:   r.FormValue("condition"),
			SellerPhone: r.FormValue("seller_phone"),
		},
	}

	headers := r.MultipartForm.File["images"]
	files := make([]usecase.ListingFile, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			h.log.Error("Failed to open uploaded image", zap.Error(err), zap.String("file", fh.Filename))
			utils.ResponseBadRequest(w, "Could not read uploaded image", nil)
			return
		}
		defer func(f multipart.File) { _ = f.Close() }(f)

		files = append(files, usecase.ListingFile{
			Name:        fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
			Data:        f,
		})
	}

	product, err := h.service.CreateListing(r.Context(), sellerID, draft, files)
	if err != nil {
		handleServiceError(h.log, w, err, "create listing")
		return
	}

	utils.ResponseCreated(w, "Listing created", product)
}

// SellerProducts handles GET /api/seller/products
func (h *ListingHandler) SellerProducts(w http.ResponseWriter, r *http.Request) {
	sellerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	dashboard, err := h.service.SellerProducts(r.Context(), sellerID)
	if err != nil {
		handleServiceError(h.log, w, err, "load seller products")
		return
	}

	utils.ResponseSuccess(w, "success", dashboard)
}

// MarkAsSold handles PATCH /api/seller/products/{id}/sold
func (h *ListingHandler) MarkAsSold(w http.ResponseWriter, r *http.Request) {
	sellerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	if err := h.service.MarkAsSold(r.Context(), sellerID, chi.URLParam(r, "id")); err != nil {
		handleServiceError(h.log, w, err, "mark as sold")
		return
	}

	utils.ResponseSuccess(w, "Product marked as sold", nil)
}

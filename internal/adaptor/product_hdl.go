package adaptor

import (
	"net/http"

	"ophelia-market/internal/dto/request"
	"ophelia-market/internal/usecase"
	"ophelia-market/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ProductHandler struct {
	service usecase.ProductService
	log     *zap.Logger
}

func NewProductHandler(service usecase.ProductService, log *zap.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		log:     log.With(zap.String("handler", "product")),
	}
}

// ListProducts handles GET /api/products?gender=&category=
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := &request.ProductFilter{
		Gender:   query.Get("gender"),
		Category: query.Get("category"),
	}

	products, err := h.service.ListProducts(r.Context(), filter)
	if err != nil {
		handleServiceError(h.log, w, err, "list products")
		return
	}

	utils.ResponseSuccess(w, "success", products)
}

// GetProduct handles GET /api/products/{id}
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.service.GetProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(h.log, w, err, "get product")
		return
	}

	utils.ResponseSuccess(w, "success", product)
}

// ContactSeller handles POST /api/products/{id}/contact
func (h *ProductHandler) ContactSeller(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.ContactRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	link, err := h.service.ContactSeller(r.Context(), userID, chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "contact seller")
		return
	}

	utils.ResponseSuccess(w, "success", link)
}

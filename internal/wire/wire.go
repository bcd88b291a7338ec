package wire

import (
	"net/http"

	"ophelia-market/internal/adaptor"
	"ophelia-market/internal/data/repository"
	"ophelia-market/internal/usecase"
	"ophelia-market/pkg/cache"
	"ophelia-market/pkg/middleware"
	"ophelia-market/pkg/storage"
	"ophelia-market/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// App holds the assembled HTTP surface.
type App struct {
	Router *chi.Mux
}

// Deps are the infrastructure pieces main builds before wiring.
type Deps struct {
	Repo     *repository.Repository
	Sessions *cache.SessionStore
	Storage  storage.Storage
	Registry *prometheus.Registry
}

// Wiring builds services and handlers and mounts every route.
func Wiring(deps Deps, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(deps.Repo, deps.Sessions, deps.Storage, config, logger)
	handler := adaptor.NewHandler(service, logger)

	if deps.Registry == nil {
		deps.Registry = prometheus.NewRegistry()
	}

	router := setupRouter(handler, service.Auth, deps, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	sessions middleware.SessionResolver,
	deps Deps,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	metrics := middleware.NewMetrics(deps.Registry)

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.App.AllowedOrigins...))
	r.Use(metrics.Handler)

	requireAuth := middleware.AuthSession(sessions, logger)

	wireAuth(r, handler.Auth, requireAuth)
	wireProduct(r, handler.Product, requireAuth)
	wireListing(r, handler.Listing, requireAuth, logger)
	wireRating(r, handler.Rating, requireAuth)

	// images are served by the app itself only with the local driver
	if local, ok := deps.Storage.(*storage.LocalStorage); ok {
		r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(local.Dir()))))
	}

	r.Handle("/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	return r
}

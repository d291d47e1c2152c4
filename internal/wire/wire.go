package wire

import (
	"net/http"
	"time"

	"laundry-booking/internal/adaptor"
	"laundry-booking/internal/data/repository"
	"laundry-booking/internal/usecase"
	"laundry-booking/pkg/middleware"
	"laundry-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// visitorTTL is how long an idle client keeps its rate-limit bucket.
const visitorTTL = 10 * time.Minute

// App holds the wired router and the pieces main has to drive.
type App struct {
	Router  *chi.Mux
	Limiter *middleware.RateLimiter
}

// Wiring builds services, handlers and the router.
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, logger)
	handler := adaptor.NewHandler(service, logger)

	limiter := middleware.NewRateLimiter(config.RateLimit.RPS, config.RateLimit.Burst, visitorTTL)
	router := setupRouter(handler, repo, limiter, config, logger)

	return &App{
		Router:  router,
		Limiter: limiter,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	limiter *middleware.RateLimiter,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recover(logger))
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.CORS(config.CORS.AllowedOrigins))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(limiter, logger))

		wireCatalog(r, handler.Catalog)
		wireBooking(r, handler.Booking, repo, logger)
	})

	return r
}

package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/ecocycle/internal/http/activity"
	"github.com/MrJamesThe3rd/ecocycle/internal/http/dashboard"
	"github.com/MrJamesThe3rd/ecocycle/internal/http/product"
	"github.com/MrJamesThe3rd/ecocycle/internal/http/render"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type Config struct {
	AllowedOrigins []string
	Timeout        time.Duration
	// UploadDir is served under UploadPrefix when set (local image storage).
	UploadDir    string
	UploadPrefix string
}

func New(
	cfg Config,
	requireAuth func(http.Handler) http.Handler,
	db Pinger,
	dashboardV1 *dashboard.Handler,
	activityV1 *activity.Handler,
	productsV1 *product.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	if cfg.Timeout > 0 {
		router.Use(middleware.Timeout(cfg.Timeout))
	}

	if len(cfg.AllowedOrigins) > 0 {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   cfg.AllowedOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
			ExposedHeaders:   []string{"X-Request-Id"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(r.Context()); err != nil {
			render.Error(w, http.StatusServiceUnavailable, "database unavailable")
			return
		}

		render.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	if cfg.UploadDir != "" && cfg.UploadPrefix != "" {
		prefix := "/" + strings.Trim(cfg.UploadPrefix, "/")
		router.Handle(prefix+"/*", http.StripPrefix(prefix, http.FileServer(http.Dir(cfg.UploadDir))))
	}

	router.Route("/api/v1", func(r chi.Router) {
		r.With(requireAuth).Route("/dashboard", dashboardV1.Routes)

		r.With(requireAuth).Route("/recent-activity", activityV1.Routes)

		r.Route("/products", func(r chi.Router) {
			productsV1.PublicRoutes(r)

			r.Group(func(r chi.Router) {
				r.Use(requireAuth)
				productsV1.Routes(r)
			})
		})
	})

	return router
}

package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"wasteless/internal/handlers"
	applog "wasteless/internal/log"
)

type routerConfig struct {
	AllowedOrigins     []string
	RateLimitPerMinute int
}

func newRouter(cfg routerConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	if len(cfg.AllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   cfg.AllowedOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders:   []string{"Accept", "Content-Type", "HX-Request"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
		applog.Debug(context.Background(), "cors enabled", "origins", cfg.AllowedOrigins)
	}

	r.Get("/healthz", handlers.Health)
	r.Handle("/metrics", promhttp.Handler())
	r.HandleFunc("/login", handlers.Login)
	r.HandleFunc("/logout", handlers.Logout)
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/app", http.StatusSeeOther)
	})

	r.Route("/api", func(r chi.Router) {
		if cfg.RateLimitPerMinute > 0 {
			r.Use(httprate.LimitByIP(cfg.RateLimitPerMinute, time.Minute))
		}
		r.Use(handlers.RequireAuthentication)
		r.Get("/recipes", handlers.RecipeSearch)
		r.Get("/fridges/{fridgeID}/recommendations", handlers.FridgeRecommendations)
		r.Get("/fridges/{fridgeID}/recommendations/urgent", handlers.UrgentRecommendations)
	})

	r.Route("/app", func(r chi.Router) {
		r.Use(handlers.RequireAuthentication)
		r.Get("/", handlers.Home)
		r.Get("/fridges/{fridgeID}/recommendations", handlers.RecommendationsPage)
	})

	applog.Debug(context.Background(), "http routes registered")
	return r
}

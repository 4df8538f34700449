package main

import (
	"net/http"

	"github.com/bp0001/backend/api/v1/database"
	"github.com/bp0001/backend/api/v1/handlers"
	"github.com/bp0001/backend/api/v1/middleware"
	"github.com/bp0001/backend/api/v1/service"
	"github.com/bp0001/backend/config"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"go.uber.org/zap"
)

func newRouter(cfg *config.Config, store database.Store, log *zap.SugaredLogger) http.Handler {
	userService := service.NewUserService(store, log)
	userHandler := handlers.NewUserHandler(userService, log)

	r := chi.NewRouter()
	r.Use(middleware.EscapedRoutePath)
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.HTTP.AllowedOrigins,
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	if cfg.HTTP.RateLimit > 0 {
		r.Use(httprate.LimitByIP(cfg.HTTP.RateLimit, cfg.HTTP.RateWindow))
	}

	r.Get("/", handlers.HomeHandler)
	r.Get("/health", handlers.HealthHandler(store))

	r.Route("/api", func(r chi.Router) {
		r.Get("/", handlers.ApiInfoHandler)

		r.Route("/public", func(r chi.Router) {
			r.Get("/hello", handlers.HelloHandler)
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/{username}", userHandler.GetUserByUsername)
		})
	})

	return r
}

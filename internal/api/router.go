package api

import (
	"net/http"
	"time"

	"stockroom/internal/api/handler"
	"stockroom/internal/api/middleware"
	"stockroom/internal/app/service"
	"stockroom/internal/common/security"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(
	authService *service.AuthService,
	itemService *service.ItemService,
) http.Handler {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))
	r.Use(middleware.Metrics)

	// Verifies the token in "Authorization: Bearer <token>" and puts the
	// result in context; the Authenticator on protected groups decides what
	// to do with it.
	r.Use(jwtauth.Verifier(security.TokenAuth))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(v1 chi.Router) {
		// Auth routes (public, never gated)
		authHandler := handler.NewAuthHandler(authService)
		v1.Route("/auth", authHandler.RegisterRoutes)

		// Item routes (authenticated)
		itemHandler := handler.NewItemHandler(itemService)
		v1.Route("/items", itemHandler.RegisterRoutes)
	})

	return r
}

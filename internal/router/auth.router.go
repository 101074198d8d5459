package router

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/redis/go-redis/v9"

	"portal-auth-service/internal/handler"
	"portal-auth-service/internal/middleware"
)

// SetupRoutes wires the auth endpoints. Cross-origin requests are allowed
// only from the configured portal origin, with credentials, so the session
// cookie flows.
func SetupRoutes(r chi.Router, h *handler.AuthHandler, rdb *redis.Client, clientOrigin string) chi.Router {
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{clientOrigin},
		AllowedMethods:   []string{"POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(middleware.RateLimiter(rdb, 100, time.Minute, 10*time.Minute, "global"))

	r.Route("/auth", func(r chi.Router) {
		// Credential endpoints get a tighter window against stuffing.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimiter(rdb, 5, 30*time.Second, 30*time.Second, "auth"))
			r.Post("/signup", h.HandleSignup)
			r.Post("/signin", h.HandleSignin)
		})

		r.Post("/logout", h.HandleLogout)
	})

	return r
}

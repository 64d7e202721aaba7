package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/schemehub/schemehub/internal/httpserver/deps"
	"github.com/schemehub/schemehub/internal/httpserver/handlers"
	"github.com/schemehub/schemehub/internal/httpserver/mw"
)

func init() { Register(registerAuth) }

func registerAuth(r chi.Router, d deps.Deps) {
	limit := mw.RateLimit(mw.RateLimitConfig{
		Burst:             d.RateLimitBurst,
		RefillPerIPPerMin: d.RateLimitPerMin,
		TrustProxy:        d.TrustProxy,
	})
	r.With(limit).Post("/api/auth/register", handlers.Register(d))
	r.With(limit).Post("/api/auth/login", handlers.Login(d))
}

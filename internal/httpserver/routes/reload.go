package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/schemehub/schemehub/internal/httpserver/deps"
	"github.com/schemehub/schemehub/internal/httpserver/handlers"
	"github.com/schemehub/schemehub/internal/httpserver/mw"
)

func init() { Register(registerReload) }

func registerReload(r chi.Router, d deps.Deps) {
	r.With(mw.RequireAuth(d.Tokens, d.Logger), mw.RequireAdmin()).Post("/api/reload", handlers.Reload(d))
}

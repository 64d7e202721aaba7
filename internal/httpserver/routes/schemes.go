package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/schemehub/schemehub/internal/httpserver/deps"
	"github.com/schemehub/schemehub/internal/httpserver/handlers"
)

func init() { Register(registerSchemes) }

func registerSchemes(r chi.Router, d deps.Deps) {
	r.Get("/api/schemes", handlers.ListSchemes(d))
	r.Get("/api/schemes/search", handlers.SearchSchemes(d))
	r.Get("/api/schemes/suggest", handlers.SuggestSchemes(d))
	r.Get("/api/schemes/category/{tag}", handlers.SchemesByCategory(d))
	r.Get("/api/schemes/recommend", handlers.RecommendSchemes(d))
}

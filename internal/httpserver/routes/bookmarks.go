package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/schemehub/schemehub/internal/httpserver/deps"
	"github.com/schemehub/schemehub/internal/httpserver/handlers"
	"github.com/schemehub/schemehub/internal/httpserver/mw"
)

func init() { Register(registerBookmarks) }

func registerBookmarks(r chi.Router, d deps.Deps) {
	auth := mw.RequireAuth(d.Tokens, d.Logger)
	r.With(auth).Get("/api/bookmarks", handlers.ListBookmarks(d))
	r.With(auth).Post("/api/bookmarks", handlers.AddBookmark(d))
	r.With(auth).Delete("/api/bookmarks/{schemeId}", handlers.RemoveBookmark(d))
	r.With(auth).Post("/api/bookmarks/{schemeId}/toggle", handlers.ToggleBookmark(d))
}

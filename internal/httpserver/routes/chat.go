package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/schemehub/schemehub/internal/httpserver/deps"
	"github.com/schemehub/schemehub/internal/httpserver/handlers"
)

func init() { Register(registerChat) }

func registerChat(r chi.Router, d deps.Deps) {
	// The frontend widget posts its messages to /get.
	r.Post("/get", handlers.Chat(d))
}

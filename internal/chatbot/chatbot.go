package chatbot

import (
	"context"
	"fmt"
	"strings"

	"github.com/schemehub/schemehub/internal/apperr"
	"github.com/schemehub/schemehub/internal/catalog"
	"github.com/schemehub/schemehub/internal/domain"
	"github.com/schemehub/schemehub/internal/logger"
)

// NoMatchReply is returned when no scheme matches the question.
const NoMatchReply = "No matching schemes found."

// Answerer rewrites a matched-context string into a conversational reply.
// Implemented by ai.Gemini; nil disables rewriting entirely.
type Answerer interface {
	Answer(ctx context.Context, question, schemeContext string) (string, error)
}

// Responder answers free-text questions from the scheme catalog.
//
// It runs the chat-variant substring search (title + benefits) over the
// current snapshot and formats the matches as a delimited list with links.
// When a model is configured, the list is handed to it for a friendlier
// answer; if the model fails for any reason the raw list is returned
// unchanged. Degraded, not broken.
type Responder struct {
	catalog *catalog.Catalog
	model   Answerer
	logger  logger.Logger
}

// NewResponder creates a chatbot responder. model may be nil.
func NewResponder(cat *catalog.Catalog, model Answerer, log logger.Logger) *Responder {
	return &Responder{
		catalog: cat,
		model:   model,
		logger:  log,
	}
}

// Respond answers msg in the given language. It fails Unavailable until the
// catalog has loaded, and Validation on an empty message.
func (r *Responder) Respond(ctx context.Context, msg, lang string) (string, error) {
	msg = strings.TrimSpace(msg)
	if msg == "" {
		return "", apperr.E(apperr.KindValidation, "Please enter a query.")
	}
	if !r.catalog.Loaded() {
		return "", apperr.E(apperr.KindUnavailable, "Scheme catalog is still loading, please retry.")
	}
	if lang == "" {
		lang = domain.FallbackLang
	}

	matches := domain.Search(r.catalog.Snapshot(), msg, lang, domain.ChatFields)
	schemeContext := FormatContext(matches, lang)

	if r.model == nil {
		return schemeContext, nil
	}

	answer, err := r.model.Answer(ctx, msg, schemeContext)
	if err != nil {
		r.logger.Warn("model answer failed, falling back to raw context",
			logger.Error(err))
		return schemeContext, nil
	}
	return answer, nil
}

// FormatContext renders matched schemes as a delimited list with links, or
// NoMatchReply when there are none.
func FormatContext(matches []*domain.Scheme, lang string) string {
	if len(matches) == 0 {
		return NoMatchReply
	}

	lines := make([]string, 0, len(matches))
	for _, s := range matches {
		lines = append(lines, fmt.Sprintf("- %s: %s (More: %s)",
			s.Title.Get(lang), s.Benefits.Get(lang), s.Link))
	}
	return strings.Join(lines, "\n")
}

package chatbot

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/schemehub/schemehub/internal/apperr"
	"github.com/schemehub/schemehub/internal/catalog"
	"github.com/schemehub/schemehub/internal/domain"
	"github.com/schemehub/schemehub/internal/logger"
)

type fakeModel struct {
	answer string
	err    error
	asked  string
}

func (f *fakeModel) Answer(_ context.Context, question, schemeContext string) (string, error) {
	f.asked = schemeContext
	if f.err != nil {
		return "", f.err
	}
	return f.answer, nil
}

func loadedCatalog() *catalog.Catalog {
	cat := catalog.New()
	cat.Replace([]*domain.Scheme{
		{
			ID:       "1",
			Title:    domain.LocalText{"en": "Farmer Aid"},
			Benefits: domain.LocalText{"en": "Cash support for farmers"},
			Link:     "https://example.gov/farmer-aid",
		},
		{
			ID:       "2",
			Title:    domain.LocalText{"en": "Housing Grant"},
			Benefits: domain.LocalText{"en": "Construction subsidy"},
			Link:     "https://example.gov/housing",
		},
	})
	return cat
}

func TestRespondWithoutModel(t *testing.T) {
	r := NewResponder(loadedCatalog(), nil, logger.New("error", false))

	got, err := r.Respond(context.Background(), "farmer", "en")
	if err != nil {
		t.Fatalf("Respond: %v", err)
	}
	want := "- Farmer Aid: Cash support for farmers (More: https://example.gov/farmer-aid)"
	if got != want {
		t.Errorf("Respond = %q, want %q", got, want)
	}
}

func TestRespondMatchesBenefits(t *testing.T) {
	r := NewResponder(loadedCatalog(), nil, logger.New("error", false))

	got, err := r.Respond(context.Background(), "subsidy", "en")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "Housing Grant") {
		t.Errorf("benefits-variant search missed: %q", got)
	}
}

func TestRespondNoMatch(t *testing.T) {
	r := NewResponder(loadedCatalog(), nil, logger.New("error", false))

	got, err := r.Respond(context.Background(), "spacecraft", "en")
	if err != nil {
		t.Fatal(err)
	}
	if got != NoMatchReply {
		t.Errorf("Respond = %q, want %q", got, NoMatchReply)
	}
}

func TestRespondEmptyMessage(t *testing.T) {
	r := NewResponder(loadedCatalog(), nil, logger.New("error", false))
	if _, err := r.Respond(context.Background(), "   ", "en"); !apperr.IsKind(err, apperr.KindValidation) {
		t.Errorf("empty message error = %v, want validation", err)
	}
}

func TestRespondBeforeCatalogLoad(t *testing.T) {
	r := NewResponder(catalog.New(), nil, logger.New("error", false))
	if _, err := r.Respond(context.Background(), "farmer", "en"); !apperr.IsKind(err, apperr.KindUnavailable) {
		t.Errorf("unloaded catalog error = %v, want unavailable (retryable)", err)
	}
}

func TestRespondUsesModelAnswer(t *testing.T) {
	model := &fakeModel{answer: "Farmer Aid gives cash support. See the link!"}
	r := NewResponder(loadedCatalog(), model, logger.New("error", false))

	got, err := r.Respond(context.Background(), "farmer", "en")
	if err != nil {
		t.Fatal(err)
	}
	if got != model.answer {
		t.Errorf("Respond = %q, want model answer", got)
	}
	if !strings.Contains(model.asked, "Farmer Aid") {
		t.Errorf("model was not given the matched context: %q", model.asked)
	}
}

func TestRespondDegradesOnModelFailure(t *testing.T) {
	model := &fakeModel{err: errors.New("quota exceeded")}
	r := NewResponder(loadedCatalog(), model, logger.New("error", false))

	got, err := r.Respond(context.Background(), "farmer", "en")
	if err != nil {
		t.Fatalf("model failure must not surface as an error: %v", err)
	}
	if !strings.Contains(got, "Farmer Aid: Cash support for farmers") {
		t.Errorf("fallback did not return raw context: %q", got)
	}
}

func TestFormatContextMultiple(t *testing.T) {
	cat := loadedCatalog()
	got := FormatContext(cat.Snapshot(), "en")
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), got)
	}
	if !strings.HasPrefix(lines[0], "- Farmer Aid:") || !strings.HasPrefix(lines[1], "- Housing Grant:") {
		t.Errorf("catalog order lost: %q", got)
	}
}

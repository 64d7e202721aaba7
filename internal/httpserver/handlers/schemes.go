package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/schemehub/schemehub/internal/apperr"
	"github.com/schemehub/schemehub/internal/domain"
	"github.com/schemehub/schemehub/internal/httpserver/deps"
	"github.com/schemehub/schemehub/internal/logger"
)

// catalogSnapshot gates every scheme endpoint on the catalog having loaded
// at least once. Before that, clients get a retryable 503 rather than an
// empty result they might cache.
func catalogSnapshot(d deps.Deps, w http.ResponseWriter) ([]*domain.Scheme, bool) {
	if !d.Catalog.Loaded() {
		writeError(w, d.Logger, apperr.E(apperr.KindUnavailable, "Scheme catalog is still loading, please retry."))
		return nil, false
	}
	return d.Catalog.Snapshot(), true
}

// schemeList keeps empty results serializing as [] instead of null.
func schemeList(matches []*domain.Scheme) []*domain.Scheme {
	if matches == nil {
		return []*domain.Scheme{}
	}
	return matches
}

func langParam(d deps.Deps, r *http.Request) string {
	lang := strings.TrimSpace(r.URL.Query().Get("lang"))
	if lang == "" {
		return d.DefaultLang
	}
	return lang
}

// ListSchemes returns the full catalog in load order.
func ListSchemes(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		schemes, ok := catalogSnapshot(d, w)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, schemeList(schemes))
	}
}

// SearchSchemes matches the query against titles and departments in the
// requested language. An empty query returns the whole catalog.
func SearchSchemes(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		schemes, ok := catalogSnapshot(d, w)
		if !ok {
			return
		}
		q := r.URL.Query().Get("q")
		lang := langParam(d, r)

		matches := domain.Search(schemes, q, lang, domain.PortalFields)
		d.Logger.Debug("scheme search",
			logger.String("q", q),
			logger.String("lang", lang),
			logger.Int("matches", len(matches)))
		writeJSON(w, http.StatusOK, schemeList(matches))
	}
}

// SuggestSchemes returns up to a handful of title-only matches for
// autocomplete.
func SuggestSchemes(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		schemes, ok := catalogSnapshot(d, w)
		if !ok {
			return
		}
		q := r.URL.Query().Get("q")
		lang := langParam(d, r)
		writeJSON(w, http.StatusOK, schemeList(domain.Suggest(schemes, q, lang)))
	}
}

// SchemesByCategory filters by exact category tag; "all" returns everything.
func SchemesByCategory(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		schemes, ok := catalogSnapshot(d, w)
		if !ok {
			return
		}
		tag := chi.URLParam(r, "tag")
		writeJSON(w, http.StatusOK, schemeList(domain.FilterByCategory(schemes, tag)))
	}
}

// RecommendSchemes returns the schemes an applicant profile is eligible
// for. Missing or malformed numeric params coerce to zero rather than
// erroring, matching the portal's lenient form handling.
func RecommendSchemes(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		schemes, ok := catalogSnapshot(d, w)
		if !ok {
			return
		}
		q := r.URL.Query()
		profile := domain.ParseProfile(q.Get("age"), q.Get("income"), q.Get("category"))

		matches := domain.Recommend(schemes, profile)
		d.Logger.Debug("scheme recommendation",
			logger.Int("age", profile.Age),
			logger.Int("income", profile.Income),
			logger.String("category", profile.Category),
			logger.Int("matches", len(matches)))
		writeJSON(w, http.StatusOK, schemeList(matches))
	}
}

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/schemehub/schemehub/internal/catalog"
	"github.com/schemehub/schemehub/internal/domain"
	"github.com/schemehub/schemehub/internal/httpserver/deps"
	"github.com/schemehub/schemehub/internal/logger"
)

func intp(v int) *int { return &v }

func testDeps(t *testing.T, schemes []*domain.Scheme) deps.Deps {
	t.Helper()
	cat := catalog.New()
	if schemes != nil {
		cat.Replace(schemes)
	}
	return deps.Deps{
		Logger:      logger.New("error", false),
		Catalog:     cat,
		DefaultLang: "en",
	}
}

func portalSchemes() []*domain.Scheme {
	return []*domain.Scheme{
		{
			ID:         "1",
			Title:      domain.LocalText{"en": "Farmer Aid Scheme", "hi": "किसान सहायता योजना"},
			Department: domain.LocalText{"en": "Agriculture Department"},
			Benefits:   domain.LocalText{"en": "Income support"},
			Category:   domain.CategorySet{"agriculture"},
			MinAge:     intp(18),
			MaxIncome:  intp(200000),
		},
		{
			ID:         "2",
			Title:      domain.LocalText{"en": "Student Scholarship"},
			Department: domain.LocalText{"en": "Education Department"},
			Benefits:   domain.LocalText{"en": "Fee waiver"},
			Category:   domain.CategorySet{"education"},
			MinAge:     intp(16),
			MaxAge:     intp(25),
		},
	}
}

func decodeSchemes(t *testing.T, rec *httptest.ResponseRecorder) []domain.Scheme {
	t.Helper()
	var out []domain.Scheme
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return out
}

func TestSchemesUnavailableBeforeFirstLoad(t *testing.T) {
	d := testDeps(t, nil)

	endpoints := []http.HandlerFunc{
		ListSchemes(d),
		SearchSchemes(d),
		SuggestSchemes(d),
		RecommendSchemes(d),
	}
	for _, h := range endpoints {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		if rec.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503 before first load, got %d", rec.Code)
		}
	}
}

func TestListSchemesReturnsCatalogOrder(t *testing.T) {
	d := testDeps(t, portalSchemes())

	rec := httptest.NewRecorder()
	ListSchemes(d).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/schemes", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	out := decodeSchemes(t, rec)
	if len(out) != 2 || out[0].ID != "1" || out[1].ID != "2" {
		t.Fatalf("unexpected list: %+v", out)
	}
}

func TestSearchSchemes(t *testing.T) {
	d := testDeps(t, portalSchemes())

	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{"title match", "/x?q=farmer", []string{"1"}},
		{"department match", "/x?q=education", []string{"2"}},
		{"hindi match", "/x?q=किसान&lang=hi", []string{"1"}},
		{"benefits text excluded", "/x?q=fee+waiver", []string{}},
		{"empty query returns everything", "/x?q=", []string{"1", "2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			SearchSchemes(d).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.query, nil))
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d", rec.Code)
			}
			out := decodeSchemes(t, rec)
			if len(out) != len(tt.wantIDs) {
				t.Fatalf("got %d matches, want %d", len(out), len(tt.wantIDs))
			}
			for i, want := range tt.wantIDs {
				if string(out[i].ID) != want {
					t.Fatalf("match %d = %s, want %s", i, out[i].ID, want)
				}
			}
		})
	}
}

func TestSearchSchemesEmptyResultIsArray(t *testing.T) {
	d := testDeps(t, portalSchemes())

	rec := httptest.NewRecorder()
	SearchSchemes(d).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x?q=nomatch", nil))

	if body := rec.Body.String(); body == "null\n" {
		t.Fatal("empty search must serialize as [], not null")
	}
}

func TestSchemesByCategory(t *testing.T) {
	d := testDeps(t, portalSchemes())

	call := func(tag string) *httptest.ResponseRecorder {
		r := chi.NewRouter()
		r.Get("/api/schemes/category/{tag}", SchemesByCategory(d))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/schemes/category/"+tag, nil))
		return rec
	}

	out := decodeSchemes(t, call("agriculture"))
	if len(out) != 1 || out[0].ID != "1" {
		t.Fatalf("agriculture filter: %+v", out)
	}

	out = decodeSchemes(t, call("all"))
	if len(out) != 2 {
		t.Fatalf("all filter should return full catalog, got %d", len(out))
	}

	// Tags are case-sensitive identifiers.
	out = decodeSchemes(t, call("Agriculture"))
	if len(out) != 0 {
		t.Fatalf("capitalized tag must not match, got %+v", out)
	}
}

func TestRecommendSchemesLenientInput(t *testing.T) {
	d := testDeps(t, portalSchemes())

	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{"eligible adult", "/x?age=20&income=100000", []string{"1", "2"}},
		{"too old for scholarship", "/x?age=40&income=100000", []string{"1"}},
		{"category restriction", "/x?age=20&income=0&category=education", []string{"2"}},
		{"garbage age coerces to zero", "/x?age=abc&income=0", []string{}},
		{"missing params coerce to zero", "/x", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			RecommendSchemes(d).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.query, nil))
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d", rec.Code)
			}
			out := decodeSchemes(t, rec)
			if len(out) != len(tt.wantIDs) {
				t.Fatalf("got %d matches, want %d (%+v)", len(out), len(tt.wantIDs), out)
			}
			for i, want := range tt.wantIDs {
				if string(out[i].ID) != want {
					t.Fatalf("match %d = %s, want %s", i, out[i].ID, want)
				}
			}
		})
	}
}

func TestSuggestSchemesTitleOnly(t *testing.T) {
	d := testDeps(t, portalSchemes())

	rec := httptest.NewRecorder()
	SuggestSchemes(d).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x?q=department", nil))
	if out := decodeSchemes(t, rec); len(out) != 0 {
		t.Fatalf("suggest must match titles only, got %+v", out)
	}

	rec = httptest.NewRecorder()
	SuggestSchemes(d).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x?q=s", nil))
	if out := decodeSchemes(t, rec); len(out) != 2 {
		t.Fatalf("expected both titles to match, got %+v", out)
	}
}

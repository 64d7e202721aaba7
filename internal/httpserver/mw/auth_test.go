package mw

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/schemehub/schemehub/internal/auth"
	"github.com/schemehub/schemehub/internal/domain"
	"github.com/schemehub/schemehub/internal/logger"
)

func testIssuer(t *testing.T) *auth.TokenIssuer {
	t.Helper()
	tokens, err := auth.NewTokenIssuer("test-secret", "schemehub", time.Hour)
	if err != nil {
		t.Fatalf("token issuer: %v", err)
	}
	return tokens
}

func TestRequireAuth(t *testing.T) {
	tokens := testIssuer(t)
	log := logger.New("error", false)

	handlerRan := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerRan = true
		claims, ok := ClaimsFrom(r.Context())
		if !ok {
			t.Fatal("claims missing from context")
		}
		if claims.UserID != "u1" {
			t.Fatalf("claims user = %q", claims.UserID)
		}
	})
	protected := RequireAuth(tokens, log)(next)

	token, err := tokens.Issue(&domain.User{ID: "u1", Role: domain.RoleUser})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantRan    bool
	}{
		{"valid token", "Bearer " + token, http.StatusOK, true},
		{"missing header", "", http.StatusUnauthorized, false},
		{"not bearer", "Basic abc", http.StatusUnauthorized, false},
		{"garbage token", "Bearer not.a.token", http.StatusUnauthorized, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handlerRan = false
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			protected.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if handlerRan != tt.wantRan {
				t.Fatalf("handler ran = %v, want %v", handlerRan, tt.wantRan)
			}
		})
	}
}

func TestRequireAuthRejectsWrongSecret(t *testing.T) {
	tokens := testIssuer(t)
	other, err := auth.NewTokenIssuer("other-secret", "schemehub", time.Hour)
	if err != nil {
		t.Fatalf("token issuer: %v", err)
	}
	log := logger.New("error", false)

	token, err := other.Issue(&domain.User{ID: "u1", Role: domain.RoleUser})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	protected := RequireAuth(tokens, log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	protected.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestRequireAdmin(t *testing.T) {
	adminOnly := RequireAdmin()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	call := func(role string) int {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		if role != "" {
			req = req.WithContext(WithClaims(req.Context(), &auth.Claims{UserID: "u1", Role: role}))
		}
		adminOnly.ServeHTTP(rec, req)
		return rec.Code
	}

	if code := call(domain.RoleAdmin); code != http.StatusNoContent {
		t.Fatalf("admin status = %d", code)
	}
	if code := call(domain.RoleUser); code != http.StatusForbidden {
		t.Fatalf("user status = %d", code)
	}
	if code := call(""); code != http.StatusForbidden {
		t.Fatalf("anonymous status = %d", code)
	}
}

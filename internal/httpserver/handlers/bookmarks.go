package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/schemehub/schemehub/internal/apperr"
	"github.com/schemehub/schemehub/internal/domain"
	"github.com/schemehub/schemehub/internal/httpserver/deps"
	"github.com/schemehub/schemehub/internal/httpserver/mw"
	"github.com/schemehub/schemehub/internal/logger"
)

// userIDFrom pulls the authenticated user out of the request context. The
// auth middleware guarantees it is present on these routes.
func userIDFrom(r *http.Request) (string, bool) {
	claims, ok := mw.ClaimsFrom(r.Context())
	if !ok || claims.UserID == "" {
		return "", false
	}
	return claims.UserID, true
}

// ListBookmarks returns the caller's bookmarks, newest first.
func ListBookmarks(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDFrom(r)
		if !ok {
			writeError(w, d.Logger, apperr.E(apperr.KindUnauthorized, "Invalid or expired token"))
			return
		}

		list, err := d.Bookmarks.List(r.Context(), userID)
		if err != nil {
			writeError(w, d.Logger, err)
			return
		}
		if list == nil {
			list = []*domain.Bookmark{}
		}
		writeJSON(w, http.StatusOK, list)
	}
}

type addBookmarkRequest struct {
	SchemeID string `json:"schemeId"`
}

// AddBookmark records a bookmark for the caller. A duplicate pair is 409.
func AddBookmark(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDFrom(r)
		if !ok {
			writeError(w, d.Logger, apperr.E(apperr.KindUnauthorized, "Invalid or expired token"))
			return
		}

		var req addBookmarkRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, d.Logger, apperr.E(apperr.KindValidation, "Invalid request body"))
			return
		}

		bm, err := d.Bookmarks.Add(r.Context(), userID, req.SchemeID)
		if err != nil {
			writeError(w, d.Logger, err)
			return
		}

		d.Logger.Info("bookmark added",
			logger.String("scheme_id", bm.SchemeID))
		writeJSON(w, http.StatusCreated, bm)
	}
}

// RemoveBookmark deletes a bookmark. A missing pair is 404.
func RemoveBookmark(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDFrom(r)
		if !ok {
			writeError(w, d.Logger, apperr.E(apperr.KindUnauthorized, "Invalid or expired token"))
			return
		}

		schemeID := chi.URLParam(r, "schemeId")
		if err := d.Bookmarks.Remove(r.Context(), userID, schemeID); err != nil {
			writeError(w, d.Logger, err)
			return
		}

		d.Logger.Info("bookmark removed",
			logger.String("scheme_id", schemeID))
		writeJSON(w, http.StatusOK, messageResponse{Message: "Bookmark removed."})
	}
}

type toggleBookmarkResponse struct {
	Bookmarked bool `json:"bookmarked"`
}

// ToggleBookmark flips the bookmark for a scheme and reports the resulting
// state. Concurrent toggles for the same pair are rejected, not queued.
func ToggleBookmark(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDFrom(r)
		if !ok {
			writeError(w, d.Logger, apperr.E(apperr.KindUnauthorized, "Invalid or expired token"))
			return
		}

		schemeID := chi.URLParam(r, "schemeId")
		bookmarked, err := d.Bookmarks.Toggle(r.Context(), userID, schemeID)
		if err != nil {
			writeError(w, d.Logger, err)
			return
		}

		writeJSON(w, http.StatusOK, toggleBookmarkResponse{Bookmarked: bookmarked})
	}
}

package bookmarks

import (
	"context"
	"strings"
	"sync"

	"github.com/schemehub/schemehub/internal/apperr"
	"github.com/schemehub/schemehub/internal/domain"
	"github.com/schemehub/schemehub/internal/store"
)

// Service wraps the bookmark store with input validation and the toggle
// operation.
//
// Toggle is serialized per (user, scheme): while one toggle for a pair is in
// flight, further toggles for the same pair are rejected instead of queued.
// That suppression is a latency optimization only; the store's uniqueness
// constraint remains the correctness guarantee against double creates.
type Service struct {
	store store.BookmarkStore

	mu       sync.Mutex
	inFlight map[string]struct{} // "userID/schemeID" pairs being toggled
}

// NewService creates a bookmark service over the given store.
func NewService(bs store.BookmarkStore) *Service {
	return &Service{
		store:    bs,
		inFlight: make(map[string]struct{}),
	}
}

// List returns the user's bookmarks, newest first.
func (s *Service) List(ctx context.Context, userID string) ([]*domain.Bookmark, error) {
	return s.store.ListBookmarks(ctx, userID)
}

// Add creates a bookmark. Fails with Validation when the scheme id is
// missing, Conflict when the pair already exists.
func (s *Service) Add(ctx context.Context, userID, schemeID string) (*domain.Bookmark, error) {
	schemeID = strings.TrimSpace(schemeID)
	if schemeID == "" {
		return nil, apperr.E(apperr.KindValidation, "Scheme ID is required.")
	}
	return s.store.CreateBookmark(ctx, userID, schemeID)
}

// Remove deletes a bookmark. Fails with NotFound when the pair does not
// exist.
func (s *Service) Remove(ctx context.Context, userID, schemeID string) error {
	schemeID = strings.TrimSpace(schemeID)
	if schemeID == "" {
		return apperr.E(apperr.KindValidation, "Scheme ID is required.")
	}
	return s.store.DeleteBookmark(ctx, userID, schemeID)
}

// Toggle creates the bookmark if absent and removes it if present, returning
// whether the scheme ends up bookmarked. A toggle already in flight for the
// same (user, scheme) pair is rejected with a Conflict error.
func (s *Service) Toggle(ctx context.Context, userID, schemeID string) (bookmarked bool, err error) {
	schemeID = strings.TrimSpace(schemeID)
	if schemeID == "" {
		return false, apperr.E(apperr.KindValidation, "Scheme ID is required.")
	}

	key := userID + "/" + schemeID
	if !s.acquire(key) {
		return false, apperr.E(apperr.KindConflict, "A toggle for this scheme is already in progress.")
	}
	defer s.release(key)

	// Try the create first; a conflict means it exists, so remove instead.
	if _, err := s.store.CreateBookmark(ctx, userID, schemeID); err != nil {
		if !apperr.IsKind(err, apperr.KindConflict) {
			return false, err
		}
		if err := s.store.DeleteBookmark(ctx, userID, schemeID); err != nil {
			return false, err
		}
		return false, nil
	}
	return true, nil
}

func (s *Service) acquire(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[key]; busy {
		return false
	}
	s.inFlight[key] = struct{}{}
	return true
}

func (s *Service) release(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, key)
}

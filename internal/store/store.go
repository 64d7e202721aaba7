package store

import (
	"context"

	"github.com/schemehub/schemehub/internal/domain"
)

// UserStore persists registered accounts.
type UserStore interface {
	// CreateUser stores a new user. Fails with a Conflict error when the
	// username is already taken.
	CreateUser(ctx context.Context, user *domain.User) error

	// GetUserByUsername looks a user up by login handle. Fails with a
	// NotFound error when no such user exists.
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
}

// BookmarkStore persists per-user scheme bookmarks.
//
// The store is the correctness guarantee for bookmark uniqueness: a duplicate
// create for the same (user, scheme) pair must fail with a Conflict error,
// regardless of what callers do to suppress double submits.
type BookmarkStore interface {
	// ListBookmarks returns the user's bookmarks, newest first.
	ListBookmarks(ctx context.Context, userID string) ([]*domain.Bookmark, error)

	// CreateBookmark records a bookmark with a server-side timestamp. Fails
	// with a Conflict error when the pair already exists.
	CreateBookmark(ctx context.Context, userID, schemeID string) (*domain.Bookmark, error)

	// DeleteBookmark removes a bookmark. Fails with a NotFound error when
	// the pair does not exist.
	DeleteBookmark(ctx context.Context, userID, schemeID string) error
}

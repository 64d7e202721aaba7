package domain

import "time"

// Bookmark is a user's saved reference to a scheme id.
//
// At most one bookmark exists per (user, scheme) pair; the store enforces
// that. The scheme id is a schema-less reference: the catalog entry it points
// at is resolved at display time and may no longer exist.
type Bookmark struct {
	// UserID is the owning account. A bookmark belongs to exactly one user.
	UserID string `json:"-"`

	// SchemeID references a catalog record by id.
	SchemeID string `json:"schemeId"`

	// BookmarkedAt is set server-side on creation and never updated.
	BookmarkedAt time.Time `json:"bookmarkedAt"`
}

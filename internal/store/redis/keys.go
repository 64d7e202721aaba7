package redis

const (
	// KeyPrefixUser is the prefix for user records, keyed by username.
	KeyPrefixUser = "portal:user:"
	// KeyPrefixBookmarks is the prefix for per-user bookmark sorted sets.
	KeyPrefixBookmarks = "portal:bookmarks:"
)

// UserKey returns the Redis key for a user by username.
func UserKey(username string) string {
	return KeyPrefixUser + username
}

// BookmarksKey returns the Redis key for a user's bookmark set.
func BookmarksKey(userID string) string {
	return KeyPrefixBookmarks + userID
}

package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/schemehub/schemehub/internal/apperr"
	"github.com/schemehub/schemehub/internal/domain"
)

// Bookmarks live in one sorted set per user: member = scheme id, score =
// bookmark time in Unix milliseconds. ZADD NX gives the per-(user, scheme)
// uniqueness constraint and the score keeps the newest-first listing free.

// ListBookmarks returns the user's bookmarks ordered by bookmark time,
// newest first.
func (s *Store) ListBookmarks(ctx context.Context, userID string) ([]*domain.Bookmark, error) {
	entries, err := s.client.ZRevRangeWithScores(ctx, BookmarksKey(userID), 0, -1).Result()
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to list bookmarks", err)
	}

	bookmarks := make([]*domain.Bookmark, 0, len(entries))
	for _, entry := range entries {
		schemeID, ok := entry.Member.(string)
		if !ok {
			continue
		}
		bookmarks = append(bookmarks, &domain.Bookmark{
			UserID:       userID,
			SchemeID:     schemeID,
			BookmarkedAt: time.UnixMilli(int64(entry.Score)).UTC(),
		})
	}

	return bookmarks, nil
}

// CreateBookmark records a bookmark with a server-set timestamp.
func (s *Store) CreateBookmark(ctx context.Context, userID, schemeID string) (*domain.Bookmark, error) {
	now := time.Now().UTC()

	added, err := s.client.ZAddNX(ctx, BookmarksKey(userID), redis.Z{
		Score:  float64(now.UnixMilli()),
		Member: schemeID,
	}).Result()
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to save bookmark", err)
	}
	if added == 0 {
		return nil, apperr.E(apperr.KindConflict, "Scheme is already bookmarked.")
	}

	return &domain.Bookmark{
		UserID:       userID,
		SchemeID:     schemeID,
		BookmarkedAt: now.Truncate(time.Millisecond),
	}, nil
}

// DeleteBookmark removes a bookmark.
func (s *Store) DeleteBookmark(ctx context.Context, userID, schemeID string) error {
	removed, err := s.client.ZRem(ctx, BookmarksKey(userID), schemeID).Result()
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "failed to delete bookmark", err)
	}
	if removed == 0 {
		return apperr.E(apperr.KindNotFound, "Bookmark not found.")
	}

	return nil
}

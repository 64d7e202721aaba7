package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/schemehub/schemehub/internal/apperr"
	"github.com/schemehub/schemehub/internal/domain"
)

// CreateUser stores a user record. SETNX on the username key makes the
// uniqueness check and the write a single atomic step.
func (s *Store) CreateUser(ctx context.Context, user *domain.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}

	ok, err := s.client.SetNX(ctx, UserKey(user.Username), data, 0).Result()
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "failed to save user", err)
	}
	if !ok {
		return apperr.E(apperr.KindConflict, "Username already exists")
	}

	return nil
}

// GetUserByUsername retrieves a user record by login handle.
func (s *Store) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	data, err := s.client.Get(ctx, UserKey(username)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperr.E(apperr.KindNotFound, "User not found")
		}
		return nil, apperr.Wrap(apperr.KindInternal, "failed to get user", err)
	}

	var user domain.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to unmarshal user", err)
	}

	return &user, nil
}

package editor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"eventease/internal/shared/apperrors"
	"eventease/internal/shared/constants"

	"github.com/redis/go-redis/v9"
)

// Store persists editor sessions between requests.
type Store interface {
	Save(ctx context.Context, s *Session) error
	Load(ctx context.Context, sessionID string) (*Session, error)
	Delete(ctx context.Context, sessionID string) error
}

type redisStore struct {
	client *redis.Client
}

// NewStore builds a Redis-backed session store. Sessions expire after
// constants.TTL_EDITOR_SESSION of inactivity; every Save refreshes the TTL.
func NewStore(client *redis.Client) Store {
	return &redisStore{client: client}
}

func (r *redisStore) Save(ctx context.Context, s *Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal editor session: %w", err)
	}

	key := constants.BuildEditorSessionKey(s.ID)
	if err := r.client.Set(ctx, key, data, constants.TTL_EDITOR_SESSION).Err(); err != nil {
		return fmt.Errorf("failed to store editor session: %w", err)
	}
	return nil
}

func (r *redisStore) Load(ctx context.Context, sessionID string) (*Session, error) {
	key := constants.BuildEditorSessionKey(sessionID)
	data, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load editor session: %w", err)
	}

	var s Session
	if err := json.Unmarshal([]byte(data), &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal editor session: %w", err)
	}
	return &s, nil
}

func (r *redisStore) Delete(ctx context.Context, sessionID string) error {
	key := constants.BuildEditorSessionKey(sessionID)
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete editor session: %w", err)
	}
	return nil
}

package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"eventease/internal/shared/constants"

	"github.com/redis/go-redis/v9"
)

func setCache(ctx context.Context, redisClient *redis.Client, key string, value interface{}, ttl time.Duration) error {
	if redisClient == nil {
		return nil // Skip caching if Redis not available
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache data: %w", err)
	}

	return redisClient.Set(ctx, key, data, ttl).Err()
}

func getCache(ctx context.Context, redisClient *redis.Client, key string, dest interface{}) error {
	if redisClient == nil {
		return fmt.Errorf("redis client not available")
	}

	data, err := redisClient.Get(ctx, key).Result()
	if err != nil {
		return err
	}

	return json.Unmarshal([]byte(data), dest)
}

// invalidateEventCache drops every cached view of events, plus the seatmap
// derived from the given event when one is named.
func invalidateEventCache(ctx context.Context, redisClient *redis.Client, eventID string) {
	if redisClient == nil {
		return
	}

	patterns := []string{constants.PATTERN_INVALIDATE_EVENTS_ALL}
	if eventID != "" {
		patterns = append(patterns, constants.BuildEventSeatmapKey(eventID))
	}

	for _, pattern := range patterns {
		keys, err := redisClient.Keys(ctx, pattern).Result()
		if err != nil {
			log.Printf("Warning: failed to scan cache keys for pattern %s: %v", pattern, err)
			continue
		}
		if len(keys) == 0 {
			continue
		}
		if err := redisClient.Del(ctx, keys...).Err(); err != nil {
			log.Printf("Warning: failed to invalidate cache keys: %v", err)
		}
	}
}

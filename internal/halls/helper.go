package halls

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"eventease/internal/shared/constants"

	"github.com/google/uuid"
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

func invalidateHallCache(ctx context.Context, redisClient *redis.Client, hallID *uuid.UUID) error {
	if redisClient == nil {
		return nil
	}

	patterns := []string{
		constants.CACHE_KEY_HALLS_LIST + "*",
	}

	if hallID != nil {
		patterns = append(patterns, constants.CACHE_KEY_HALL_DETAIL+hallID.String()+"*")
		patterns = append(patterns, constants.CACHE_KEY_HALL_LAYOUT+hallID.String()+"*")
	}

	for _, pattern := range patterns {
		keys, err := redisClient.Keys(ctx, pattern).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := redisClient.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
	}

	return nil
}

// invalidateSeatmapCaches drops every cached event seatmap and bookings
// list. Event seatmaps embed the hall layout, and halls do not track
// which events reference them, so a layout save clears them all.
func invalidateSeatmapCaches(ctx context.Context, redisClient *redis.Client) error {
	if redisClient == nil {
		return nil
	}

	keys, err := redisClient.Keys(ctx, constants.PATTERN_INVALIDATE_BOOKINGS_ALL).Result()
	if err != nil {
		return err
	}
	if len(keys) > 0 {
		if err := redisClient.Del(ctx, keys...).Err(); err != nil {
			return err
		}
	}
	return nil
}

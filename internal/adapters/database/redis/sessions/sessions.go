package sessions

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Storage maps session ids to user ids. A missing key is a revoked or
// expired session.
type Storage struct {
	redis *redis.Client
}

func NewStorage(client *redis.Client) *Storage {
	return &Storage{
		redis: client,
	}
}

func (s *Storage) Set(ctx context.Context, sessionID, userID string, ttl time.Duration) error {
	return s.redis.Set(ctx, sessionID, userID, ttl).Err()
}

func (s *Storage) Get(ctx context.Context, sessionID string) (string, error) {
	return s.redis.Get(ctx, sessionID).Result()
}

func (s *Storage) Delete(ctx context.Context, sessionID string) error {
	return s.redis.Del(ctx, sessionID).Err()
}

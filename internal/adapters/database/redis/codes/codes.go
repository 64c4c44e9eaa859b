package codes

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Storage keeps signup verification codes keyed by email, expiring with
// the configured TTL.
type Storage struct {
	redis *redis.Client
}

func NewStorage(client *redis.Client) *Storage {
	return &Storage{
		redis: client,
	}
}

func (s *Storage) Set(ctx context.Context, email, code string, ttl time.Duration) error {
	return s.redis.Set(ctx, email, code, ttl).Err()
}

func (s *Storage) Get(ctx context.Context, email string) (string, error) {
	return s.redis.Get(ctx, email).Result()
}

func (s *Storage) Clear(ctx context.Context, email string) error {
	return s.redis.Del(ctx, email).Err()
}

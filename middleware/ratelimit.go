package middleware

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/redis/go-redis/v9"
)

// RedisLimiterStorage adapts a redis client to fiber's Storage interface so
// rate-limit counters survive restarts and are shared between instances.
type RedisLimiterStorage struct {
	rdb *redis.Client
}

func NewRedisLimiterStorage(rdb *redis.Client) *RedisLimiterStorage {
	return &RedisLimiterStorage{rdb: rdb}
}

func (s *RedisLimiterStorage) Get(key string) ([]byte, error) {
	val, err := s.rdb.Get(context.Background(), key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	return val, err
}

func (s *RedisLimiterStorage) Set(key string, val []byte, exp time.Duration) error {
	return s.rdb.Set(context.Background(), key, val, exp).Err()
}

func (s *RedisLimiterStorage) Delete(key string) error {
	return s.rdb.Del(context.Background(), key).Err()
}

func (s *RedisLimiterStorage) Reset() error {
	return s.rdb.FlushDB(context.Background()).Err()
}

func (s *RedisLimiterStorage) Close() error {
	return s.rdb.Close()
}

// RouteRateLimiter sets custom limits per route group.
func RouteRateLimiter(max int, window time.Duration, storage fiber.Storage) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		Storage:    storage,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Rate limit exceeded",
			})
		},
	})
}

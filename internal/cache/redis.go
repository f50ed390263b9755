package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Arjunsuryas/Flight-Booking/config"
	"github.com/Arjunsuryas/Flight-Booking/internal/domain"
)

type RedisCache struct {
	client     *redis.Client
	flightsTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, flightsTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:     redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		flightsTTL: flightsTTL,
	}
}

func (c *RedisCache) GetUpcomingFlights(ctx context.Context) ([]domain.Flight, error) {
	data, err := c.client.Get(ctx, flightsKey()).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var flights []domain.Flight
	if err := json.Unmarshal(data, &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

func (c *RedisCache) SetUpcomingFlights(ctx context.Context, flights []domain.Flight) error {
	payload, err := json.Marshal(flights)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, flightsKey(), payload, c.flightsTTL).Err()
}

// AcquireUserLock guards against a user running two mutating booking
// operations at once. The DB conditional updates stay authoritative; the
// lock only rejects double submissions early.
func (c *RedisCache) AcquireUserLock(ctx context.Context, userID string, ttl time.Duration) (bool, error) {
	return c.client.SetNX(ctx, userLockKey(userID), "locked", ttl).Result()
}

func (c *RedisCache) ReleaseUserLock(ctx context.Context, userID string) error {
	return c.client.Del(ctx, userLockKey(userID)).Err()
}

func (c *RedisCache) PutSession(ctx context.Context, sessionID, userID string, ttl time.Duration) error {
	return c.client.Set(ctx, sessionKey(sessionID), userID, ttl).Err()
}

// GetSession returns the user id for a session, or "" if the session is
// absent or expired.
func (c *RedisCache) GetSession(ctx context.Context, sessionID string) (string, error) {
	userID, err := c.client.Get(ctx, sessionKey(sessionID)).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return userID, nil
}

func (c *RedisCache) DeleteSession(ctx context.Context, sessionID string) error {
	return c.client.Del(ctx, sessionKey(sessionID)).Err()
}

func flightsKey() string {
	return "cache:flights:upcoming"
}

func userLockKey(userID string) string {
	return fmt.Sprintf("lock:user:%s:booking", userID)
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf("session:%s", sessionID)
}

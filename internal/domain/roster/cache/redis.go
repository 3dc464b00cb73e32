package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"dugout-server-go/internal/domain/roster"
)

type redisCache struct {
	client *redis.Client
	ttl    time.Duration
	key    string
}

// NewRedis constructs a redis-backed roster cache.
func NewRedis(cfg Config) (Store, error) {
	if cfg.Redis == nil {
		return nil, fmt.Errorf("redis configuration missing")
	}
	if cfg.Redis.Addr == "" {
		return nil, fmt.Errorf("redis address required")
	}

	opts := &redis.Options{
		Addr:     cfg.Redis.Addr,
		Username: cfg.Redis.Username,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}
	client := redis.NewClient(opts)

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	prefix := cfg.Redis.Prefix
	if prefix == "" {
		prefix = "roster:"
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &redisCache{
		client: client,
		ttl:    ttl,
		key:    prefix + "players",
	}, nil
}

func (c *redisCache) Get(ctx context.Context) ([]roster.Player, bool, error) {
	data, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis get: %w", err)
	}

	var players []roster.Player
	if err := json.Unmarshal(data, &players); err != nil {
		return nil, false, fmt.Errorf("decode cached roster: %w", err)
	}
	return players, true, nil
}

func (c *redisCache) Set(ctx context.Context, players []roster.Player) error {
	data, err := json.Marshal(players)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key, data, c.ttl).Err()
}

func (c *redisCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, c.key).Err()
}

func (c *redisCache) Close(ctx context.Context) error {
	return c.client.Close()
}

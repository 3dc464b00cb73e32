// Package cache holds the fetched roster for a bounded TTL so every page
// view does not hit the upstream API.
package cache

import (
	"context"
	"time"

	"dugout-server-go/internal/domain/roster"
)

// Store is the caching behaviour required by the roster service. Get reports
// (nil, false, nil) on a miss or an expired entry.
type Store interface {
	Get(ctx context.Context) ([]roster.Player, bool, error)
	Set(ctx context.Context, players []roster.Player) error
	Invalidate(ctx context.Context) error
	Close(ctx context.Context) error
}

// Config describes the high level cache selection parameters.
type Config struct {
	Driver string
	TTL    time.Duration
	Redis  *RedisConfig
}

// RedisConfig captures connection options.
type RedisConfig struct {
	Addr     string
	Username string
	Password string
	DB       int
	Prefix   string
}

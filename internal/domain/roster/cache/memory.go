package cache

import (
	"context"
	"sync"
	"time"

	"dugout-server-go/internal/domain/roster"
)

type memoryCache struct {
	mutex     sync.RWMutex
	players   []roster.Player
	expiresAt time.Time
	ttl       time.Duration
}

// NewMemory builds an in-process roster cache.
func NewMemory(cfg Config) Store {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &memoryCache{ttl: ttl}
}

func (c *memoryCache) Get(_ context.Context) ([]roster.Player, bool, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	if c.players == nil || time.Now().After(c.expiresAt) {
		return nil, false, nil
	}

	// Hand out a copy so callers cannot mutate the cached slice.
	players := make([]roster.Player, len(c.players))
	copy(players, c.players)
	return players, true, nil
}

func (c *memoryCache) Set(_ context.Context, players []roster.Player) error {
	stored := make([]roster.Player, len(players))
	copy(stored, players)

	c.mutex.Lock()
	c.players = stored
	c.expiresAt = time.Now().Add(c.ttl)
	c.mutex.Unlock()
	return nil
}

func (c *memoryCache) Invalidate(_ context.Context) error {
	c.mutex.Lock()
	c.players = nil
	c.mutex.Unlock()
	return nil
}

func (c *memoryCache) Close(_ context.Context) error {
	return c.Invalidate(context.Background())
}

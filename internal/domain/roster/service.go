package roster

import (
	"context"
	"errors"
)

// ErrPlayerNotFound marks a lookup for a name absent from the roster.
var ErrPlayerNotFound = errors.New("player not found")

// Store is the caching behaviour required by the service; the cache package's
// drivers satisfy it. Get reports (nil, false, nil) on a miss or an expired
// entry.
type Store interface {
	Get(ctx context.Context) ([]Player, bool, error)
	Set(ctx context.Context, players []Player) error
	Invalidate(ctx context.Context) error
	Close(ctx context.Context) error
}

// Fetcher is the upstream capability consumed by the service. *Client
// satisfies it; tests substitute a fake.
type Fetcher interface {
	Fetch(ctx context.Context) ([]Player, error)
}

// Service serves the roster from the cache, falling back to an upstream
// fetch on a miss.
type Service struct {
	fetcher Fetcher
	cache   Store
	logger  Logger
}

// NewService wires the roster service.
func NewService(fetcher Fetcher, cacheStore Store, logger Logger) *Service {
	return &Service{
		fetcher: fetcher,
		cache:   cacheStore,
		logger:  logger,
	}
}

// Players returns the full roster, cached or fresh.
func (s *Service) Players(ctx context.Context) ([]Player, error) {
	if s.cache != nil {
		players, hit, err := s.cache.Get(ctx)
		if err != nil && s.logger != nil {
			// Cache trouble downgrades to a fetch, not an outage.
			s.logger.Warn("[ROSTER] cache read failed: %v", err)
		}
		if hit {
			return players, nil
		}
	}

	players, err := s.fetcher.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	if s.logger != nil {
		s.logger.Info("[ROSTER] fetched %d players from upstream", len(players))
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, players); err != nil && s.logger != nil {
			s.logger.Warn("[ROSTER] cache write failed: %v", err)
		}
	}
	return players, nil
}

// SortedPlayers returns the roster ordered by the given stat, descending.
func (s *Service) SortedPlayers(ctx context.Context, field StatField) ([]Player, error) {
	players, err := s.Players(ctx)
	if err != nil {
		return nil, err
	}
	return SortByField(players, field), nil
}

// Leaders returns the top player per headline stat, or nil for an empty
// roster.
func (s *Service) Leaders(ctx context.Context) (*Leaders, error) {
	players, err := s.Players(ctx)
	if err != nil {
		return nil, err
	}
	return ComputeLeaders(players), nil
}

// PlayerByName finds one player by exact name.
func (s *Service) PlayerByName(ctx context.Context, name string) (*Player, error) {
	players, err := s.Players(ctx)
	if err != nil {
		return nil, err
	}
	player := FindByName(players, name)
	if player == nil {
		return nil, ErrPlayerNotFound
	}
	return player, nil
}

package thresholds

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/duelcore/rankhound/internal/backend"
	"github.com/duelcore/rankhound/internal/models"
)

// Defaults used until the first successful refresh. Conservative values
// so a backend outage at boot never renders an empty or absurd footer.
var defaultConfig = models.ThresholdConfig{
	MinGamesForRank:  10,
	MinGamesForTier2: 30,
	TierKValues: models.TierKValues{
		Tier1: 40,
		Tier2: 20,
		Tier3: 10,
	},
	RatingFloor: 500,
}

// Config holds configuration for the thresholds service
type Config struct {
	// Backend is the rating backend client
	Backend backend.Client

	// Logger is the service logger
	Logger zerolog.Logger
}

// service implements the Service interface
type service struct {
	backend backend.Client
	logger  zerolog.Logger

	mu      sync.RWMutex
	current models.ThresholdConfig
}

// New creates a new thresholds service seeded with the safe defaults
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Backend == nil {
		return nil, errors.New("backend client cannot be nil")
	}

	return &service{
		backend: cfg.Backend,
		logger:  cfg.Logger,
		current: defaultConfig,
	}, nil
}

// Current returns the cached threshold config by value
func (s *service) Current() models.ThresholdConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Refresh fetches a new config from the backend and replaces the cached
// value wholesale. A fetch failure keeps the previous value.
func (s *service) Refresh(ctx context.Context) error {
	cfg, err := s.backend.GetThresholds(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("threshold refresh failed, keeping previous config")
		return fmt.Errorf("failed to refresh thresholds: %w", err)
	}

	s.mu.Lock()
	s.current = *cfg
	s.mu.Unlock()

	s.logger.Info().
		Int("min_games_for_rank", cfg.MinGamesForRank).
		Int("rating_floor", cfg.RatingFloor).
		Msg("threshold config refreshed")

	return nil
}

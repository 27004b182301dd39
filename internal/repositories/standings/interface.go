package standings

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/duelcore/rankhound/internal/repositories/standings Repository

import (
	"context"

	"github.com/duelcore/rankhound/internal/models"
)

// Repository defines the interface for reading the externally-owned
// ranking store
type Repository interface {
	// GetStandings retrieves the current standings, deduplicated to the
	// latest record per player and ordered by rating descending
	GetStandings(ctx context.Context, input *GetStandingsInput) (*GetStandingsOutput, error)

	// GetPlayerStanding retrieves one player's current standing
	GetPlayerStanding(ctx context.Context, input *GetPlayerStandingInput) (*models.PlayerStanding, error)
}

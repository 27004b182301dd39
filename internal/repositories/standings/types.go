package standings

import "github.com/duelcore/rankhound/internal/models"

// GetStandingsInput contains parameters for fetching standings
type GetStandingsInput struct {
	// Limit caps the number of returned standings. Zero means no cap.
	Limit int
}

// GetStandingsOutput contains the fetched snapshot
type GetStandingsOutput struct {
	// Standings are ordered by rating descending with AbsoluteRank
	// assigned over all players
	Standings []*models.PlayerStanding
}

// GetPlayerStandingInput contains parameters for a single-player lookup
type GetPlayerStandingInput struct {
	SteamID string
}

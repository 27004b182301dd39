package standings

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/duelcore/rankhound/internal/models"
)

// ErrPlayerNotFound is returned when a player has no rating record
var ErrPlayerNotFound = errors.New("player not found")

// Config holds configuration for the Postgres standings repository
type Config struct {
	// Pool is the connection pool to the ranking store
	Pool *pgxpool.Pool
}

// postgresRepository implements the Repository interface against the
// backend-owned rating_records table
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgres creates a new Postgres-backed standings repository
func NewPostgres(cfg *Config) (*postgresRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Pool == nil {
		return nil, errors.New("connection pool cannot be nil")
	}

	return &postgresRepository{
		pool: cfg.Pool,
	}, nil
}

// standingsQuery collapses the append-only rating_records table to the
// latest row per player, then orders by rating. Steam ID breaks rating
// ties so consecutive snapshots agree on ordering.
const standingsQuery = `
	SELECT steam_id, name, rating, nationality_tag, games_played
	FROM (
		SELECT DISTINCT ON (steam_id)
			steam_id, name, rating, nationality_tag, games_played
		FROM rating_records
		ORDER BY steam_id, recorded_at DESC
	) latest
	ORDER BY rating DESC, steam_id ASC
`

// GetStandings retrieves the current standings from the ranking store
func (r *postgresRepository) GetStandings(ctx context.Context, input *GetStandingsInput) (*GetStandingsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	query := standingsQuery
	args := []any{}
	if input.Limit > 0 {
		query += " LIMIT $1"
		args = append(args, input.Limit)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query standings: %w", err)
	}
	defer rows.Close()

	var standings []*models.PlayerStanding
	for rows.Next() {
		var s models.PlayerStanding
		var tag *string
		if err := rows.Scan(&s.SteamID, &s.Name, &s.Rating, &tag, &s.GamesPlayed); err != nil {
			return nil, fmt.Errorf("failed to scan standing: %w", err)
		}
		if tag != nil {
			s.NationalityTag = *tag
		}
		s.AbsoluteRank = len(standings) + 1
		standings = append(standings, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read standings: %w", err)
	}

	return &GetStandingsOutput{
		Standings: standings,
	}, nil
}

// GetPlayerStanding retrieves one player's standing. It fetches the full
// standings set and searches it, sharing the dedupe and ordering logic
// with GetStandings so an individual lookup always agrees with the
// leaderboard view.
func (r *postgresRepository) GetPlayerStanding(ctx context.Context, input *GetPlayerStandingInput) (*models.PlayerStanding, error) {
	if input == nil || input.SteamID == "" {
		return nil, errors.New("input and steam ID cannot be empty")
	}

	out, err := r.GetStandings(ctx, &GetStandingsInput{})
	if err != nil {
		return nil, err
	}

	for _, s := range out.Standings {
		if s.SteamID == input.SteamID {
			return s, nil
		}
	}

	return nil, ErrPlayerNotFound
}

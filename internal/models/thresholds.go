package models

// Tier is a games-played bracket controlling how hard a single result
// moves a player's rating
type Tier string

const (
	// TierNew covers players still in placement territory
	TierNew Tier = "new"

	// TierDeveloping covers players past placements but not yet settled
	TierDeveloping Tier = "developing"

	// TierEstablished covers players with a stable rating
	TierEstablished Tier = "established"
)

// TierKValues holds the rating-change magnitude per tier
type TierKValues struct {
	// Tier1 is the K value for new players
	Tier1 int `json:"tier1"`

	// Tier2 is the K value for developing players
	Tier2 int `json:"tier2"`

	// Tier3 is the K value for established players
	Tier3 int `json:"tier3"`
}

// ThresholdConfig holds the tiering and eligibility parameters used by the
// renderer and by per-player status classification. The rating math itself
// lives in the backend; the bot only displays these values.
type ThresholdConfig struct {
	// MinGamesForRank is the minimum rated duels before a player appears
	// on the leaderboard
	MinGamesForRank int `json:"min_games_for_rank"`

	// MinGamesForTier2 is the games count at which a player leaves the
	// new-player tier
	MinGamesForTier2 int `json:"min_games_for_tier2"`

	// TierKValues are the per-tier rating-change magnitudes
	TierKValues TierKValues `json:"tier_k_values"`

	// RatingFloor is the rating new players start at and cannot drop below
	RatingFloor int `json:"rating_floor"`
}

// TierFor classifies a games-played count into a tier. Tier 3 starts at
// twice the tier 2 boundary.
func (c ThresholdConfig) TierFor(gamesPlayed int) Tier {
	switch {
	case gamesPlayed < c.MinGamesForTier2:
		return TierNew
	case gamesPlayed < c.MinGamesForTier2*2:
		return TierDeveloping
	default:
		return TierEstablished
	}
}

// KValueFor returns the rating-change magnitude applied to a player with
// the given games count
func (c ThresholdConfig) KValueFor(gamesPlayed int) int {
	switch c.TierFor(gamesPlayed) {
	case TierNew:
		return c.TierKValues.Tier1
	case TierDeveloping:
		return c.TierKValues.Tier2
	default:
		return c.TierKValues.Tier3
	}
}

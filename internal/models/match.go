package models

// MatchResult is a finished duel pushed from the rating backend
type MatchResult struct {
	// WinnerSteamID is the winner's steam ID
	WinnerSteamID string `json:"winner_steam_id"`

	// WinnerName is the winner's display name
	WinnerName string `json:"winner_name"`

	// WinnerRating is the winner's rating after the match
	WinnerRating int `json:"winner_rating"`

	// WinnerDelta is the rating change applied to the winner
	WinnerDelta int `json:"winner_delta"`

	// LoserSteamID is the loser's steam ID
	LoserSteamID string `json:"loser_steam_id"`

	// LoserName is the loser's display name
	LoserName string `json:"loser_name"`

	// LoserRating is the loser's rating after the match
	LoserRating int `json:"loser_rating"`

	// LoserDelta is the rating change applied to the loser, negative or zero
	LoserDelta int `json:"loser_delta"`
}

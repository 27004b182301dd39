package backend

// ZeroPlayerRatingInput contains parameters for zeroing a player's rating
type ZeroPlayerRatingInput struct {
	SteamID string
}

// SetPlayerRatingInput contains parameters for overriding a player's
// rating and games count
type SetPlayerRatingInput struct {
	SteamID string
	Rating  int

	// GamesPlayed is the new games count. Negative leaves the backend's
	// count unchanged.
	GamesPlayed int
}

// AdminActionOutput contains the backend's response to an admin action
type AdminActionOutput struct {
	// Message is the backend's human-readable result text, relayed to the
	// requesting admin verbatim
	Message string
}

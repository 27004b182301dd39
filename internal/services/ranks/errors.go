package ranks

// RanksError represents an error in the ranks service
type RanksError string

// Error implements the error interface
func (e RanksError) Error() string {
	return string(e)
}

const (
	// ErrUnknownChannel is returned when a sync targets a channel that is
	// not a configured leaderboard destination
	ErrUnknownChannel RanksError = "channel is not a configured leaderboard destination"

	// ErrPlayerNotFound is returned when a lookup matches no player in
	// the current standings
	ErrPlayerNotFound RanksError = "player not found in current standings"
)

package models

import "time"

// UpdateKind classifies an externally requested leaderboard update
type UpdateKind string

const (
	// UpdateKindMatchResult carries a finished match to announce before
	// refreshing the leaderboards
	UpdateKindMatchResult UpdateKind = "match_result"

	// UpdateKindRefresh is a plain leaderboard refresh with no payload
	UpdateKindRefresh UpdateKind = "refresh"
)

// PendingUpdate is an update request that arrived before the sync engine
// finished starting up. Buffered requests replay in arrival order once the
// engine is ready; a process restart loses them.
type PendingUpdate struct {
	// ID identifies the request in logs
	ID string

	// Kind is the type of update requested
	Kind UpdateKind

	// Result is the match payload, nil for plain refreshes
	Result *MatchResult

	// EnqueuedAt is when the request was buffered
	EnqueuedAt time.Time
}

package ranks

import (
	"github.com/rs/zerolog"

	"github.com/duelcore/rankhound/internal/common/clock"
	"github.com/duelcore/rankhound/internal/common/uuid"
	"github.com/duelcore/rankhound/internal/messaging"
	"github.com/duelcore/rankhound/internal/models"
	"github.com/duelcore/rankhound/internal/repositories/standings"
	"github.com/duelcore/rankhound/internal/services/thresholds"
)

// Config holds configuration for the rank sync engine
type Config struct {
	// ChannelIDs are the channels hosting a live leaderboard message
	ChannelIDs []string

	// ResultsChannelID receives match-result announcements. Empty
	// disables result delivery.
	ResultsChannelID string

	// BotUserID identifies the bot's own messages during startup recovery
	BotUserID string

	// LeaderboardSize caps the snapshot so the rendered document stays
	// under the platform message size limit
	LeaderboardSize int

	// RecoveryScanLimit is how many recent messages to inspect per
	// channel during startup recovery
	RecoveryScanLimit int

	// Dependencies
	StandingsRepo standings.Repository
	Messenger     messaging.Messenger
	Thresholds    thresholds.Service
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
	Logger        zerolog.Logger
}

// SyncChannelInput contains parameters for syncing one channel
type SyncChannelInput struct {
	// ChannelID is the channel to sync
	ChannelID string
}

// SyncChannelOutput contains the result of syncing one channel
type SyncChannelOutput struct {
	// ChannelID is the channel that was synced
	ChannelID string

	// MessageID is the message now displaying the leaderboard
	MessageID string

	// Created indicates a fresh message was posted rather than an edit
	Created bool
}

// ChannelSyncResult is one channel's outcome within a SyncAll batch
type ChannelSyncResult struct {
	ChannelID string
	MessageID string
	Created   bool
	Err       error
}

// SyncAllOutput contains the aggregate result of a sync-all batch
type SyncAllOutput struct {
	// Results holds one entry per configured channel, in configuration
	// order
	Results []*ChannelSyncResult

	// Failed is the number of channels whose sync errored
	Failed int
}

// NotifyUpdateInput contains parameters for an externally triggered update
type NotifyUpdateInput struct {
	// Kind is the type of update requested
	Kind models.UpdateKind

	// Result is the match payload for match-result updates, nil otherwise
	Result *models.MatchResult
}

// NotifyUpdateOutput contains the result of admitting an update
type NotifyUpdateOutput struct {
	// UpdateID identifies the request in logs
	UpdateID string

	// Queued indicates the request was buffered for replay rather than
	// processed immediately
	Queued bool

	// SyncFailed is the number of channels whose sync errored when the
	// request was processed immediately
	SyncFailed int
}

// LookupPlayerInput contains parameters for a player lookup
type LookupPlayerInput struct {
	// Query is a steam ID or a case-insensitive player name
	Query string
}

// LookupPlayerOutput contains the resolved standing
type LookupPlayerOutput struct {
	// Standing is the player's current standing with display rank
	// assigned against live thresholds
	Standing *models.PlayerStanding

	// Tier is the player's games-played bracket
	Tier models.Tier

	// KValue is the rating-change magnitude for the player's tier
	KValue int
}

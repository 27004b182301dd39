package ranks

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/duelcore/rankhound/internal/services/ranks Service

import "context"

// Service is the rank sync engine. It keeps the leaderboard message in
// every configured channel matching the most recent snapshot, using at
// most one live message per channel, and admits externally triggered
// updates through a startup-safe queue.
type Service interface {
	// SyncChannel brings one channel's leaderboard message up to date,
	// editing the cached message in place or creating a fresh one
	SyncChannel(ctx context.Context, input *SyncChannelInput) (*SyncChannelOutput, error)

	// SyncAll syncs every configured channel, channel by channel. A
	// single channel's failure is logged and never aborts the batch.
	SyncAll(ctx context.Context) *SyncAllOutput

	// RecoverMessages seeds the message cache by scanning recent channel
	// history for the bot's own prior leaderboard messages
	RecoverMessages(ctx context.Context) error

	// NotifyUpdate admits an externally triggered update. Requests
	// arriving before MarkReady are buffered and replayed in order.
	NotifyUpdate(ctx context.Context, input *NotifyUpdateInput) (*NotifyUpdateOutput, error)

	// MarkReady flips the engine to ready and drains buffered updates
	// strictly FIFO, each one completing before the next starts
	MarkReady(ctx context.Context)

	// LookupPlayer resolves one player's standing by steam ID or name,
	// with display rank and tier classification
	LookupPlayer(ctx context.Context, input *LookupPlayerInput) (*LookupPlayerOutput, error)
}

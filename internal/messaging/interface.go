package messaging

//go:generate mockgen -package=mocks -destination=mocks/mock_messenger.go github.com/duelcore/rankhound/internal/messaging Messenger

import "context"

// Messenger is the chat platform surface the sync engine needs: post a
// message, edit one in place, and list recent channel history for startup
// recovery. The engine never talks to the platform library directly.
type Messenger interface {
	// SendMessage posts a new message and returns its ID
	SendMessage(ctx context.Context, input *SendMessageInput) (*SendMessageOutput, error)

	// EditMessage replaces the content of an existing message. Returns
	// ErrMessageNotFound when the target no longer exists.
	EditMessage(ctx context.Context, input *EditMessageInput) error

	// RecentMessages retrieves the most recent messages in a channel,
	// newest first
	RecentMessages(ctx context.Context, input *RecentMessagesInput) (*RecentMessagesOutput, error)
}

package messaging

import (
	"errors"

	"github.com/duelcore/rankhound/internal/models"
)

// ErrMessageNotFound is returned when an edit targets a message that was
// deleted or is otherwise gone
var ErrMessageNotFound = errors.New("message not found")

// SendMessageInput contains parameters for posting a message
type SendMessageInput struct {
	ChannelID string
	Content   string
}

// SendMessageOutput contains the result of posting a message
type SendMessageOutput struct {
	MessageID string
}

// EditMessageInput contains parameters for editing a message in place
type EditMessageInput struct {
	ChannelID string
	MessageID string
	Content   string
}

// RecentMessagesInput contains parameters for listing channel history
type RecentMessagesInput struct {
	ChannelID string
	Limit     int
}

// RecentMessagesOutput contains the listed messages, newest first
type RecentMessagesOutput struct {
	Messages []*models.ChannelMessage
}

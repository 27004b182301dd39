package models

import "time"

// ChannelMessage is a message observed in a chat channel, used during
// startup recovery to find the bot's own prior leaderboard message
type ChannelMessage struct {
	// ID is the platform message ID
	ID string

	// AuthorID is the platform user ID of the message author
	AuthorID string

	// Content is the message text
	Content string

	// SentAt is when the message was posted
	SentAt time.Time
}

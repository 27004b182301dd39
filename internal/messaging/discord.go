package messaging

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/duelcore/rankhound/internal/models"
)

// Config holds configuration for the Discord messenger
type Config struct {
	// Session is an opened Discord session
	Session *discordgo.Session
}

// discordMessenger implements the Messenger interface using discordgo
type discordMessenger struct {
	session *discordgo.Session
}

// NewDiscord creates a new Discord-backed messenger
func NewDiscord(cfg *Config) (*discordMessenger, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Session == nil {
		return nil, errors.New("session cannot be nil")
	}

	return &discordMessenger{
		session: cfg.Session,
	}, nil
}

// SendMessage posts a new message to a channel
func (m *discordMessenger) SendMessage(ctx context.Context, input *SendMessageInput) (*SendMessageOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("input and channel ID cannot be empty")
	}

	msg, err := m.session.ChannelMessageSend(input.ChannelID, input.Content, discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to send message: %w", err)
	}

	return &SendMessageOutput{
		MessageID: msg.ID,
	}, nil
}

// EditMessage replaces the content of an existing message
func (m *discordMessenger) EditMessage(ctx context.Context, input *EditMessageInput) error {
	if input == nil || input.ChannelID == "" || input.MessageID == "" {
		return errors.New("input, channel ID and message ID cannot be empty")
	}

	_, err := m.session.ChannelMessageEdit(input.ChannelID, input.MessageID, input.Content, discordgo.WithContext(ctx))
	if err != nil {
		if isUnknownMessage(err) {
			return ErrMessageNotFound
		}
		return fmt.Errorf("failed to edit message: %w", err)
	}

	return nil
}

// RecentMessages retrieves the most recent messages in a channel
func (m *discordMessenger) RecentMessages(ctx context.Context, input *RecentMessagesInput) (*RecentMessagesOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("input and channel ID cannot be empty")
	}

	limit := input.Limit
	if limit <= 0 || limit > 100 {
		limit = 100
	}

	msgs, err := m.session.ChannelMessages(input.ChannelID, limit, "", "", "", discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch channel messages: %w", err)
	}

	out := make([]*models.ChannelMessage, 0, len(msgs))
	for _, msg := range msgs {
		cm := &models.ChannelMessage{
			ID:      msg.ID,
			Content: msg.Content,
			SentAt:  msg.Timestamp,
		}
		if msg.Author != nil {
			cm.AuthorID = msg.Author.ID
		}
		out = append(out, cm)
	}

	return &RecentMessagesOutput{
		Messages: out,
	}, nil
}

// isUnknownMessage reports whether the error is Discord telling us the
// message no longer exists
func isUnknownMessage(err error) bool {
	var restErr *discordgo.RESTError
	if errors.As(err, &restErr) && restErr.Message != nil {
		return restErr.Message.Code == discordgo.ErrCodeUnknownMessage
	}
	return false
}

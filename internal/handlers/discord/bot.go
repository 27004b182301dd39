package discord

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
)

// Bot owns slash command registration and interaction dispatch on an
// already-opened Discord session
type Bot struct {
	session    *discordgo.Session
	commands   map[string]CommandHandler
	commandIDs map[string]string // Maps command name to command ID
	components []ComponentHandler
	config     *Config
	logger     zerolog.Logger
}

// Config holds the configuration for the bot
type Config struct {
	// Session is the open Discord session shared with the messenger
	Session *discordgo.Session

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// Logger is the handler logger
	Logger zerolog.Logger
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Session == nil {
		return nil, errors.New("session cannot be nil")
	}

	bot := &Bot{
		session:    cfg.Session,
		commands:   make(map[string]CommandHandler),
		commandIDs: make(map[string]string),
		config:     cfg,
		logger:     cfg.Logger,
	}

	// Register the interaction handler
	cfg.Session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// RegisterCommand registers a command with Discord. Commands implementing
// ComponentHandler also receive button and component interactions.
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	appID := b.config.ApplicationID
	if appID == "" {
		// Fall back to session user ID if application ID is not provided
		appID = b.session.State.User.ID
	}

	// If guild ID is provided, register command for that specific guild.
	// Otherwise, register it globally.
	guildID := b.config.GuildID

	createdCmd, err := b.session.ApplicationCommandCreate(appID, guildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	if ch, ok := cmd.(ComponentHandler); ok {
		b.components = append(b.components, ch)
	}

	b.logger.Info().
		Str("command", cmd.GetName()).
		Str("command_id", createdCmd.ID).
		Str("guild_id", guildID).
		Msg("registered command")

	return nil
}

// Stop removes the registered commands
func (b *Bot) Stop() error {
	appID := b.config.ApplicationID
	if appID == "" {
		appID = b.session.State.User.ID
	}

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			b.logger.Warn().Err(err).
				Str("command", cmdName).
				Msg("failed to delete command")
		}
	}

	return nil
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		if h, ok := b.commands[i.ApplicationCommandData().Name]; ok {
			if err := h.Handle(s, i); err != nil {
				b.logger.Error().Err(err).
					Str("command", i.ApplicationCommandData().Name).
					Msg("command handling failed")
			}
		}
	case discordgo.InteractionMessageComponent:
		for _, h := range b.components {
			handled, err := h.HandleComponent(s, i)
			if err != nil {
				b.logger.Error().Err(err).
					Str("custom_id", i.MessageComponentData().CustomID).
					Msg("component handling failed")
			}
			if handled {
				return
			}
		}
		b.logger.Warn().
			Str("custom_id", i.MessageComponentData().CustomID).
			Msg("unrouted component interaction")
	}
}

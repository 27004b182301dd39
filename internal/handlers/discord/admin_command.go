package discord

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"

	"github.com/duelcore/rankhound/internal/backend"
	"github.com/duelcore/rankhound/internal/common/clock"
	"github.com/duelcore/rankhound/internal/models"
	"github.com/duelcore/rankhound/internal/services/ranks"
	"github.com/duelcore/rankhound/internal/services/thresholds"
)

// Component custom IDs
const (
	ButtonConfirmReset = "ranksadmin_confirm_reset"
	ButtonCancelReset  = "ranksadmin_cancel_reset"
)

// RanksAdminCommand handles the privileged /ranksadmin command
type RanksAdminCommand struct {
	BaseCommand
	ranksService      ranks.Service
	thresholdsService thresholds.Service
	backendClient     backend.Client
	clock             clock.Clock
	adminRoleID       string
	confirmTimeout    time.Duration
	logger            zerolog.Logger

	// Pending reset confirmations by requesting user, each expiring after
	// confirmTimeout
	mu      sync.Mutex
	pending map[string]time.Time
}

// RanksAdminConfig holds configuration for the admin command
type RanksAdminConfig struct {
	RanksService      ranks.Service
	ThresholdsService thresholds.Service
	BackendClient     backend.Client
	Clock             clock.Clock
	AdminRoleID       string
	ConfirmTimeout    time.Duration
	Logger            zerolog.Logger
}

// NewRanksAdminCommand creates a new admin command handler
func NewRanksAdminCommand(cfg *RanksAdminConfig) (*RanksAdminCommand, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.RanksService == nil {
		return nil, errors.New("ranks service cannot be nil")
	}
	if cfg.ThresholdsService == nil {
		return nil, errors.New("thresholds service cannot be nil")
	}
	if cfg.BackendClient == nil {
		return nil, errors.New("backend client cannot be nil")
	}
	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}
	if cfg.AdminRoleID == "" {
		return nil, errors.New("admin role ID is required")
	}

	return &RanksAdminCommand{
		BaseCommand: BaseCommand{
			Name:        "ranksadmin",
			Description: "Privileged leaderboard administration",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "reset-all",
					Description: "Reset every player's rating to the floor",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "zero",
					Description: "Zero one player's rating",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "steam_id",
							Description: "Steam ID of the player",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "set",
					Description: "Set one player's rating and games count",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "steam_id",
							Description: "Steam ID of the player",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "rating",
							Description: "New rating",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "games",
							Description: "New games count, unchanged when omitted",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "reload-config",
					Description: "Reload threshold config from the backend",
				},
			},
		},
		ranksService:      cfg.RanksService,
		thresholdsService: cfg.ThresholdsService,
		backendClient:     cfg.BackendClient,
		clock:             cfg.Clock,
		adminRoleID:       cfg.AdminRoleID,
		confirmTimeout:    cfg.ConfirmTimeout,
		logger:            cfg.Logger,
		pending:           make(map[string]time.Time),
	}, nil
}

// authorized reports whether the interaction member carries the admin role
func (c *RanksAdminCommand) authorized(i *discordgo.InteractionCreate) bool {
	if i.Member == nil {
		return false
	}
	return slices.Contains(i.Member.Roles, c.adminRoleID)
}

// Handle processes a Discord interaction for the ranksadmin command
func (c *RanksAdminCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name {
		return nil
	}

	if !c.authorized(i) {
		return RespondWithEphemeralMessage(s, i, "You need the admin role to use this command.")
	}

	switch data.Options[0].Name {
	case "reset-all":
		return c.handleResetAll(s, i)
	case "zero":
		return c.handleZero(s, i, data.Options[0].Options[0].StringValue())
	case "set":
		return c.handleSet(s, i, data.Options[0].Options)
	case "reload-config":
		return c.handleReloadConfig(s, i)
	default:
		return errors.New("unknown subcommand")
	}
}

// handleResetAll arms a confirmation instead of resetting outright. The
// actual reset runs from the confirm button.
func (c *RanksAdminCommand) handleResetAll(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	userID := i.Member.User.ID

	c.mu.Lock()
	c.pending[userID] = c.clock.Now().Add(c.confirmTimeout)
	c.mu.Unlock()

	buttons := []discordgo.MessageComponent{
		discordgo.Button{
			Label:    "Reset all ratings",
			Style:    discordgo.DangerButton,
			CustomID: ButtonConfirmReset,
		},
		discordgo.Button{
			Label:    "Cancel",
			Style:    discordgo.SecondaryButton,
			CustomID: ButtonCancelReset,
		},
	}

	return RespondWithEphemeralButtons(s, i,
		fmt.Sprintf("This resets **every** player's rating to the floor. Confirm within %d seconds.",
			int(c.confirmTimeout.Seconds())),
		buttons)
}

// HandleComponent processes the reset confirmation buttons
func (c *RanksAdminCommand) HandleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) (bool, error) {
	customID := i.MessageComponentData().CustomID
	if customID != ButtonConfirmReset && customID != ButtonCancelReset {
		return false, nil
	}

	if !c.authorized(i) {
		return true, RespondWithEphemeralMessage(s, i, "You need the admin role to use this command.")
	}

	userID := i.Member.User.ID

	c.mu.Lock()
	expiry, armed := c.pending[userID]
	delete(c.pending, userID)
	c.mu.Unlock()

	if customID == ButtonCancelReset {
		return true, UpdateWithMessage(s, i, "Reset cancelled.")
	}

	if !armed || c.clock.Now().After(expiry) {
		return true, UpdateWithMessage(s, i, "Confirmation expired, run the command again.")
	}

	ctx := context.Background()
	output, err := c.backendClient.ResetAllRatings(ctx)
	if err != nil {
		c.logger.Error().Err(err).Str("admin", userID).Msg("rating reset failed")
		return true, UpdateWithMessage(s, i, "Reset failed: "+err.Error())
	}

	c.logger.Info().Str("admin", userID).Msg("all ratings reset")
	c.requestRefresh(ctx)

	return true, UpdateWithMessage(s, i, output.Message)
}

// handleZero handles the zero subcommand
func (c *RanksAdminCommand) handleZero(s *discordgo.Session, i *discordgo.InteractionCreate, steamID string) error {
	ctx := context.Background()

	output, err := c.backendClient.ZeroPlayerRating(ctx, &backend.ZeroPlayerRatingInput{
		SteamID: steamID,
	})
	if err != nil {
		c.logger.Error().Err(err).Str("steam_id", steamID).Msg("zero rating failed")
		return RespondWithError(s, i, "Zero failed: "+err.Error())
	}

	c.logger.Info().
		Str("admin", i.Member.User.ID).
		Str("steam_id", steamID).
		Msg("player rating zeroed")
	c.requestRefresh(ctx)

	return RespondWithEphemeralMessage(s, i, output.Message)
}

// handleSet handles the set subcommand
func (c *RanksAdminCommand) handleSet(s *discordgo.Session, i *discordgo.InteractionCreate, opts []*discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()

	input := &backend.SetPlayerRatingInput{
		GamesPlayed: -1, // Unchanged unless provided
	}
	for _, opt := range opts {
		switch opt.Name {
		case "steam_id":
			input.SteamID = opt.StringValue()
		case "rating":
			input.Rating = int(opt.IntValue())
		case "games":
			input.GamesPlayed = int(opt.IntValue())
		}
	}

	output, err := c.backendClient.SetPlayerRating(ctx, input)
	if err != nil {
		c.logger.Error().Err(err).Str("steam_id", input.SteamID).Msg("set rating failed")
		return RespondWithError(s, i, "Set failed: "+err.Error())
	}

	c.logger.Info().
		Str("admin", i.Member.User.ID).
		Str("steam_id", input.SteamID).
		Int("rating", input.Rating).
		Msg("player rating set")
	c.requestRefresh(ctx)

	return RespondWithEphemeralMessage(s, i, output.Message)
}

// handleReloadConfig handles the reload-config subcommand
func (c *RanksAdminCommand) handleReloadConfig(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	if err := c.thresholdsService.Refresh(ctx); err != nil {
		return RespondWithError(s, i, "Reload failed, previous config is still in effect.")
	}

	cfg := c.thresholdsService.Current()
	c.requestRefresh(ctx)

	return RespondWithEphemeralMessage(s, i, fmt.Sprintf(
		"Config reloaded: ranked after %d duels, rating floor %d, K values %d/%d/%d.",
		cfg.MinGamesForRank, cfg.RatingFloor,
		cfg.TierKValues.Tier1, cfg.TierKValues.Tier2, cfg.TierKValues.Tier3))
}

// requestRefresh pushes the admin change onto the leaderboards right away
func (c *RanksAdminCommand) requestRefresh(ctx context.Context) {
	if _, err := c.ranksService.NotifyUpdate(ctx, &ranks.NotifyUpdateInput{
		Kind: models.UpdateKindRefresh,
	}); err != nil {
		c.logger.Error().Err(err).Msg("post-admin refresh failed")
	}
}

package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"

	"github.com/duelcore/rankhound/internal/models"
	"github.com/duelcore/rankhound/internal/services/ranks"
	"github.com/duelcore/rankhound/internal/services/thresholds"
)

// RanksCommand handles the /ranks command
type RanksCommand struct {
	BaseCommand
	ranksService      ranks.Service
	thresholdsService thresholds.Service
	logger            zerolog.Logger
}

// NewRanksCommand creates a new ranks command handler
func NewRanksCommand(ranksService ranks.Service, thresholdsService thresholds.Service, logger zerolog.Logger) *RanksCommand {
	return &RanksCommand{
		BaseCommand: BaseCommand{
			Name:        "ranks",
			Description: "Leaderboard commands",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "refresh",
					Description: "Refresh the leaderboard messages now",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "player",
					Description: "Look up a player's rank and rating",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "query",
							Description: "Steam ID or player name",
							Required:    true,
						},
					},
				},
			},
		},
		ranksService:      ranksService,
		thresholdsService: thresholdsService,
		logger:            logger,
	}
}

// Handle processes a Discord interaction for the ranks command
func (c *RanksCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name {
		return nil
	}

	switch data.Options[0].Name {
	case "refresh":
		return c.handleRefresh(s, i)
	case "player":
		return c.handlePlayer(s, i, data.Options[0].Options[0].StringValue())
	default:
		return errors.New("unknown subcommand")
	}
}

// handleRefresh handles the refresh subcommand
func (c *RanksCommand) handleRefresh(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	output, err := c.ranksService.NotifyUpdate(ctx, &ranks.NotifyUpdateInput{
		Kind: models.UpdateKindRefresh,
	})
	if err != nil {
		c.logger.Error().Err(err).Msg("manual refresh failed")
		return RespondWithError(s, i, "Refresh failed, check the logs.")
	}

	if output.Queued {
		return RespondWithEphemeralMessage(s, i, "Still starting up, your refresh will run shortly.")
	}

	if output.SyncFailed > 0 {
		return RespondWithError(s, i,
			fmt.Sprintf("Refreshed with %d channel(s) failing, check the logs.", output.SyncFailed))
	}

	return RespondWithEphemeralMessage(s, i, "Leaderboards refreshed.")
}

// handlePlayer handles the player subcommand
func (c *RanksCommand) handlePlayer(s *discordgo.Session, i *discordgo.InteractionCreate, query string) error {
	ctx := context.Background()

	output, err := c.ranksService.LookupPlayer(ctx, &ranks.LookupPlayerInput{Query: query})
	if err != nil {
		if errors.Is(err, ranks.ErrPlayerNotFound) {
			return RespondWithEphemeralMessage(s, i, "No player matches `"+query+"`.")
		}
		c.logger.Error().Err(err).Str("query", query).Msg("player lookup failed")
		return RespondWithError(s, i, "Lookup failed, check the logs.")
	}

	cfg := c.thresholdsService.Current()
	fields := formatPlayerFields(output.Standing, output.Tier, output.KValue, cfg.MinGamesForRank)

	return RespondWithEmbed(s, i, formatPlayerTitle(output.Standing), "", fields)
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/duelcore/rankhound/internal/backend"
	"github.com/duelcore/rankhound/internal/common/clock"
	"github.com/duelcore/rankhound/internal/common/uuid"
	"github.com/duelcore/rankhound/internal/config"
	discordHandler "github.com/duelcore/rankhound/internal/handlers/discord"
	"github.com/duelcore/rankhound/internal/handlers/httpapi"
	"github.com/duelcore/rankhound/internal/messaging"
	"github.com/duelcore/rankhound/internal/repositories/standings"
	"github.com/duelcore/rankhound/internal/services/ranks"
	"github.com/duelcore/rankhound/internal/services/thresholds"
)

func main() {
	// Optional .env for local development
	_ = godotenv.Load()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	cfg, err := config.Load(".")
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Ranking store
	poolCfg, err := pgxpool.ParseConfig(cfg.Database.DSN())
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid database configuration")
	}
	poolCfg.MaxConns = int32(cfg.Database.PoolSize)

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create connection pool")
	}
	defer pool.Close()

	pingCtx, pingCancel := context.WithTimeout(ctx, cfg.Database.ConnectTimeout)
	if err := pool.Ping(pingCtx); err != nil {
		pingCancel()
		logger.Fatal().Err(err).Msg("failed to reach ranking store")
	}
	pingCancel()

	standingsRepo, err := standings.NewPostgres(&standings.Config{Pool: pool})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create standings repository")
	}

	// Rating backend
	backendClient, err := backend.NewHTTP(&backend.Config{
		BaseURL: cfg.Backend.BaseURL,
		Secret:  cfg.Backend.Secret,
		Timeout: cfg.Backend.Timeout,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create backend client")
	}

	thresholdsService, err := thresholds.New(&thresholds.Config{
		Backend: backendClient,
		Logger:  logger.With().Str("component", "thresholds").Logger(),
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create thresholds service")
	}

	// Discord session has to be open before we know the bot's own user ID
	session, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create Discord session")
	}
	session.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages

	if err := session.Open(); err != nil {
		logger.Fatal().Err(err).Msg("failed to open Discord connection")
	}
	defer session.Close()

	messenger, err := messaging.NewDiscord(&messaging.Config{Session: session})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create messenger")
	}

	ranksService, err := ranks.New(&ranks.Config{
		ChannelIDs:        cfg.Discord.RanksChannels,
		ResultsChannelID:  cfg.Discord.ResultsChannel,
		BotUserID:         session.State.User.ID,
		LeaderboardSize:   cfg.Ranks.LeaderboardSize,
		RecoveryScanLimit: cfg.Ranks.RecoveryScanLimit,
		StandingsRepo:     standingsRepo,
		Messenger:         messenger,
		Thresholds:        thresholdsService,
		Clock:             clock.New(),
		UUIDGenerator:     uuid.New(),
		Logger:            logger.With().Str("component", "ranks").Logger(),
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create ranks service")
	}

	// Slash commands
	bot, err := discordHandler.New(&discordHandler.Config{
		Session:       session,
		ApplicationID: cfg.Discord.ApplicationID,
		GuildID:       cfg.Discord.GuildID,
		Logger:        logger.With().Str("component", "discord").Logger(),
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create bot")
	}

	ranksCmd := discordHandler.NewRanksCommand(ranksService, thresholdsService,
		logger.With().Str("command", "ranks").Logger())
	if err := bot.RegisterCommand(ranksCmd); err != nil {
		logger.Fatal().Err(err).Msg("failed to register ranks command")
	}

	if cfg.Discord.AdminRoleID != "" {
		adminCmd, err := discordHandler.NewRanksAdminCommand(&discordHandler.RanksAdminConfig{
			RanksService:      ranksService,
			ThresholdsService: thresholdsService,
			BackendClient:     backendClient,
			Clock:             clock.New(),
			AdminRoleID:       cfg.Discord.AdminRoleID,
			ConfirmTimeout:    cfg.Ranks.ConfirmTimeout,
			Logger:            logger.With().Str("command", "ranksadmin").Logger(),
		})
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to create admin command")
		}
		if err := bot.RegisterCommand(adminCmd); err != nil {
			logger.Fatal().Err(err).Msg("failed to register admin command")
		}
	} else {
		logger.Warn().Msg("no admin role configured, /ranksadmin disabled")
	}
	defer func() {
		if err := bot.Stop(); err != nil {
			logger.Warn().Err(err).Msg("failed to remove commands")
		}
	}()

	// Inbound webhook listener
	apiServer, err := httpapi.New(&httpapi.Config{
		RanksService:  ranksService,
		WebhookSecret: cfg.HTTP.WebhookSecret,
		Logger:        logger.With().Str("component", "httpapi").Logger(),
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create HTTP server")
	}

	httpServer := &http.Server{
		Addr:    cfg.HTTP.Addr,
		Handler: apiServer.Handler(),
	}
	go func() {
		logger.Info().Str("addr", cfg.HTTP.Addr).Msg("HTTP listener started")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("HTTP listener failed")
		}
	}()

	// Startup sequence: best-effort thresholds, recover prior messages,
	// bring every channel current, then open the gate for live updates
	if err := thresholdsService.Refresh(ctx); err != nil {
		logger.Warn().Err(err).Msg("starting with default thresholds")
	}
	if err := ranksService.RecoverMessages(ctx); err != nil {
		logger.Warn().Err(err).Msg("message recovery incomplete")
	}
	if out := ranksService.SyncAll(ctx); out.Failed > 0 {
		logger.Warn().Int("failed", out.Failed).Msg("initial sync had failures")
	}
	ranksService.MarkReady(ctx)
	logger.Info().Msg("bot is running, press CTRL-C to exit")

	// Scheduled refresh keeps the boards current even when nothing pushes
	ticker := time.NewTicker(cfg.Ranks.RefreshInterval)
	defer ticker.Stop()
	go func() {
		for {
			select {
			case <-ticker.C:
				if err := thresholdsService.Refresh(ctx); err != nil {
					logger.Warn().Err(err).Msg("scheduled threshold refresh failed")
				}
				ranksService.SyncAll(ctx)
			case <-ctx.Done():
				return
			}
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info().Msg("shutting down")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Warn().Err(err).Msg("HTTP shutdown failed")
	}
}

package ranks

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/rs/zerolog"

	"github.com/duelcore/rankhound/internal/common/clock"
	"github.com/duelcore/rankhound/internal/common/lock"
	"github.com/duelcore/rankhound/internal/common/uuid"
	"github.com/duelcore/rankhound/internal/messaging"
	"github.com/duelcore/rankhound/internal/models"
	"github.com/duelcore/rankhound/internal/repositories/standings"
	"github.com/duelcore/rankhound/internal/services/thresholds"
)

// service implements the Service interface
type service struct {
	channelIDs        []string
	resultsChannelID  string
	botUserID         string
	leaderboardSize   int
	recoveryScanLimit int

	standingsRepo standings.Repository
	messenger     messaging.Messenger
	thresholds    thresholds.Service
	clock         clock.Clock
	uuidGen       uuid.UUID
	logger        zerolog.Logger

	locks    *lock.KeyedLock
	messages *messageCache
	queue    *admissionQueue
}

// New creates a new rank sync engine
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if len(cfg.ChannelIDs) == 0 {
		return nil, errors.New("at least one leaderboard channel is required")
	}
	if cfg.StandingsRepo == nil {
		return nil, errors.New("standings repository cannot be nil")
	}
	if cfg.Messenger == nil {
		return nil, errors.New("messenger cannot be nil")
	}
	if cfg.Thresholds == nil {
		return nil, errors.New("thresholds service cannot be nil")
	}
	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}
	if cfg.UUIDGenerator == nil {
		return nil, errors.New("uuid generator cannot be nil")
	}

	return &service{
		channelIDs:        cfg.ChannelIDs,
		resultsChannelID:  cfg.ResultsChannelID,
		botUserID:         cfg.BotUserID,
		leaderboardSize:   cfg.LeaderboardSize,
		recoveryScanLimit: cfg.RecoveryScanLimit,
		standingsRepo:     cfg.StandingsRepo,
		messenger:         cfg.Messenger,
		thresholds:        cfg.Thresholds,
		clock:             cfg.Clock,
		uuidGen:           cfg.UUIDGenerator,
		logger:            cfg.Logger,
		locks:             lock.NewKeyedLock(),
		messages:          newMessageCache(),
		queue:             newAdmissionQueue(),
	}, nil
}

// SyncChannel brings one channel's leaderboard message up to date
func (s *service) SyncChannel(ctx context.Context, input *SyncChannelInput) (*SyncChannelOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if input.ChannelID == "" {
		return nil, errors.New("channel ID is required")
	}
	if !slices.Contains(s.channelIDs, input.ChannelID) {
		return nil, ErrUnknownChannel
	}

	var output *SyncChannelOutput
	err := s.locks.WithLock(input.ChannelID, func() error {
		out, err := s.syncLocked(ctx, input.ChannelID)
		output = out
		return err
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// syncLocked does the fetch-render-publish cycle for one channel. The
// caller must hold the channel's lock.
func (s *service) syncLocked(ctx context.Context, channelID string) (*SyncChannelOutput, error) {
	snapshot, err := s.standingsRepo.GetStandings(ctx, &standings.GetStandingsInput{
		Limit: s.leaderboardSize,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch standings: %w", err)
	}

	cfg := s.thresholds.Current()
	content := renderLeaderboard(snapshot.Standings, cfg, s.clock.Now())

	if messageID, ok := s.messages.Get(channelID); ok {
		err := s.messenger.EditMessage(ctx, &messaging.EditMessageInput{
			ChannelID: channelID,
			MessageID: messageID,
			Content:   content,
		})
		if err == nil {
			return &SyncChannelOutput{
				ChannelID: channelID,
				MessageID: messageID,
			}, nil
		}
		if !errors.Is(err, messaging.ErrMessageNotFound) {
			return nil, fmt.Errorf("failed to edit leaderboard message: %w", err)
		}

		// The tracked message was deleted out from under us. Drop the
		// stale ref and fall through to the create path, once.
		s.messages.Clear(channelID)
		s.logger.Warn().
			Str("channel_id", channelID).
			Str("message_id", messageID).
			Msg("tracked leaderboard message is gone, recreating")
	}

	sent, err := s.messenger.SendMessage(ctx, &messaging.SendMessageInput{
		ChannelID: channelID,
		Content:   content,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to post leaderboard message: %w", err)
	}

	s.messages.Set(channelID, sent.MessageID)
	s.logger.Info().
		Str("channel_id", channelID).
		Str("message_id", sent.MessageID).
		Msg("posted new leaderboard message")

	return &SyncChannelOutput{
		ChannelID: channelID,
		MessageID: sent.MessageID,
		Created:   true,
	}, nil
}

// SyncAll syncs every configured channel. Failures are isolated per
// channel so one broken destination never starves the rest.
func (s *service) SyncAll(ctx context.Context) *SyncAllOutput {
	output := &SyncAllOutput{}

	for _, channelID := range s.channelIDs {
		result := &ChannelSyncResult{ChannelID: channelID}

		out, err := s.SyncChannel(ctx, &SyncChannelInput{ChannelID: channelID})
		if err != nil {
			result.Err = err
			output.Failed++
			s.logger.Error().Err(err).
				Str("channel_id", channelID).
				Msg("channel sync failed")
		} else {
			result.MessageID = out.MessageID
			result.Created = out.Created
		}

		output.Results = append(output.Results, result)
	}

	return output
}

// RecoverMessages scans recent history in each configured channel for the
// bot's most recent message and seeds the cache with it. Channels with no
// recoverable message stay uncached and get a fresh message on first sync.
func (s *service) RecoverMessages(ctx context.Context) error {
	for _, channelID := range s.channelIDs {
		recent, err := s.messenger.RecentMessages(ctx, &messaging.RecentMessagesInput{
			ChannelID: channelID,
			Limit:     s.recoveryScanLimit,
		})
		if err != nil {
			// Recovery is best effort, first sync will create a message
			s.logger.Warn().Err(err).
				Str("channel_id", channelID).
				Msg("could not scan channel history for recovery")
			continue
		}

		for _, msg := range recent.Messages {
			if msg.AuthorID != s.botUserID {
				continue
			}
			s.messages.Set(channelID, msg.ID)
			s.logger.Info().
				Str("channel_id", channelID).
				Str("message_id", msg.ID).
				Msg("recovered leaderboard message from channel history")
			break
		}
	}

	return nil
}

// NotifyUpdate admits an externally triggered update, buffering it if the
// engine has not finished starting up
func (s *service) NotifyUpdate(ctx context.Context, input *NotifyUpdateInput) (*NotifyUpdateOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if input.Kind == "" {
		return nil, errors.New("update kind is required")
	}

	update := &models.PendingUpdate{
		ID:         s.uuidGen.NewUUID(),
		Kind:       input.Kind,
		Result:     input.Result,
		EnqueuedAt: s.clock.Now(),
	}

	if s.queue.Admit(update) {
		s.logger.Info().
			Str("update_id", update.ID).
			Str("kind", string(update.Kind)).
			Int("queue_depth", s.queue.Depth()).
			Msg("buffered update, engine not ready")
		return &NotifyUpdateOutput{UpdateID: update.ID, Queued: true}, nil
	}

	syncOut, err := s.processUpdate(ctx, update)
	if err != nil {
		return nil, err
	}

	return &NotifyUpdateOutput{
		UpdateID:   update.ID,
		SyncFailed: syncOut.Failed,
	}, nil
}

// MarkReady flips the engine to ready and replays buffered updates in
// arrival order, each one fully processed before the next starts
func (s *service) MarkReady(ctx context.Context) {
	buffered := s.queue.MarkReady()
	if len(buffered) == 0 {
		return
	}

	s.logger.Info().Int("count", len(buffered)).Msg("draining buffered updates")

	for _, update := range buffered {
		if _, err := s.processUpdate(ctx, update); err != nil {
			s.logger.Error().Err(err).
				Str("update_id", update.ID).
				Str("kind", string(update.Kind)).
				Msg("buffered update failed")
		}
	}
}

// processUpdate announces a match result when one is attached, then runs a
// full sync. The sync always runs, even when the announcement fails.
func (s *service) processUpdate(ctx context.Context, update *models.PendingUpdate) (*SyncAllOutput, error) {
	var announceErr error

	if update.Kind == models.UpdateKindMatchResult && update.Result != nil && s.resultsChannelID != "" {
		_, err := s.messenger.SendMessage(ctx, &messaging.SendMessageInput{
			ChannelID: s.resultsChannelID,
			Content:   renderMatchResult(update.Result),
		})
		if err != nil {
			announceErr = fmt.Errorf("failed to announce match result: %w", err)
			s.logger.Error().Err(err).
				Str("update_id", update.ID).
				Msg("match result announcement failed")
		}
	}

	return s.SyncAll(ctx), announceErr
}

// LookupPlayer resolves one player's standing by steam ID or name. Display
// ranks are assigned over the full snapshot against live thresholds so the
// reported rank always matches what the leaderboard would show.
func (s *service) LookupPlayer(ctx context.Context, input *LookupPlayerInput) (*LookupPlayerOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if input.Query == "" {
		return nil, errors.New("query is required")
	}

	snapshot, err := s.standingsRepo.GetStandings(ctx, &standings.GetStandingsInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch standings: %w", err)
	}

	cfg := s.thresholds.Current()
	models.AssignDisplayRanks(snapshot.Standings, cfg.MinGamesForRank)

	standing := models.FindStanding(snapshot.Standings, input.Query)
	if standing == nil {
		return nil, ErrPlayerNotFound
	}

	return &LookupPlayerOutput{
		Standing: standing,
		Tier:     cfg.TierFor(standing.GamesPlayed),
		KValue:   cfg.KValueFor(standing.GamesPlayed),
	}, nil
}

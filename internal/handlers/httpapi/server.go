// Package httpapi exposes the inbound HTTP surface: a health probe and the
// match-result webhook the rating backend pushes to.
package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/duelcore/rankhound/internal/models"
	"github.com/duelcore/rankhound/internal/services/ranks"
)

// secretHeader carries the shared webhook secret on inbound notifications
const secretHeader = "X-Api-Secret"

// Config holds configuration for the HTTP server
type Config struct {
	// RanksService receives the decoded update notifications
	RanksService ranks.Service

	// WebhookSecret, when set, is required on every match-result request
	WebhookSecret string

	// Logger is the server logger
	Logger zerolog.Logger
}

// Server routes inbound HTTP traffic to the rank sync engine
type Server struct {
	ranksService  ranks.Service
	webhookSecret string
	logger        zerolog.Logger
	router        chi.Router
}

// New creates a new HTTP server
func New(cfg *Config) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.RanksService == nil {
		return nil, errors.New("ranks service cannot be nil")
	}

	s := &Server{
		ranksService:  cfg.RanksService,
		webhookSecret: cfg.WebhookSecret,
		logger:        cfg.Logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealthz)
	r.Post("/internal/match-results", s.handleMatchResult)

	s.router = r
	return s, nil
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// handleMatchResult accepts a pushed match result, or a bare refresh when
// the body is empty, and hands it to the sync engine
func (s *Server) handleMatchResult(w http.ResponseWriter, r *http.Request) {
	if s.webhookSecret != "" && r.Header.Get(secretHeader) != s.webhookSecret {
		s.logger.Warn().Str("remote", r.RemoteAddr).Msg("webhook secret mismatch")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}

	input := &ranks.NotifyUpdateInput{Kind: models.UpdateKindRefresh}
	if len(body) > 0 {
		var result models.MatchResult
		if err := json.Unmarshal(body, &result); err != nil {
			http.Error(w, "invalid match result payload", http.StatusBadRequest)
			return
		}
		input.Kind = models.UpdateKindMatchResult
		input.Result = &result
	}

	output, err := s.ranksService.NotifyUpdate(r.Context(), input)
	if err != nil {
		s.logger.Error().Err(err).Msg("update notification failed")
		http.Error(w, "update failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"update_id": output.UpdateID,
		"queued":    output.Queued,
	})
}

package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/duelcore/rankhound/internal/models"
)

// secretHeader carries the shared secret on every backend request
const secretHeader = "X-Api-Secret"

// Config holds configuration for the HTTP backend client
type Config struct {
	// BaseURL is the backend API root, without a trailing slash
	BaseURL string

	// Secret is the shared secret sent with every request
	Secret string

	// Timeout bounds each request. Zero means 15 seconds.
	Timeout time.Duration

	// HTTPClient overrides the transport, used by tests
	HTTPClient *http.Client
}

// httpClient implements the Client interface over the backend's JSON API
type httpClient struct {
	baseURL string
	secret  string
	client  *http.Client
}

// NewHTTP creates a new HTTP backend client
func NewHTTP(cfg *Config) (*httpClient, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.BaseURL == "" {
		return nil, errors.New("base URL cannot be empty")
	}

	client := cfg.HTTPClient
	if client == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = 15 * time.Second
		}
		client = &http.Client{Timeout: timeout}
	}

	return &httpClient{
		baseURL: cfg.BaseURL,
		secret:  cfg.Secret,
		client:  client,
	}, nil
}

// GetThresholds fetches the current tiering and eligibility parameters
func (c *httpClient) GetThresholds(ctx context.Context) (*models.ThresholdConfig, error) {
	body, err := c.do(ctx, http.MethodGet, "/config/thresholds", nil)
	if err != nil {
		return nil, err
	}

	var cfg models.ThresholdConfig
	if err := json.Unmarshal(body, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode threshold config: %w", err)
	}

	return &cfg, nil
}

// ResetAllRatings resets every player's rating to the floor
func (c *httpClient) ResetAllRatings(ctx context.Context) (*AdminActionOutput, error) {
	return c.adminAction(ctx, "/admin/reset-ratings", nil)
}

// ZeroPlayerRating zeroes one player's rating
func (c *httpClient) ZeroPlayerRating(ctx context.Context, input *ZeroPlayerRatingInput) (*AdminActionOutput, error) {
	if input == nil || input.SteamID == "" {
		return nil, errors.New("input and steam ID cannot be empty")
	}
	path := "/admin/players/" + url.PathEscape(input.SteamID) + "/zero"
	return c.adminAction(ctx, path, nil)
}

// SetPlayerRating sets one player's rating and games count
func (c *httpClient) SetPlayerRating(ctx context.Context, input *SetPlayerRatingInput) (*AdminActionOutput, error) {
	if input == nil || input.SteamID == "" {
		return nil, errors.New("input and steam ID cannot be empty")
	}
	path := "/admin/players/" + url.PathEscape(input.SteamID) + "/rating"
	payload := map[string]int{
		"rating": input.Rating,
	}
	if input.GamesPlayed >= 0 {
		payload["games"] = input.GamesPlayed
	}
	return c.adminAction(ctx, path, payload)
}

// adminAction posts a privileged write and relays the backend's message
func (c *httpClient) adminAction(ctx context.Context, path string, payload any) (*AdminActionOutput, error) {
	body, err := c.do(ctx, http.MethodPost, path, payload)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Message string `json:"message"`
	}
	if len(body) > 0 {
		if err := json.Unmarshal(body, &resp); err != nil {
			return nil, fmt.Errorf("failed to decode admin response: %w", err)
		}
	}

	return &AdminActionOutput{
		Message: resp.Message,
	}, nil
}

func (c *httpClient) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set(secretHeader, c.secret)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("backend request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read backend response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("backend returned %d: %s", resp.StatusCode, string(body))
	}

	return body, nil
}

package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetThresholds(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/config/thresholds", r.URL.Path)
		assert.Equal(t, "sekrit", r.Header.Get("X-Api-Secret"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"min_games_for_rank": 10,
			"min_games_for_tier2": 30,
			"tier_k_values": {"tier1": 40, "tier2": 20, "tier3": 10},
			"rating_floor": 500
		}`))
	}))
	defer srv.Close()

	client, err := NewHTTP(&Config{BaseURL: srv.URL, Secret: "sekrit"})
	require.NoError(t, err)

	cfg, err := client.GetThresholds(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.MinGamesForRank)
	assert.Equal(t, 30, cfg.MinGamesForTier2)
	assert.Equal(t, 40, cfg.TierKValues.Tier1)
	assert.Equal(t, 500, cfg.RatingFloor)
}

func TestGetThresholds_BackendError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client, err := NewHTTP(&Config{BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = client.GetThresholds(context.Background())
	assert.Error(t, err)
}

func TestSetPlayerRating(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/admin/players/7656111/rating", r.URL.Path)

		var payload map[string]int
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, 1500, payload["rating"])
		assert.Equal(t, 42, payload["games"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message": "rating updated"}`))
	}))
	defer srv.Close()

	client, err := NewHTTP(&Config{BaseURL: srv.URL})
	require.NoError(t, err)

	out, err := client.SetPlayerRating(context.Background(), &SetPlayerRatingInput{
		SteamID:     "7656111",
		Rating:      1500,
		GamesPlayed: 42,
	})
	require.NoError(t, err)
	assert.Equal(t, "rating updated", out.Message)
}

func TestSetPlayerRating_OmitsNegativeGames(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]int
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, 1500, payload["rating"])
		_, hasGames := payload["games"]
		assert.False(t, hasGames)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message": "rating updated"}`))
	}))
	defer srv.Close()

	client, err := NewHTTP(&Config{BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = client.SetPlayerRating(context.Background(), &SetPlayerRatingInput{
		SteamID:     "7656111",
		Rating:      1500,
		GamesPlayed: -1,
	})
	require.NoError(t, err)
}

func TestResetAllRatings(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/reset-ratings", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message": "all ratings reset"}`))
	}))
	defer srv.Close()

	client, err := NewHTTP(&Config{BaseURL: srv.URL})
	require.NoError(t, err)

	out, err := client.ResetAllRatings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "all ratings reset", out.Message)
}

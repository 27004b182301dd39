package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/duelcore/rankhound/internal/models"
	"github.com/duelcore/rankhound/internal/services/ranks"
	ranksMocks "github.com/duelcore/rankhound/internal/services/ranks/mocks"
)

func newTestServer(t *testing.T, secret string) (*Server, *ranksMocks.MockService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockRanks := ranksMocks.NewMockService(ctrl)

	srv, err := New(&Config{
		RanksService:  mockRanks,
		WebhookSecret: secret,
		Logger:        zerolog.Nop(),
	})
	require.NoError(t, err)
	return srv, mockRanks
}

func TestHealthz(t *testing.T) {
	srv, _ := newTestServer(t, "")

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestMatchResultDeliversPayload(t *testing.T) {
	srv, mockRanks := newTestServer(t, "")

	mockRanks.EXPECT().
		NotifyUpdate(gomock.Any(), &ranks.NotifyUpdateInput{
			Kind: models.UpdateKindMatchResult,
			Result: &models.MatchResult{
				WinnerSteamID: "7656111",
				WinnerName:    "Aldric",
				WinnerRating:  1523,
				WinnerDelta:   16,
				LoserSteamID:  "7656222",
				LoserName:     "Bryn",
				LoserRating:   1489,
				LoserDelta:    -16,
			},
		}).
		Return(&ranks.NotifyUpdateOutput{UpdateID: "update-1"}, nil)

	body := `{
		"winner_steam_id": "7656111", "winner_name": "Aldric",
		"winner_rating": 1523, "winner_delta": 16,
		"loser_steam_id": "7656222", "loser_name": "Bryn",
		"loser_rating": 1489, "loser_delta": -16
	}`
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/internal/match-results", strings.NewReader(body)))

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Contains(t, rec.Body.String(), "update-1")
}

func TestMatchResultEmptyBodyIsRefresh(t *testing.T) {
	srv, mockRanks := newTestServer(t, "")

	mockRanks.EXPECT().
		NotifyUpdate(gomock.Any(), &ranks.NotifyUpdateInput{Kind: models.UpdateKindRefresh}).
		Return(&ranks.NotifyUpdateOutput{UpdateID: "update-2", Queued: true}, nil)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/internal/match-results", nil))

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Contains(t, rec.Body.String(), `"queued":true`)
}

func TestMatchResultRejectsBadSecret(t *testing.T) {
	srv, _ := newTestServer(t, "sekrit")

	req := httptest.NewRequest(http.MethodPost, "/internal/match-results", nil)
	req.Header.Set("X-Api-Secret", "wrong")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMatchResultAcceptsGoodSecret(t *testing.T) {
	srv, mockRanks := newTestServer(t, "sekrit")

	mockRanks.EXPECT().
		NotifyUpdate(gomock.Any(), gomock.Any()).
		Return(&ranks.NotifyUpdateOutput{UpdateID: "update-3"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/internal/match-results", nil)
	req.Header.Set("X-Api-Secret", "sekrit")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestMatchResultRejectsMalformedJSON(t *testing.T) {
	srv, _ := newTestServer(t, "")

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/internal/match-results", strings.NewReader("{not json")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

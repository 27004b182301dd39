package ranks

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duelcore/rankhound/internal/models"
)

var renderTestThresholds = models.ThresholdConfig{
	MinGamesForRank:  5,
	MinGamesForTier2: 30,
	TierKValues:      models.TierKValues{Tier1: 40, Tier2: 20, Tier3: 10},
	RatingFloor:      500,
}

func renderTestTime() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

// numberedLines extracts the rank rows from a rendered document
func numberedLines(doc string) []string {
	var rows []string
	for _, line := range strings.Split(doc, "\n") {
		if strings.HasPrefix(line, "`") {
			rows = append(rows, line)
		}
	}
	return rows
}

func TestRenderLeaderboardSkipsIneligiblePlayers(t *testing.T) {
	standings := []*models.PlayerStanding{
		{SteamID: "s1", Name: "Aldric", Rating: 1500, GamesPlayed: 20, AbsoluteRank: 1},
		{SteamID: "s2", Name: "Bryn", Rating: 1400, GamesPlayed: 2, AbsoluteRank: 2},
		{SteamID: "s3", Name: "Caspar", Rating: 1300, GamesPlayed: 10, AbsoluteRank: 3},
	}

	doc := renderLeaderboard(standings, renderTestThresholds, renderTestTime())

	rows := numberedLines(doc)
	require.Len(t, rows, 2)

	// Bryn has 2 games against a threshold of 5 and gets no row. Caspar
	// takes the dense rank 2 with no gap.
	assert.Contains(t, rows[0], "  1.")
	assert.Contains(t, rows[0], "Aldric")
	assert.Contains(t, rows[1], "  2.")
	assert.Contains(t, rows[1], "Caspar")
	assert.NotContains(t, doc, "Bryn")
}

func TestRenderLeaderboardNationalityTag(t *testing.T) {
	standings := []*models.PlayerStanding{
		{SteamID: "s1", Name: "Aldric", Rating: 1500, NationalityTag: "UK", GamesPlayed: 20},
		{SteamID: "s2", Name: "Caspar", Rating: 1300, GamesPlayed: 10},
	}

	doc := renderLeaderboard(standings, renderTestThresholds, renderTestTime())

	assert.Contains(t, doc, "**Aldric** [UK]")
	assert.Contains(t, doc, "**Caspar** ·")
	assert.NotContains(t, doc, "Caspar** [")
}

func TestRenderLeaderboardEmptySnapshot(t *testing.T) {
	doc := renderLeaderboard(nil, renderTestThresholds, renderTestTime())

	assert.Contains(t, doc, "No ranked players yet")
	assert.Empty(t, numberedLines(doc))
}

func TestRenderLeaderboardFooter(t *testing.T) {
	doc := renderLeaderboard(nil, renderTestThresholds, renderTestTime())

	// Relative platform timestamp plus the live threshold values.
	assert.Contains(t, doc, fmt.Sprintf("<t:%d:R>", renderTestTime().Unix()))
	assert.Contains(t, doc, "after 5 rated duels")
	assert.Contains(t, doc, "start at 500")
}

func TestRenderLeaderboardFitsPlatformLimit(t *testing.T) {
	standings := make([]*models.PlayerStanding, 0, 50)
	for i := 0; i < 50; i++ {
		standings = append(standings, &models.PlayerStanding{
			SteamID:        fmt.Sprintf("7656119%011d", i),
			Name:           fmt.Sprintf("Duelist%02d", i),
			Rating:         2000 - i,
			NationalityTag: "DE",
			GamesPlayed:    100,
		})
	}

	doc := renderLeaderboard(standings, renderTestThresholds, renderTestTime())

	assert.LessOrEqual(t, len(doc), 2000)
	assert.Len(t, numberedLines(doc), 50)
}

func TestRenderLeaderboardFitsPlatformLimitWithWorstCaseNames(t *testing.T) {
	// Steam persona names run up to 32 characters. With 50 of them the
	// raw document would be well past the message limit; the renderer
	// must truncate names and drop trailing rows rather than produce an
	// undeliverable message.
	standings := make([]*models.PlayerStanding, 0, 50)
	for i := 0; i < 50; i++ {
		standings = append(standings, &models.PlayerStanding{
			SteamID:        fmt.Sprintf("7656119%011d", i),
			Name:           fmt.Sprintf("%s%02d", strings.Repeat("x", 30), i),
			Rating:         2000 - i,
			NationalityTag: "DE",
			GamesPlayed:    100,
		})
	}

	doc := renderLeaderboard(standings, renderTestThresholds, renderTestTime())

	assert.LessOrEqual(t, len(doc), 2000)
	rows := numberedLines(doc)
	assert.NotEmpty(t, rows)
	// Footer survives even when rows are dropped.
	assert.Contains(t, doc, "rated duels")
}

func TestRenderLeaderboardTruncatesLongNames(t *testing.T) {
	longName := strings.Repeat("A", 32)
	standings := []*models.PlayerStanding{
		{SteamID: "s1", Name: longName, Rating: 1500, GamesPlayed: 20},
	}

	doc := renderLeaderboard(standings, renderTestThresholds, renderTestTime())

	assert.NotContains(t, doc, longName)
	assert.Contains(t, doc, strings.Repeat("A", 23)+"…")
}

func TestRenderMatchResult(t *testing.T) {
	doc := renderMatchResult(&models.MatchResult{
		WinnerName:   "Aldric",
		WinnerRating: 1523,
		WinnerDelta:  16,
		LoserName:    "Bryn",
		LoserRating:  1489,
		LoserDelta:   -16,
	})

	assert.Contains(t, doc, "**Aldric** (1523, +16)")
	assert.Contains(t, doc, "defeated")
	assert.Contains(t, doc, "**Bryn** (1489, -16)")
}

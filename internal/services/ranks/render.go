package ranks

import (
	"fmt"
	"strings"
	"time"

	"github.com/duelcore/rankhound/internal/models"
)

const (
	// messageCharLimit is the Discord single-message size limit. The
	// builder counts bytes, which never undercounts characters.
	messageCharLimit = 2000

	// maxNameLength caps a player name's runes in a leaderboard row
	maxNameLength = 24
)

// truncateName shortens a display name to maxNameLength runes
func truncateName(name string) string {
	runes := []rune(name)
	if len(runes) <= maxNameLength {
		return name
	}
	return string(runes[:maxNameLength-1]) + "…"
}

// renderLeaderboard builds the full leaderboard document for one channel.
// Only players meeting the eligibility threshold get a row; ranks are
// dense and assigned fresh on every render. Names are truncated and rows
// stop before the document would cross the platform message limit, so the
// result is always deliverable. The timestamp uses the platform's
// relative format so it stays readable between syncs.
func renderLeaderboard(standings []*models.PlayerStanding, cfg models.ThresholdConfig, now time.Time) string {
	var footer strings.Builder
	fmt.Fprintf(&footer, "\n*Updated <t:%d:R>*\n", now.Unix())
	fmt.Fprintf(&footer, "*Players are ranked after %d rated duels. New players start at %d.*\n",
		cfg.MinGamesForRank, cfg.RatingFloor)

	var b strings.Builder
	b.WriteString("**:crossed_swords: Duel Rankings**\n\n")

	rank := 0
	rows := 0
	for _, s := range standings {
		if s.GamesPlayed < cfg.MinGamesForRank {
			continue
		}
		rank++

		row := fmt.Sprintf("`%3d.` **%s**", rank, truncateName(s.Name))
		if s.NationalityTag != "" {
			row += fmt.Sprintf(" [%s]", s.NationalityTag)
		}
		row += fmt.Sprintf(" · %d\n", s.Rating)

		if b.Len()+len(row)+footer.Len() > messageCharLimit {
			break
		}
		b.WriteString(row)
		rows++
	}

	if rows == 0 {
		b.WriteString("*No ranked players yet.*\n")
	}

	b.WriteString(footer.String())
	return b.String()
}

// renderMatchResult builds the one-line announcement for a finished duel
func renderMatchResult(result *models.MatchResult) string {
	return fmt.Sprintf(":crossed_swords: **%s** (%d, %+d) defeated **%s** (%d, %+d)",
		result.WinnerName, result.WinnerRating, result.WinnerDelta,
		result.LoserName, result.LoserRating, result.LoserDelta)
}

package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/duelcore/rankhound/internal/models"
)

// formatPlayerFields builds the embed fields for a player lookup reply
func formatPlayerFields(standing *models.PlayerStanding, tier models.Tier, kValue, minGamesForRank int) []*discordgo.MessageEmbedField {
	rankValue := "Unranked"
	if standing.Ranked() {
		rankValue = fmt.Sprintf("#%d", standing.DisplayRank)
	} else if remaining := minGamesForRank - standing.GamesPlayed; remaining > 0 {
		rankValue = fmt.Sprintf("Unranked (%d more duels to place)", remaining)
	}

	fields := []*discordgo.MessageEmbedField{
		{
			Name:   "Rank",
			Value:  rankValue,
			Inline: true,
		},
		{
			Name:   "Rating",
			Value:  fmt.Sprintf("%d", standing.Rating),
			Inline: true,
		},
		{
			Name:   "Duels",
			Value:  fmt.Sprintf("%d", standing.GamesPlayed),
			Inline: true,
		},
		{
			Name:   "Tier",
			Value:  fmt.Sprintf("%s (K=%d)", tier, kValue),
			Inline: true,
		},
	}

	if standing.NationalityTag != "" {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Nationality",
			Value:  standing.NationalityTag,
			Inline: true,
		})
	}

	return fields
}

// formatPlayerTitle builds the embed title for a player lookup reply
func formatPlayerTitle(standing *models.PlayerStanding) string {
	var b strings.Builder
	b.WriteString(standing.Name)
	if standing.NationalityTag != "" {
		fmt.Fprintf(&b, " [%s]", standing.NationalityTag)
	}
	return b.String()
}

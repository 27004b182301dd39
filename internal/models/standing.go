package models

import "strings"

// PlayerStanding represents one player's position in the rankings at a
// single fetch instant
type PlayerStanding struct {
	// SteamID is the unique identifier of the player on the game server
	SteamID string

	// Name is the display name from the player's latest rating record
	Name string

	// Rating is the player's current rating
	Rating int

	// NationalityTag is an optional country tag, empty when the player
	// never set one
	NationalityTag string

	// GamesPlayed is the number of rated duels the player has completed
	GamesPlayed int

	// AbsoluteRank is the player's position counted over all players,
	// eligible or not, 1-based
	AbsoluteRank int

	// DisplayRank is the dense rank counted only over eligible players.
	// Zero when the player is unranked.
	DisplayRank int
}

// Ranked reports whether the standing carries a display rank
func (s *PlayerStanding) Ranked() bool {
	return s.DisplayRank > 0
}

// AssignDisplayRanks walks an ordered snapshot and assigns dense display
// ranks to players meeting the minimum games threshold. Players below the
// threshold keep DisplayRank zero. The slice must already be ordered by
// rating descending.
func AssignDisplayRanks(standings []*PlayerStanding, minGamesForRank int) {
	rank := 0
	for _, s := range standings {
		if s.GamesPlayed >= minGamesForRank {
			rank++
			s.DisplayRank = rank
		} else {
			s.DisplayRank = 0
		}
	}
}

// FindStanding searches an ordered snapshot for a player by steam ID or
// case-insensitive name. Returns nil when no player matches.
func FindStanding(standings []*PlayerStanding, query string) *PlayerStanding {
	for _, s := range standings {
		if s.SteamID == query {
			return s
		}
	}
	for _, s := range standings {
		if strings.EqualFold(s.Name, query) {
			return s
		}
	}
	return nil
}

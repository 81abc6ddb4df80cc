package mlb

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/ahump20/blaze-sports-intel/services/edge-api/internal/providers"
	"github.com/ahump20/blaze-sports-intel/services/edge-api/pkg/models"
)

// Defaults for missing upstream fields. The MLB Stats API omits fields
// freely, so every mapped value has a concrete fallback.
const (
	unknownName   = "Unknown"
	unknownAbbr   = "UNK"
	defaultLeague = "AL"
	defaultDiv    = "E"
)

func stringOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// parsePct parses a winning percentage like ".602"; unparsable or
// non-finite input maps to 0, never NaN.
func parsePct(raw string) float64 {
	parsed, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return 0
	}
	return parsed
}

// splitFullName splits a roster full name on the first space: the first
// token is the first name, everything after it the last name.
func splitFullName(full string) (first, last string) {
	first, last, _ = strings.Cut(full, " ")
	return first, last
}

func mapStandings(data standingsResponse, season int, asOf time.Time) []models.Standing {
	standings := make([]models.Standing, 0, len(data.Records))
	for _, record := range data.Records {
		league := stringOr(record.League.NameCode, defaultLeague)
		division := stringOr(record.Division.Abbreviation, defaultDiv)

		teams := make([]models.TeamRecord, 0, len(record.TeamRecords))
		for _, tr := range record.TeamRecords {
			teams = append(teams, models.TeamRecord{
				ID:        tr.Team.ID,
				Name:      stringOr(tr.Team.Name, unknownName),
				Abbr:      stringOr(tr.Team.Abbreviation, unknownAbbr),
				League:    league,
				Division:  division,
				Wins:      tr.Wins,
				Losses:    tr.Losses,
				Pct:       parsePct(tr.WinningPercentage),
				GamesBack: tr.GamesBack,
			})
		}

		standings = append(standings, models.Standing{
			League:   league,
			Division: division,
			Teams:    teams,
			Season:   season,
			AsOf:     asOf.UTC().Format(time.RFC3339),
		})
	}
	return standings
}

// mapSchedule flattens the nested date->games structure into one ordered
// list, preserving upstream order.
func mapSchedule(data scheduleResponse) []models.Game {
	games := make([]models.Game, 0)
	for _, date := range data.Dates {
		for _, g := range date.Games {
			games = append(games, models.Game{
				GamePk:     g.GamePk,
				Date:       g.GameDate,
				Status:     stringOr(g.Status.DetailedState, unknownName),
				HomeTeamID: g.Teams.Home.Team.ID,
				AwayTeamID: g.Teams.Away.Team.ID,
				HomeScore:  g.Teams.Home.Score,
				AwayScore:  g.Teams.Away.Score,
			})
		}
	}
	return games
}

func mapTeamSummary(team teamInfo) models.TeamSummary {
	return models.TeamSummary{
		ID:       team.ID,
		Name:     stringOr(team.Name, unknownName),
		Abbr:     stringOr(team.Abbreviation, unknownAbbr),
		League:   stringOr(team.League.NameCode, defaultLeague),
		Division: stringOr(team.Division.Abbreviation, defaultDiv),
	}
}

func mapTeamWithRoster(teamData teamsResponse, rosterData rosterResponse) *models.TeamWithRoster {
	var team teamInfo
	if len(teamData.Teams) > 0 {
		team = teamData.Teams[0]
	}

	roster := make([]models.PlayerBasic, 0, len(rosterData.Roster))
	for _, member := range rosterData.Roster {
		first, last := splitFullName(member.Person.FullName)
		roster = append(roster, models.PlayerBasic{
			ID:              member.Person.ID,
			FirstName:       first,
			LastName:        last,
			PrimaryNumber:   member.JerseyNumber,
			PrimaryPosition: member.Position.Abbreviation,
			CurrentTeamID:   team.ID,
		})
	}

	return &models.TeamWithRoster{
		Team:   mapTeamSummary(team),
		Roster: roster,
	}
}

// mapPlayer builds the profile plus one stats entry per season per stat
// category. seasonFilter of 0 keeps every season. An empty people list is
// a missing player.
func mapPlayer(data playerResponse, seasonFilter int) (*models.PlayerProfile, error) {
	if len(data.People) == 0 {
		return nil, fmt.Errorf("mlb: %w", providers.ErrPlayerNotFound)
	}
	p := data.People[0]

	profile := models.PlayerBasic{
		ID:              p.ID,
		FirstName:       p.FirstName,
		LastName:        p.LastName,
		PrimaryNumber:   p.PrimaryNumber,
		PrimaryPosition: p.PrimaryPosition.Abbreviation,
		CurrentTeamID:   p.CurrentTeam.ID,
	}

	seasons := make([]models.PlayerSeasonStats, 0)
	for _, group := range p.Stats {
		for _, split := range group.Splits {
			season, _ := strconv.Atoi(split.Season)
			if seasonFilter > 0 && season != seasonFilter {
				continue
			}
			if split.Stat == nil {
				continue
			}

			switch group.Group.DisplayName {
			case "hitting":
				seasons = append(seasons, models.PlayerSeasonStats{
					Season:  season,
					Batting: mapBatting(split.Stat),
				})
			case "pitching":
				seasons = append(seasons, models.PlayerSeasonStats{
					Season:   season,
					Pitching: mapPitching(split.Stat),
				})
			}
		}
	}

	return &models.PlayerProfile{Profile: profile, Seasons: seasons}, nil
}

func mapBatting(stat *statLine) *models.BattingStats {
	return &models.BattingStats{
		GamesPlayed: int(stat.GamesPlayed),
		AtBats:      int(stat.AtBats),
		Runs:        int(stat.Runs),
		Hits:        int(stat.Hits),
		Doubles:     int(stat.Doubles),
		Triples:     int(stat.Triples),
		HomeRuns:    int(stat.HomeRuns),
		RBI:         int(stat.RBI),
		BaseOnBalls: int(stat.BaseOnBalls),
		StrikeOuts:  int(stat.StrikeOuts),
		StolenBases: int(stat.StolenBases),
		Avg:         float64(stat.Avg),
		Obp:         float64(stat.Obp),
		Slg:         float64(stat.Slg),
		Ops:         float64(stat.Ops),
	}
}

func mapPitching(stat *statLine) *models.PitchingStats {
	return &models.PitchingStats{
		GamesPlayed:    int(stat.GamesPlayed),
		GamesStarted:   int(stat.GamesStarted),
		Wins:           int(stat.Wins),
		Losses:         int(stat.Losses),
		Saves:          int(stat.Saves),
		InningsPitched: float64(stat.InningsPitched),
		ERA:            float64(stat.ERA),
		WHIP:           float64(stat.WHIP),
		StrikeOuts:     int(stat.StrikeOuts),
		BaseOnBalls:    int(stat.BaseOnBalls),
		Hits:           int(stat.Hits),
		HomeRuns:       int(stat.HomeRuns),
	}
}

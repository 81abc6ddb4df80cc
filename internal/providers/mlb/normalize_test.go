package mlb

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/ahump20/blaze-sports-intel/services/edge-api/internal/providers"
)

func TestParsePct(t *testing.T) {
	cases := []struct {
		raw  string
		want float64
	}{
		{".602", 0.602},
		{"0.500", 0.5},
		{"", 0},
		{"-", 0},
		{"not-a-number", 0},
	}
	for _, tc := range cases {
		if got := parsePct(tc.raw); got != tc.want {
			t.Errorf("parsePct(%q) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}

func TestSplitFullName(t *testing.T) {
	first, last := splitFullName("Jane Q Public")
	if first != "Jane" || last != "Q Public" {
		t.Fatalf("splitFullName = %q, %q", first, last)
	}

	first, last = splitFullName("Ichiro")
	if first != "Ichiro" || last != "" {
		t.Fatalf("single-token name = %q, %q", first, last)
	}
}

func TestMapStandingsDefaultsMissingFields(t *testing.T) {
	payload := standingsResponse{
		Records: []leagueRecord{{
			TeamRecords: []teamStandingRecord{{
				Wins:   10,
				Losses: 5,
				// team block and winningPercentage absent upstream
			}},
		}},
	}

	asOf := time.Date(2024, 8, 30, 18, 0, 0, 0, time.UTC)
	standings := mapStandings(payload, 2024, asOf)

	if len(standings) != 1 {
		t.Fatalf("expected 1 standing, got %d", len(standings))
	}
	s := standings[0]
	if s.League != "AL" || s.Division != "E" {
		t.Fatalf("unexpected league/division %s/%s", s.League, s.Division)
	}
	if s.AsOf != "2024-08-30T18:00:00Z" {
		t.Fatalf("unexpected asOf %s", s.AsOf)
	}

	team := s.Teams[0]
	if team.Name != "Unknown" || team.Abbr != "UNK" || team.ID != 0 {
		t.Fatalf("missing team fields not defaulted: %+v", team)
	}
	if team.Pct != 0 {
		t.Fatalf("missing winningPercentage must map to 0, got %v", team.Pct)
	}
	if team.Wins != 10 || team.Losses != 5 {
		t.Fatalf("wins/losses dropped: %+v", team)
	}
}

func TestMapScheduleFlattensAndPreservesOrder(t *testing.T) {
	var payload scheduleResponse
	raw := `{"dates":[
		{"games":[{"gamePk":1,"gameDate":"2024-08-30T17:05:00Z","status":{"detailedState":"Final"},
			"teams":{"home":{"team":{"id":158},"score":4},"away":{"team":{"id":112},"score":2}}}]},
		{"games":[{"gamePk":2,"gameDate":"2024-08-31T17:05:00Z"}]}
	]}`
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		t.Fatalf("fixture: %v", err)
	}

	games := mapSchedule(payload)
	if len(games) != 2 {
		t.Fatalf("expected 2 games, got %d", len(games))
	}
	if games[0].GamePk != 1 || games[1].GamePk != 2 {
		t.Fatalf("upstream order not preserved: %+v", games)
	}
	if games[0].HomeTeamID != 158 || games[0].AwayTeamID != 112 {
		t.Fatalf("unexpected team ids %+v", games[0])
	}
	if games[0].HomeScore == nil || *games[0].HomeScore != 4 {
		t.Fatalf("home score lost: %+v", games[0])
	}

	// second game has no teams block upstream
	if games[1].HomeTeamID != 0 || games[1].AwayTeamID != 0 {
		t.Fatalf("missing team ids must default to 0: %+v", games[1])
	}
	if games[1].HomeScore != nil || games[1].AwayScore != nil {
		t.Fatalf("missing scores must stay absent: %+v", games[1])
	}
	if games[1].Status != "Unknown" {
		t.Fatalf("missing status must default to Unknown, got %q", games[1].Status)
	}
}

func TestMapTeamWithRosterSplitsNames(t *testing.T) {
	teamData := teamsResponse{Teams: []teamInfo{{ID: 158, Name: "Milwaukee Brewers", Abbreviation: "MIL"}}}

	var rosterData rosterResponse
	raw := `{"roster":[{"person":{"id":661,"fullName":"Jane Q Public"},"jerseyNumber":"22"}]}`
	if err := json.Unmarshal([]byte(raw), &rosterData); err != nil {
		t.Fatalf("fixture: %v", err)
	}

	got := mapTeamWithRoster(teamData, rosterData)
	if got.Team.ID != 158 || got.Team.Abbr != "MIL" {
		t.Fatalf("unexpected team %+v", got.Team)
	}
	player := got.Roster[0]
	if player.FirstName != "Jane" || player.LastName != "Q Public" {
		t.Fatalf("name split wrong: %+v", player)
	}
	if player.CurrentTeamID != 158 {
		t.Fatalf("roster member not linked to team: %+v", player)
	}
}

func TestMapPlayerEmptyPeopleIsNotFound(t *testing.T) {
	_, err := mapPlayer(playerResponse{}, 0)
	if !errors.Is(err, providers.ErrPlayerNotFound) {
		t.Fatalf("expected ErrPlayerNotFound, got %v", err)
	}
}

func TestMapPlayerBuildsSeasonBlocks(t *testing.T) {
	var payload playerResponse
	raw := `{"people":[{
		"id": 660271, "firstName": "Shohei", "lastName": "Ohtani",
		"primaryNumber": "17",
		"stats": [
			{"group":{"displayName":"hitting"},"splits":[
				{"season":"2023","stat":{"gamesPlayed":135,"homeRuns":44,"avg":".304","ops":"1.066"}},
				{"season":"2024","stat":{"gamesPlayed":150,"homeRuns":54,"avg":".310"}}
			]},
			{"group":{"displayName":"pitching"},"splits":[
				{"season":"2023","stat":{"gamesStarted":23,"wins":10,"era":"3.14","inningsPitched":"132.0"}}
			]},
			{"group":{"displayName":"fielding"},"splits":[
				{"season":"2023","stat":{"gamesPlayed":1}}
			]}
		]
	}]}`
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		t.Fatalf("fixture: %v", err)
	}

	profile, err := mapPlayer(payload, 0)
	if err != nil {
		t.Fatalf("mapPlayer: %v", err)
	}
	if profile.Profile.FirstName != "Shohei" || profile.Profile.PrimaryNumber != "17" {
		t.Fatalf("unexpected profile %+v", profile.Profile)
	}
	// fielding groups are ignored: 2 hitting + 1 pitching
	if len(profile.Seasons) != 3 {
		t.Fatalf("expected 3 season entries, got %d", len(profile.Seasons))
	}

	batting2023 := profile.Seasons[0]
	if batting2023.Season != 2023 || batting2023.Batting == nil || batting2023.Pitching != nil {
		t.Fatalf("unexpected first entry %+v", batting2023)
	}
	if batting2023.Batting.HomeRuns != 44 || batting2023.Batting.Avg != 0.304 {
		t.Fatalf("unexpected batting line %+v", batting2023.Batting)
	}
	// absent stat fields stay numeric zero
	if batting2023.Batting.StolenBases != 0 {
		t.Fatalf("missing stat should be 0, got %d", batting2023.Batting.StolenBases)
	}

	pitching2023 := profile.Seasons[2]
	if pitching2023.Pitching == nil || pitching2023.Pitching.ERA != 3.14 {
		t.Fatalf("unexpected pitching entry %+v", pitching2023)
	}
}

func TestMapPlayerSeasonFilter(t *testing.T) {
	var payload playerResponse
	raw := `{"people":[{"id":1,"stats":[
		{"group":{"displayName":"hitting"},"splits":[
			{"season":"2023","stat":{"hits":100}},
			{"season":"2024","stat":{"hits":120}}
		]}
	]}]}`
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		t.Fatalf("fixture: %v", err)
	}

	profile, err := mapPlayer(payload, 2024)
	if err != nil {
		t.Fatalf("mapPlayer: %v", err)
	}
	if len(profile.Seasons) != 1 || profile.Seasons[0].Season != 2024 {
		t.Fatalf("season filter failed: %+v", profile.Seasons)
	}
	if profile.Seasons[0].Batting.Hits != 120 {
		t.Fatalf("unexpected hits %d", profile.Seasons[0].Batting.Hits)
	}
}

func TestStatNumberToleratesStringsAndGarbage(t *testing.T) {
	var line statLine
	raw := `{"hits": 10, "avg": ".302", "era": "-", "whip": null}`
	if err := json.Unmarshal([]byte(raw), &line); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if line.Hits != 10 || line.Avg != 0.302 {
		t.Fatalf("unexpected values %+v", line)
	}
	if line.ERA != 0 || line.WHIP != 0 {
		t.Fatalf("garbage stats must map to 0: era=%v whip=%v", line.ERA, line.WHIP)
	}
}

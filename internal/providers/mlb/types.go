package mlb

import (
	"strconv"
	"strings"
)

const providerName = "MLB"

// statNumber decodes MLB stat fields that arrive as either JSON numbers
// or strings ("123", ".302", "-"). Anything unparsable becomes 0 so
// normalized stats are always numeric.
type statNumber float64

func (n *statNumber) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*n = 0
		return nil
	}
	parsed, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*n = 0
		return nil
	}
	*n = statNumber(parsed)
	return nil
}

type standingsResponse struct {
	Records []leagueRecord `json:"records"`
}

type leagueRecord struct {
	League struct {
		NameCode string `json:"nameCode"`
	} `json:"league"`
	Division struct {
		Abbreviation string `json:"abbreviation"`
	} `json:"division"`
	TeamRecords []teamStandingRecord `json:"teamRecords"`
}

type teamStandingRecord struct {
	Team struct {
		ID           int    `json:"id"`
		Name         string `json:"name"`
		Abbreviation string `json:"abbreviation"`
	} `json:"team"`
	Wins              int    `json:"wins"`
	Losses            int    `json:"losses"`
	WinningPercentage string `json:"winningPercentage"`
	GamesBack         string `json:"gamesBack"`
}

type scheduleResponse struct {
	Dates []struct {
		Games []scheduleGame `json:"games"`
	} `json:"dates"`
}

type scheduleGame struct {
	GamePk   int    `json:"gamePk"`
	GameDate string `json:"gameDate"`
	Status   struct {
		DetailedState string `json:"detailedState"`
	} `json:"status"`
	Teams struct {
		Home scheduleSide `json:"home"`
		Away scheduleSide `json:"away"`
	} `json:"teams"`
}

type scheduleSide struct {
	Team struct {
		ID int `json:"id"`
	} `json:"team"`
	Score *int `json:"score"`
}

type teamsResponse struct {
	Teams []teamInfo `json:"teams"`
}

type teamInfo struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	League       struct {
		NameCode string `json:"nameCode"`
	} `json:"league"`
	Division struct {
		Abbreviation string `json:"abbreviation"`
	} `json:"division"`
}

type rosterResponse struct {
	Roster []rosterMember `json:"roster"`
}

type rosterMember struct {
	Person struct {
		ID       int    `json:"id"`
		FullName string `json:"fullName"`
	} `json:"person"`
	JerseyNumber string `json:"jerseyNumber"`
	Position     struct {
		Abbreviation string `json:"abbreviation"`
	} `json:"position"`
}

type playerResponse struct {
	People []person `json:"people"`
}

type person struct {
	ID              int    `json:"id"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	PrimaryNumber   string `json:"primaryNumber"`
	PrimaryPosition struct {
		Abbreviation string `json:"abbreviation"`
	} `json:"primaryPosition"`
	CurrentTeam struct {
		ID int `json:"id"`
	} `json:"currentTeam"`
	Stats []statGroup `json:"stats"`
}

type statGroup struct {
	Group struct {
		DisplayName string `json:"displayName"`
	} `json:"group"`
	Splits []statSplit `json:"splits"`
}

type statSplit struct {
	Season string    `json:"season"`
	Stat   *statLine `json:"stat"`
}

type statLine struct {
	GamesPlayed    statNumber `json:"gamesPlayed"`
	GamesStarted   statNumber `json:"gamesStarted"`
	Wins           statNumber `json:"wins"`
	Losses         statNumber `json:"losses"`
	Saves          statNumber `json:"saves"`
	InningsPitched statNumber `json:"inningsPitched"`
	ERA            statNumber `json:"era"`
	WHIP           statNumber `json:"whip"`
	StrikeOuts     statNumber `json:"strikeOuts"`
	BaseOnBalls    statNumber `json:"baseOnBalls"`
	Hits           statNumber `json:"hits"`
	HomeRuns       statNumber `json:"homeRuns"`
	AtBats         statNumber `json:"atBats"`
	Runs           statNumber `json:"runs"`
	Doubles        statNumber `json:"doubles"`
	Triples        statNumber `json:"triples"`
	RBI            statNumber `json:"rbi"`
	StolenBases    statNumber `json:"stolenBases"`
	Avg            statNumber `json:"avg"`
	Obp            statNumber `json:"obp"`
	Slg            statNumber `json:"slg"`
	Ops            statNumber `json:"ops"`
}

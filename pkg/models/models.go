package models

// TeamRecord is one team's row within a league/division standing.
type TeamRecord struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Abbr      string  `json:"abbr"`
	League    string  `json:"league"`
	Division  string  `json:"division"`
	Wins      int     `json:"wins"`
	Losses    int     `json:"losses"`
	Pct       float64 `json:"pct"`
	GamesBack string  `json:"gb,omitempty"`
}

// Standing groups team records by league and division for one season.
// AsOf records when the upstream payload was normalized.
type Standing struct {
	League   string       `json:"league"`
	Division string       `json:"division"`
	Teams    []TeamRecord `json:"teams"`
	Season   int          `json:"season"`
	AsOf     string       `json:"asOf"`
}

// Game is a single scheduled or completed game. Team IDs are always
// concrete ints so consumers never see null identifiers; scores are
// omitted until the game has them.
type Game struct {
	GamePk     int    `json:"gamePk"`
	Date       string `json:"date"`
	Status     string `json:"status"`
	HomeTeamID int    `json:"homeTeamId"`
	AwayTeamID int    `json:"awayTeamId"`
	HomeScore  *int   `json:"homeScore,omitempty"`
	AwayScore  *int   `json:"awayScore,omitempty"`
}

// TeamSummary is the lightweight team shape used by list endpoints.
type TeamSummary struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Abbr     string `json:"abbr"`
	League   string `json:"league"`
	Division string `json:"division"`
}

// PlayerBasic is the roster/profile view of a player.
type PlayerBasic struct {
	ID              int    `json:"id"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	PrimaryNumber   string `json:"primaryNumber,omitempty"`
	PrimaryPosition string `json:"primaryPosition,omitempty"`
	CurrentTeamID   int    `json:"currentTeamId,omitempty"`
}

// TeamWithRoster pairs team metadata with its normalized roster.
type TeamWithRoster struct {
	Team   TeamSummary   `json:"team"`
	Roster []PlayerBasic `json:"roster"`
}

// BattingStats is one season's hitting line. Every field is numeric and
// zero-defaulted so consumers can assume totals are always present.
type BattingStats struct {
	GamesPlayed int     `json:"gamesPlayed"`
	AtBats      int     `json:"atBats"`
	Runs        int     `json:"runs"`
	Hits        int     `json:"hits"`
	Doubles     int     `json:"doubles"`
	Triples     int     `json:"triples"`
	HomeRuns    int     `json:"homeRuns"`
	RBI         int     `json:"rbi"`
	BaseOnBalls int     `json:"baseOnBalls"`
	StrikeOuts  int     `json:"strikeOuts"`
	StolenBases int     `json:"stolenBases"`
	Avg         float64 `json:"avg"`
	Obp         float64 `json:"obp"`
	Slg         float64 `json:"slg"`
	Ops         float64 `json:"ops"`
}

// PitchingStats is one season's pitching line, zero-defaulted like BattingStats.
type PitchingStats struct {
	GamesPlayed    int     `json:"gamesPlayed"`
	GamesStarted   int     `json:"gamesStarted"`
	Wins           int     `json:"wins"`
	Losses         int     `json:"losses"`
	Saves          int     `json:"saves"`
	InningsPitched float64 `json:"inningsPitched"`
	ERA            float64 `json:"era"`
	WHIP           float64 `json:"whip"`
	StrikeOuts     int     `json:"strikeOuts"`
	BaseOnBalls    int     `json:"baseOnBalls"`
	Hits           int     `json:"hits"`
	HomeRuns       int     `json:"homeRuns"`
}

// PlayerSeasonStats carries at most one batting and one pitching block
// for a season. Two-way players produce two entries for the same year.
type PlayerSeasonStats struct {
	Season   int            `json:"season"`
	Batting  *BattingStats  `json:"batting,omitempty"`
	Pitching *PitchingStats `json:"pitching,omitempty"`
}

// PlayerProfile is the full player endpoint payload.
type PlayerProfile struct {
	Profile PlayerBasic         `json:"profile"`
	Seasons []PlayerSeasonStats `json:"seasons"`
}

// TrackMeet is a single track & field meet. The track provider is a stub,
// so this shape is the agreed contract for when a real integration lands.
type TrackMeet struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Venue string `json:"venue"`
	Date  string `json:"date"`
}

// TrackMeets is the meets endpoint payload.
type TrackMeets struct {
	Provider string      `json:"provider"`
	Date     string      `json:"date"`
	Items    []TrackMeet `json:"items"`
}

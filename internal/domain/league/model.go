package league

// Shapes below carry only what pages key, link and sort by. Ids are already
// numeric here; string ids from the backend are converted at the client edge.

type TeamRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo,omitempty"`
}

// SeasonInfo is the live round state of one season.
type SeasonInfo struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	StartDate    string `json:"start_date,omitempty"`
	CurrentRound *int   `json:"current_round,omitempty"`
	TotalRounds  *int   `json:"total_rounds,omitempty"`
	Started      *bool  `json:"started,omitempty"`
}

type StandingRow struct {
	Position     int     `json:"position"`
	Team         TeamRef `json:"team"`
	Played       int     `json:"played"`
	Won          int     `json:"won"`
	Drawn        int     `json:"drawn"`
	Lost         int     `json:"lost"`
	GoalsFor     int     `json:"goals_for"`
	GoalsAgainst int     `json:"goals_against"`
	Points       int     `json:"points"`
	Form         string  `json:"form,omitempty"`
}

type Table struct {
	SeasonID int64         `json:"season_id"`
	Rows     []StandingRow `json:"rows"`
}

type Match struct {
	ID        int64   `json:"id"`
	SeasonID  int64   `json:"season_id"`
	Tour      int     `json:"tour,omitempty"`
	Group     string  `json:"group,omitempty"`
	Date      string  `json:"date"`
	Status    string  `json:"status"`
	Home      TeamRef `json:"home"`
	Away      TeamRef `json:"away"`
	HomeScore *int    `json:"home_score,omitempty"`
	AwayScore *int    `json:"away_score,omitempty"`
	Stadium   string  `json:"stadium,omitempty"`
}

// MatchDay groups matches of one calendar date.
type MatchDay struct {
	Date    string  `json:"date"`
	Matches []Match `json:"matches"`
}

type MatchList struct {
	Matches []Match    `json:"matches"`
	Days    []MatchDay `json:"days,omitempty"`
	Total   int        `json:"total"`
}

type Team struct {
	ID       int64  `json:"id"`
	SeasonID int64  `json:"season_id"`
	Name     string `json:"name"`
	City     string `json:"city,omitempty"`
	Logo     string `json:"logo,omitempty"`
	Stadium  string `json:"stadium,omitempty"`
}

type Player struct {
	ID        int64   `json:"id"`
	SeasonID  int64   `json:"season_id,omitempty"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Number    int     `json:"number,omitempty"`
	Position  string  `json:"position,omitempty"`
	Team      TeamRef `json:"team"`
	Country   string  `json:"country,omitempty"`
	BirthDate string  `json:"birth_date,omitempty"`
}

type PlayerStat struct {
	Rank   int     `json:"rank"`
	Player TeamRef `json:"player"`
	Team   TeamRef `json:"team"`
	Metric string  `json:"metric"`
	Value  float64 `json:"value"`
}

type TeamStat struct {
	Team    TeamRef            `json:"team"`
	Metrics map[string]float64 `json:"metrics"`
}

type Article struct {
	ID               int64  `json:"id"`
	Title            string `json:"title"`
	Excerpt          string `json:"excerpt,omitempty"`
	Body             string `json:"body,omitempty"`
	Type             string `json:"type"`
	ChampionshipCode string `json:"championship_code,omitempty"`
	ImageURL         string `json:"image_url,omitempty"`
	PublishedAt      string `json:"published_at"`
}

type NewsPage struct {
	Items    []Article `json:"items"`
	Total    int       `json:"total"`
	Page     int       `json:"page"`
	PageSize int       `json:"page_size"`
}

type BracketRound struct {
	Name    string  `json:"name"`
	Matches []Match `json:"matches"`
}

type Bracket struct {
	SeasonID int64          `json:"season_id"`
	Rounds   []BracketRound `json:"rounds"`
}

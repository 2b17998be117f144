package leagueapi

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// ID is an upstream identifier. The backend sends ids as numbers on some
// endpoints and as strings on others; both decode to the same int64.
type ID int64

func (id ID) Int64() int64 {
	return int64(id)
}

func (id *ID) UnmarshalJSON(data []byte) error {
	v, ok, err := parseNumber(data)
	if err != nil {
		return fmt.Errorf("leagueapi: invalid id %s: %w", data, err)
	}
	if !ok {
		*id = 0
		return nil
	}
	*id = ID(v)
	return nil
}

// OptionalInt is a nullable integer that may also arrive quoted.
type OptionalInt struct {
	Value int
	Valid bool
}

func (n OptionalInt) Ptr() *int {
	if !n.Valid {
		return nil
	}
	v := n.Value
	return &v
}

func (n *OptionalInt) UnmarshalJSON(data []byte) error {
	v, ok, err := parseNumber(data)
	if err != nil {
		return fmt.Errorf("leagueapi: invalid number %s: %w", data, err)
	}
	*n = OptionalInt{Value: int(v), Valid: ok}
	return nil
}

// OptionalBool accepts true/false, "true"/"false", 1/0 and null.
type OptionalBool struct {
	Value bool
	Valid bool
}

func (b OptionalBool) Ptr() *bool {
	if !b.Valid {
		return nil
	}
	v := b.Value
	return &v
}

func (b *OptionalBool) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(strings.TrimSpace(string(data)), `"`)
	switch strings.ToLower(raw) {
	case "", "null":
		*b = OptionalBool{}
	case "true", "1":
		*b = OptionalBool{Value: true, Valid: true}
	case "false", "0":
		*b = OptionalBool{Value: false, Valid: true}
	default:
		return fmt.Errorf("leagueapi: invalid bool %s", data)
	}
	return nil
}

func parseNumber(data []byte) (int64, bool, error) {
	raw := bytes.TrimSpace(data)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, false, nil
	}
	text := strings.TrimSpace(strings.Trim(string(raw), `"`))
	if text == "" {
		return 0, false, nil
	}
	if v, err := strconv.ParseInt(text, 10, 64); err == nil {
		return v, true, nil
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, false, err
	}
	return int64(f), true, nil
}

type envelope[T any] struct {
	Data T        `json:"data"`
	Meta pageMeta `json:"meta"`
}

type pageMeta struct {
	Total    OptionalInt `json:"total"`
	Page     OptionalInt `json:"page"`
	PageSize OptionalInt `json:"page_size"`
}

type championshipItem struct {
	ID          ID               `json:"id"`
	Name        string           `json:"name"`
	Tournaments []tournamentItem `json:"tournaments"`
}

type tournamentItem struct {
	ID      ID           `json:"id"`
	Name    string       `json:"name"`
	Seasons []seasonItem `json:"seasons"`
}

type seasonItem struct {
	ID           ID           `json:"id"`
	Name         string       `json:"name"`
	StartDate    string       `json:"start_date"`
	CurrentRound OptionalInt  `json:"current_round"`
	TotalRounds  OptionalInt  `json:"total_rounds"`
	Started      OptionalBool `json:"started"`
}

type teamRefItem struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo"`
}

type standingItem struct {
	Position     int         `json:"position"`
	Team         teamRefItem `json:"team"`
	Played       int         `json:"played"`
	Won          int         `json:"won"`
	Drawn        int         `json:"drawn"`
	Lost         int         `json:"lost"`
	GoalsFor     int         `json:"goals_for"`
	GoalsAgainst int         `json:"goals_against"`
	Points       int         `json:"points"`
	Form         string      `json:"form"`
}

type matchItem struct {
	ID        ID          `json:"id"`
	SeasonID  ID          `json:"season_id"`
	Tour      OptionalInt `json:"tour"`
	Group     string      `json:"group"`
	Date      string      `json:"date"`
	Status    string      `json:"status"`
	Home      teamRefItem `json:"home"`
	Away      teamRefItem `json:"away"`
	HomeScore OptionalInt `json:"home_score"`
	AwayScore OptionalInt `json:"away_score"`
	Stadium   string      `json:"stadium"`
}

type teamItem struct {
	ID      ID     `json:"id"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Logo    string `json:"logo"`
	Stadium string `json:"stadium"`
}

type playerItem struct {
	ID        ID          `json:"id"`
	FirstName string      `json:"first_name"`
	LastName  string      `json:"last_name"`
	Number    OptionalInt `json:"number"`
	Position  string      `json:"position"`
	Team      teamRefItem `json:"team"`
	Country   string      `json:"country"`
	BirthDate string      `json:"birth_date"`
}

type playerStatItem struct {
	Rank   int         `json:"rank"`
	Player teamRefItem `json:"player"`
	Team   teamRefItem `json:"team"`
	Metric string      `json:"metric"`
	Value  float64     `json:"value"`
}

type teamStatItem struct {
	Team    teamRefItem        `json:"team"`
	Metrics map[string]float64 `json:"metrics"`
}

type articleItem struct {
	ID               ID     `json:"id"`
	Title            string `json:"title"`
	Excerpt          string `json:"excerpt"`
	Body             string `json:"body"`
	Type             string `json:"type"`
	ChampionshipCode string `json:"championship_code"`
	ImageURL         string `json:"image_url"`
	PublishedAt      string `json:"published_at"`
}

type bracketItem struct {
	Rounds []bracketRoundItem `json:"rounds"`
}

type bracketRoundItem struct {
	Name    string      `json:"name"`
	Matches []matchItem `json:"matches"`
}

package tournament

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Championship is the backend's championship → tournament → season tree.
type Championship struct {
	ID          int64
	Name        string
	Tournaments []ChampionshipTournament
}

type ChampionshipTournament struct {
	ID      int64
	Name    string
	Seasons []Season
}

type Season struct {
	ID        int64
	Name      string
	StartDate string
}

// SeasonYearItem is one row of the season selector.
type SeasonYearItem struct {
	SeasonID       int64  `json:"seasonId"`
	SeasonName     string `json:"seasonName"`
	Year           int    `json:"year"`
	TournamentName string `json:"tournamentName"`
}

var yearPattern = regexp.MustCompile(`\b(\d{4})\b`)

// FlattenSeasons walks the tree in order. Items whose year cannot be derived
// keep Year 0.
func FlattenSeasons(tree []Championship) []SeasonYearItem {
	out := make([]SeasonYearItem, 0)
	for _, championship := range tree {
		for _, item := range championship.Tournaments {
			for _, season := range item.Seasons {
				if season.ID <= 0 {
					continue
				}
				out = append(out, SeasonYearItem{
					SeasonID:       season.ID,
					SeasonName:     season.Name,
					Year:           SeasonYear(season),
					TournamentName: item.Name,
				})
			}
		}
	}
	return out
}

// SeasonYear prefers the start date and falls back to the first four-digit
// number in the season name.
func SeasonYear(season Season) int {
	if raw := strings.TrimSpace(season.StartDate); raw != "" {
		for _, layout := range []string{"2006-01-02", time.RFC3339} {
			if t, err := time.Parse(layout, raw); err == nil {
				return t.Year()
			}
		}
	}

	match := yearPattern.FindStringSubmatch(season.Name)
	if len(match) < 2 {
		return 0
	}
	year, err := strconv.Atoi(match[1])
	if err != nil {
		return 0
	}
	return year
}

// SortSeasonsByYearDesc orders newest first; ties keep their tree order.
func SortSeasonsByYearDesc(items []SeasonYearItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Year > items[j].Year
	})
}

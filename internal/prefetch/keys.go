package prefetch

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/kzleague/league-site/internal/domain/filters"
	"github.com/kzleague/league-site/internal/domain/preference"
	"github.com/kzleague/league-site/internal/domain/queryplan"
)

const (
	ResourceSeasons     = "seasons"
	ResourceSeason      = "season"
	ResourceTable       = "table"
	ResourceMatches     = "matches"
	ResourceMatch       = "match"
	ResourceTeam        = "team"
	ResourceTeamPlayers = "team_players"
	ResourcePlayer      = "player"
	ResourcePlayerStats = "player_stats"
	ResourceTeamStats   = "team_stats"
	ResourceNews        = "news"
	ResourceArticle     = "article"
	ResourceBracket     = "bracket"
)

const (
	DefaultPageSize = 12
	MaxPageSize     = 100
)

// Page is a 1-based listing page.
type Page struct {
	Number int `json:"page"`
	Size   int `json:"page_size"`
}

func (p Page) Normalize() Page {
	if p.Number < 1 {
		p.Number = 1
	}
	if p.Size < 1 {
		p.Size = DefaultPageSize
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}
	return p
}

func (p Page) Values() url.Values {
	p = p.Normalize()
	values := url.Values{}
	values.Set("page", strconv.Itoa(p.Number))
	values.Set("page_size", strconv.Itoa(p.Size))
	return values
}

// PlayerStatsQuery narrows the player statistics leaderboard.
type PlayerStatsQuery struct {
	Metric string `json:"metric,omitempty"`
	Limit  int    `json:"limit,omitempty"`
	TeamID int64  `json:"team_id,omitempty"`
}

func (q PlayerStatsQuery) Values() url.Values {
	values := url.Values{}
	if metric := strings.ToLower(strings.TrimSpace(q.Metric)); metric != "" {
		values.Set("metric", metric)
	}
	if q.Limit > 0 {
		values.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.TeamID > 0 {
		values.Set("team_id", id(q.TeamID))
	}
	return values
}

func SeasonsKey(lang preference.Language) Key {
	return newKey(ResourceSeasons, lang, "all")
}

// SeasonKey covers the live round state used to plan fixture queries.
func SeasonKey(seasonID int64, lang preference.Language) Key {
	if seasonID <= 0 {
		return ""
	}
	return newKey(ResourceSeason, lang, id(seasonID))
}

func TableKey(seasonID int64, lang preference.Language) Key {
	if seasonID <= 0 {
		return ""
	}
	return newKey(ResourceTable, lang, id(seasonID))
}

func MatchesKey(plan queryplan.Plan, lang preference.Language) Key {
	if plan.SeasonID <= 0 {
		return ""
	}
	switch plan.Source {
	case queryplan.SourceTour:
		if plan.Tour <= 0 {
			return ""
		}
	case queryplan.SourceMatchCenter:
	default:
		return ""
	}
	return newKey(ResourceMatches, lang, id(plan.SeasonID), string(plan.Source), signature(plan.Values()))
}

func MatchKey(matchID int64, lang preference.Language) Key {
	if matchID <= 0 {
		return ""
	}
	return newKey(ResourceMatch, lang, id(matchID))
}

func TeamKey(teamID, seasonID int64, lang preference.Language) Key {
	if teamID <= 0 || seasonID <= 0 {
		return ""
	}
	return newKey(ResourceTeam, lang, id(teamID), id(seasonID))
}

func TeamPlayersKey(teamID, seasonID int64, lang preference.Language) Key {
	if teamID <= 0 || seasonID <= 0 {
		return ""
	}
	return newKey(ResourceTeamPlayers, lang, id(teamID), id(seasonID))
}

func PlayerKey(playerID, seasonID int64, lang preference.Language) Key {
	if playerID <= 0 || seasonID <= 0 {
		return ""
	}
	return newKey(ResourcePlayer, lang, id(playerID), id(seasonID))
}

func PlayerStatsKey(seasonID int64, query PlayerStatsQuery, lang preference.Language) Key {
	if seasonID <= 0 {
		return ""
	}
	return newKey(ResourcePlayerStats, lang, id(seasonID), signature(query.Values()))
}

func TeamStatsKey(seasonID int64, lang preference.Language) Key {
	if seasonID <= 0 {
		return ""
	}
	return newKey(ResourceTeamStats, lang, id(seasonID))
}

// NewsKey covers the listing; the page is part of the signature.
func NewsKey(news filters.News, page Page, lang preference.Language) Key {
	values := news.Values()
	for key, list := range page.Values() {
		values[key] = list
	}
	return newKey(ResourceNews, lang, signature(values))
}

func ArticleKey(articleID int64, lang preference.Language) Key {
	if articleID <= 0 {
		return ""
	}
	return newKey(ResourceArticle, lang, id(articleID))
}

func BracketKey(seasonID int64, lang preference.Language) Key {
	if seasonID <= 0 {
		return ""
	}
	return newKey(ResourceBracket, lang, id(seasonID))
}

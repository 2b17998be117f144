package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/kzleague/league-site/internal/datahook"
	"github.com/kzleague/league-site/internal/domain/filters"
	"github.com/kzleague/league-site/internal/domain/league"
	"github.com/kzleague/league-site/internal/domain/preference"
	"github.com/kzleague/league-site/internal/domain/queryplan"
	"github.com/kzleague/league-site/internal/domain/tournament"
	"github.com/kzleague/league-site/internal/prefetch"
)

// Every hook takes the arguments of its key builder, in the same order, so a
// hook finds exactly what the layout prefetched.

func newHook[T any](c *Client, key prefetch.Key, path string, query url.Values, lang preference.Language) *datahook.Hook[T] {
	hook := datahook.New(c.cache, key, func(ctx context.Context) (T, error) {
		return getJSON[T](ctx, c, path, query, lang)
	}, c.policy)
	if value, ok := prefetch.Decode[T](c.Bridge(), key); ok {
		hook.WithFallback(value)
	}
	return hook
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}

func seasonQuery(seasonID int64) url.Values {
	values := url.Values{}
	if seasonID > 0 {
		values.Set("season_id", itoa(seasonID))
	}
	return values
}

func (c *Client) Seasons(lang preference.Language) *datahook.Hook[[]tournament.SeasonYearItem] {
	return newHook[[]tournament.SeasonYearItem](c, prefetch.SeasonsKey(lang), "/v1/resources/seasons", nil, lang)
}

func (c *Client) Season(seasonID int64, lang preference.Language) *datahook.Hook[league.SeasonInfo] {
	return newHook[league.SeasonInfo](c, prefetch.SeasonKey(seasonID, lang), "/v1/resources/seasons/"+itoa(seasonID), nil, lang)
}

func (c *Client) Table(seasonID int64, lang preference.Language) *datahook.Hook[league.Table] {
	return newHook[league.Table](c, prefetch.TableKey(seasonID, lang), "/v1/resources/seasons/"+itoa(seasonID)+"/table", nil, lang)
}

// Matches sends the plan in the form queryplan.ParsePlan reads back.
func (c *Client) Matches(plan queryplan.Plan, lang preference.Language) *datahook.Hook[league.MatchList] {
	return newHook[league.MatchList](c, prefetch.MatchesKey(plan, lang), "/v1/resources/matches", plan.Query(), lang)
}

func (c *Client) Match(matchID int64, lang preference.Language) *datahook.Hook[league.Match] {
	return newHook[league.Match](c, prefetch.MatchKey(matchID, lang), "/v1/resources/matches/"+itoa(matchID), nil, lang)
}

func (c *Client) Team(teamID, seasonID int64, lang preference.Language) *datahook.Hook[league.Team] {
	return newHook[league.Team](c, prefetch.TeamKey(teamID, seasonID, lang), "/v1/resources/teams/"+itoa(teamID), seasonQuery(seasonID), lang)
}

func (c *Client) TeamPlayers(teamID, seasonID int64, lang preference.Language) *datahook.Hook[[]league.Player] {
	return newHook[[]league.Player](c, prefetch.TeamPlayersKey(teamID, seasonID, lang), "/v1/resources/teams/"+itoa(teamID)+"/players", seasonQuery(seasonID), lang)
}

func (c *Client) Player(playerID, seasonID int64, lang preference.Language) *datahook.Hook[league.Player] {
	return newHook[league.Player](c, prefetch.PlayerKey(playerID, seasonID, lang), "/v1/resources/players/"+itoa(playerID), seasonQuery(seasonID), lang)
}

func (c *Client) PlayerStats(seasonID int64, query prefetch.PlayerStatsQuery, lang preference.Language) *datahook.Hook[[]league.PlayerStat] {
	return newHook[[]league.PlayerStat](c, prefetch.PlayerStatsKey(seasonID, query, lang), "/v1/resources/seasons/"+itoa(seasonID)+"/player-stats", query.Values(), lang)
}

func (c *Client) TeamStats(seasonID int64, lang preference.Language) *datahook.Hook[[]league.TeamStat] {
	return newHook[[]league.TeamStat](c, prefetch.TeamStatsKey(seasonID, lang), "/v1/resources/seasons/"+itoa(seasonID)+"/team-stats", nil, lang)
}

func (c *Client) News(news filters.News, page prefetch.Page, lang preference.Language) *datahook.Hook[league.NewsPage] {
	query := news.Values()
	for key, list := range page.Values() {
		query[key] = list
	}
	return newHook[league.NewsPage](c, prefetch.NewsKey(news, page, lang), "/v1/resources/news", query, lang)
}

func (c *Client) Article(articleID int64, lang preference.Language) *datahook.Hook[league.Article] {
	return newHook[league.Article](c, prefetch.ArticleKey(articleID, lang), "/v1/resources/news/"+itoa(articleID), nil, lang)
}

func (c *Client) Bracket(seasonID int64, lang preference.Language) *datahook.Hook[league.Bracket] {
	return newHook[league.Bracket](c, prefetch.BracketKey(seasonID, lang), "/v1/resources/seasons/"+itoa(seasonID)+"/bracket", nil, lang)
}

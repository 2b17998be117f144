package leagueapi

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/kzleague/league-site/internal/domain/filters"
	"github.com/kzleague/league-site/internal/domain/league"
	"github.com/kzleague/league-site/internal/domain/preference"
	"github.com/kzleague/league-site/internal/domain/queryplan"
	"github.com/kzleague/league-site/internal/domain/tournament"
	"github.com/kzleague/league-site/internal/prefetch"
	"github.com/kzleague/league-site/internal/usecase"
)

var _ usecase.LeagueAPI = (*Client)(nil)

func (c *Client) Seasons(ctx context.Context, lang preference.Language) ([]tournament.Championship, error) {
	var resp envelope[[]championshipItem]
	if err := c.getJSON(ctx, "/seasons", nil, lang, &resp); err != nil {
		return nil, err
	}
	return mapChampionships(resp.Data), nil
}

func (c *Client) Season(ctx context.Context, seasonID int64, lang preference.Language) (league.SeasonInfo, error) {
	if err := requireID("season_id", seasonID); err != nil {
		return league.SeasonInfo{}, err
	}
	var resp envelope[seasonItem]
	if err := c.getJSON(ctx, "/seasons/"+formatID(seasonID), nil, lang, &resp); err != nil {
		return league.SeasonInfo{}, err
	}
	info := mapSeasonInfo(resp.Data)
	if info.ID == 0 {
		info.ID = seasonID
	}
	return info, nil
}

func (c *Client) Table(ctx context.Context, seasonID int64, lang preference.Language) (league.Table, error) {
	if err := requireID("season_id", seasonID); err != nil {
		return league.Table{}, err
	}
	var resp envelope[[]standingItem]
	if err := c.getJSON(ctx, "/seasons/"+formatID(seasonID)+"/table", nil, lang, &resp); err != nil {
		return league.Table{}, err
	}
	return league.Table{SeasonID: seasonID, Rows: mapStandings(resp.Data)}, nil
}

// Matches runs a fixture plan. Tour plans hit the season fixture list,
// match-center plans hit the date-driven match center.
func (c *Client) Matches(ctx context.Context, plan queryplan.Plan, lang preference.Language) (league.MatchList, error) {
	if err := requireID("season_id", plan.SeasonID); err != nil {
		return league.MatchList{}, err
	}

	var (
		path  string
		query url.Values
		group string
	)
	switch plan.Source {
	case queryplan.SourceTour:
		if plan.Tour <= 0 {
			return league.MatchList{}, fmt.Errorf("%w: tour must be positive", usecase.ErrInvalidInput)
		}
		path = "/seasons/" + formatID(plan.SeasonID) + "/matches"
		query = url.Values{"tour": []string{strconv.Itoa(plan.Tour)}}
	case queryplan.SourceMatchCenter:
		path = "/match-center"
		query = plan.Values()
		group = query.Get(queryplan.KeyGroupBy)
	default:
		return league.MatchList{}, fmt.Errorf("%w: unknown plan source %q", usecase.ErrInvalidInput, plan.Source)
	}

	var resp envelope[[]matchItem]
	if err := c.getJSON(ctx, path, query, lang, &resp); err != nil {
		return league.MatchList{}, err
	}
	matches := mapMatches(resp.Data)
	out := league.MatchList{Matches: matches, Total: len(matches)}
	if resp.Meta.Total.Valid {
		out.Total = resp.Meta.Total.Value
	}
	if group == queryplan.GroupByDate {
		out.Days = groupByDate(matches)
	}
	return out, nil
}

func (c *Client) Match(ctx context.Context, matchID int64, lang preference.Language) (league.Match, error) {
	if err := requireID("match_id", matchID); err != nil {
		return league.Match{}, err
	}
	var resp envelope[matchItem]
	if err := c.getJSON(ctx, "/matches/"+formatID(matchID), nil, lang, &resp); err != nil {
		return league.Match{}, err
	}
	return mapMatch(resp.Data), nil
}

func (c *Client) Team(ctx context.Context, teamID, seasonID int64, lang preference.Language) (league.Team, error) {
	if err := requireIDs(teamID, seasonID); err != nil {
		return league.Team{}, err
	}
	var resp envelope[teamItem]
	if err := c.getJSON(ctx, "/teams/"+formatID(teamID), seasonQuery(seasonID), lang, &resp); err != nil {
		return league.Team{}, err
	}
	return mapTeam(resp.Data, seasonID), nil
}

func (c *Client) TeamPlayers(ctx context.Context, teamID, seasonID int64, lang preference.Language) ([]league.Player, error) {
	if err := requireIDs(teamID, seasonID); err != nil {
		return nil, err
	}
	var resp envelope[[]playerItem]
	if err := c.getJSON(ctx, "/teams/"+formatID(teamID)+"/players", seasonQuery(seasonID), lang, &resp); err != nil {
		return nil, err
	}
	out := make([]league.Player, 0, len(resp.Data))
	for _, item := range resp.Data {
		out = append(out, mapPlayer(item, seasonID))
	}
	return out, nil
}

func (c *Client) Player(ctx context.Context, playerID, seasonID int64, lang preference.Language) (league.Player, error) {
	if err := requireIDs(playerID, seasonID); err != nil {
		return league.Player{}, err
	}
	var resp envelope[playerItem]
	if err := c.getJSON(ctx, "/players/"+formatID(playerID), seasonQuery(seasonID), lang, &resp); err != nil {
		return league.Player{}, err
	}
	return mapPlayer(resp.Data, seasonID), nil
}

func (c *Client) PlayerStats(ctx context.Context, seasonID int64, query prefetch.PlayerStatsQuery, lang preference.Language) ([]league.PlayerStat, error) {
	if err := requireID("season_id", seasonID); err != nil {
		return nil, err
	}
	var resp envelope[[]playerStatItem]
	if err := c.getJSON(ctx, "/seasons/"+formatID(seasonID)+"/player-stats", query.Values(), lang, &resp); err != nil {
		return nil, err
	}
	out := make([]league.PlayerStat, 0, len(resp.Data))
	for _, item := range resp.Data {
		out = append(out, league.PlayerStat{
			Rank:   item.Rank,
			Player: mapTeamRef(item.Player),
			Team:   mapTeamRef(item.Team),
			Metric: item.Metric,
			Value:  item.Value,
		})
	}
	return out, nil
}

func (c *Client) TeamStats(ctx context.Context, seasonID int64, lang preference.Language) ([]league.TeamStat, error) {
	if err := requireID("season_id", seasonID); err != nil {
		return nil, err
	}
	var resp envelope[[]teamStatItem]
	if err := c.getJSON(ctx, "/seasons/"+formatID(seasonID)+"/team-stats", nil, lang, &resp); err != nil {
		return nil, err
	}
	out := make([]league.TeamStat, 0, len(resp.Data))
	for _, item := range resp.Data {
		out = append(out, league.TeamStat{Team: mapTeamRef(item.Team), Metrics: item.Metrics})
	}
	return out, nil
}

func (c *Client) News(ctx context.Context, news filters.News, page prefetch.Page, lang preference.Language) (league.NewsPage, error) {
	page = page.Normalize()
	query := news.Values()
	for key, list := range page.Values() {
		query[key] = list
	}

	var resp envelope[[]articleItem]
	if err := c.getJSON(ctx, "/news", query, lang, &resp); err != nil {
		return league.NewsPage{}, err
	}

	out := league.NewsPage{
		Items:    make([]league.Article, 0, len(resp.Data)),
		Total:    len(resp.Data),
		Page:     page.Number,
		PageSize: page.Size,
	}
	for _, item := range resp.Data {
		out.Items = append(out.Items, mapArticle(item))
	}
	if resp.Meta.Total.Valid {
		out.Total = resp.Meta.Total.Value
	}
	return out, nil
}

func (c *Client) Article(ctx context.Context, articleID int64, lang preference.Language) (league.Article, error) {
	if err := requireID("article_id", articleID); err != nil {
		return league.Article{}, err
	}
	var resp envelope[articleItem]
	if err := c.getJSON(ctx, "/news/"+formatID(articleID), nil, lang, &resp); err != nil {
		return league.Article{}, err
	}
	return mapArticle(resp.Data), nil
}

func (c *Client) Bracket(ctx context.Context, seasonID int64, lang preference.Language) (league.Bracket, error) {
	if err := requireID("season_id", seasonID); err != nil {
		return league.Bracket{}, err
	}
	var resp envelope[bracketItem]
	if err := c.getJSON(ctx, "/seasons/"+formatID(seasonID)+"/bracket", nil, lang, &resp); err != nil {
		return league.Bracket{}, err
	}
	out := league.Bracket{SeasonID: seasonID, Rounds: make([]league.BracketRound, 0, len(resp.Data.Rounds))}
	for _, round := range resp.Data.Rounds {
		out.Rounds = append(out.Rounds, league.BracketRound{Name: round.Name, Matches: mapMatches(round.Matches)})
	}
	return out, nil
}

func seasonQuery(seasonID int64) url.Values {
	return url.Values{"season_id": []string{formatID(seasonID)}}
}

func formatID(v int64) string {
	return strconv.FormatInt(v, 10)
}

func requireID(name string, v int64) error {
	if v <= 0 {
		return fmt.Errorf("%w: %s must be positive", usecase.ErrInvalidInput, name)
	}
	return nil
}

func requireIDs(entityID, seasonID int64) error {
	if err := requireID("id", entityID); err != nil {
		return err
	}
	return requireID("season_id", seasonID)
}

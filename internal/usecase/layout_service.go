package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/kzleague/league-site/internal/domain/filters"
	"github.com/kzleague/league-site/internal/domain/league"
	"github.com/kzleague/league-site/internal/domain/preference"
	"github.com/kzleague/league-site/internal/domain/queryplan"
	"github.com/kzleague/league-site/internal/domain/tournament"
	"github.com/kzleague/league-site/internal/prefetch"
)

type Route string

const (
	RouteHome    Route = "home"
	RouteMatches Route = "matches"
	RouteTable   Route = "table"
	RouteStats   Route = "stats"
	RouteTeam    Route = "team"
	RoutePlayer  Route = "player"
	RouteMatch   Route = "match"
	RouteNews    Route = "news"
	RouteArticle Route = "article"
	RouteCup     Route = "cup"
)

func ParseRoute(raw string) (Route, bool) {
	switch route := Route(strings.ToLower(strings.TrimSpace(raw))); route {
	case RouteHome, RouteMatches, RouteTable, RouteStats, RouteTeam, RoutePlayer, RouteMatch, RouteNews, RouteArticle, RouteCup:
		return route, true
	default:
		return "", false
	}
}

const (
	homeNewsPageSize = 6
	statsLimit       = 10
	statsMetric      = "goals"
)

// DefaultPlayerStatsQuery is the leaderboard shown on the stats page.
func DefaultPlayerStatsQuery() prefetch.PlayerStatsQuery {
	return prefetch.PlayerStatsQuery{Metric: statsMetric, Limit: statsLimit}
}

// HomeNewsPage is the news block on the home page.
func HomeNewsPage() prefetch.Page {
	return prefetch.Page{Number: 1, Size: homeNewsPageSize}
}

type LayoutRequest struct {
	Route       Route
	Preferences PreferenceInput
	Stage       string
	TeamID      int64
	PlayerID    int64
	MatchID     int64
	ArticleID   int64
	Query       url.Values
}

type TournamentView struct {
	ID           string          `json:"id"`
	SeasonID     int64           `json:"seasonId"`
	Type         tournament.Type `json:"type"`
	Format       string          `json:"format"`
	Name         string          `json:"name"`
	Order        int             `json:"order"`
	HasTable     bool            `json:"hasTable"`
	HasBracket   bool            `json:"hasBracket"`
	CurrentRound *int            `json:"currentRound,omitempty"`
	TotalRounds  *int            `json:"totalRounds,omitempty"`
}

func NewTournamentView(t tournament.Tournament, lang preference.Language) TournamentView {
	return TournamentView{
		ID:           t.ID,
		SeasonID:     t.SeasonID,
		Type:         t.Type,
		Format:       t.Format,
		Name:         t.Name.In(lang),
		Order:        t.Order,
		HasTable:     t.HasTable,
		HasBracket:   t.HasBracket,
		CurrentRound: t.CurrentRound,
		TotalRounds:  t.TotalRounds,
	}
}

// Layout is the hydration document of one page request.
type Layout struct {
	Route           Route                  `json:"route"`
	Language        preference.Language    `json:"language"`
	Tournament      TournamentView         `json:"tournament"`
	Tournaments     []TournamentView       `json:"tournaments"`
	Stage           string                 `json:"stage,omitempty"`
	SeasonState     tournament.SeasonState `json:"seasonState"`
	StatsSeasonID   int64                  `json:"statsSeasonId"`
	MatchesSeasonID int64                  `json:"matchesSeasonId"`
	DateWindow      *tournament.DateWindow `json:"dateWindow,omitempty"`
	Plan            queryplan.Plan         `json:"plan"`
	MatchCenter     *filters.MatchCenter   `json:"matchCenter,omitempty"`
	News            *filters.News          `json:"news,omitempty"`
	Page            int                    `json:"page,omitempty"`
	Bridge          *prefetch.Bridge       `json:"bridge"`
	Preferences     Preferences            `json:"-"`
}

// LayoutService builds page layouts: preferences, seasons, fixture plan and
// the prefetched resources of the route.
type LayoutService struct {
	registry    *tournament.Registry
	planner     *queryplan.Builder
	preferences *PreferenceService
	resources   *ResourceService
	gateway     *prefetch.Gateway
}

func NewLayoutService(
	registry *tournament.Registry,
	preferences *PreferenceService,
	resources *ResourceService,
	gateway *prefetch.Gateway,
) *LayoutService {
	return &LayoutService{
		registry:    registry,
		planner:     queryplan.NewBuilder(registry),
		preferences: preferences,
		resources:   resources,
		gateway:     gateway,
	}
}

func (s *LayoutService) Build(ctx context.Context, req LayoutRequest) (Layout, error) {
	if _, ok := ParseRoute(string(req.Route)); !ok {
		return Layout{}, fmt.Errorf("%w: unknown route %q", ErrInvalidInput, req.Route)
	}

	ctx, span := startUsecaseSpan(ctx, "usecase.LayoutService.Build")
	defer span.End()

	prefs := s.preferences.Resolve(ctx, req.Preferences)
	lang := prefs.Language.Language
	active, _ := s.registry.Lookup(prefs.Tournament.TournamentID)
	if active.ID == "" {
		active = s.registry.Default()
	}
	stage, _ := tournament.ParseSecondLeagueStage(req.Stage)

	stats := s.registry.StatsSeason(active.ID, stage)
	matches := s.registry.MatchesSeason(active.ID, stage)

	layout := Layout{
		Route:           req.Route,
		Language:        lang,
		Tournament:      NewTournamentView(active, lang),
		Stage:           string(stage),
		SeasonState:     stats.State,
		StatsSeasonID:   stats.SeasonID,
		MatchesSeasonID: matches.SeasonID,
		DateWindow:      matches.DateWindow,
		Preferences:     prefs,
	}
	for _, item := range s.registry.All() {
		layout.Tournaments = append(layout.Tournaments, NewTournamentView(item, lang))
	}

	infoKey := prefetch.SeasonKey(matches.SeasonID, lang)
	info, hasInfo := s.gateway.Fetch(ctx, infoKey, func(ctx context.Context) (any, error) {
		return s.resources.Season(ctx, matches.SeasonID, lang)
	})
	layout.Plan = s.plan(active, matches, info)

	batch := s.gateway.NewBatch()
	s.addSeasons(batch, lang)
	if hasInfo {
		batch.Add(infoKey, func(context.Context) (any, error) { return info, nil })
	}

	switch req.Route {
	case RouteHome:
		if active.HasTable {
			s.addTable(batch, stats.SeasonID, lang)
		}
		s.addMatches(batch, layout.Plan, lang)
		s.addNews(batch, filters.News{}, HomeNewsPage(), lang)
	case RouteMatches:
		mc := filters.ParseMatchCenter(req.Query)
		if queryplan.HasMatchCenterFilters(mc) {
			layout.Plan = queryplan.FromMatchCenter(matches.SeasonID, mc)
		}
		layout.MatchCenter = &mc
		s.addMatches(batch, layout.Plan, lang)
	case RouteTable:
		s.addTable(batch, stats.SeasonID, lang)
	case RouteStats:
		query := DefaultPlayerStatsQuery()
		batch.Add(prefetch.PlayerStatsKey(stats.SeasonID, query, lang), func(ctx context.Context) (any, error) {
			return s.resources.PlayerStats(ctx, stats.SeasonID, query, lang)
		})
		batch.Add(prefetch.TeamStatsKey(stats.SeasonID, lang), func(ctx context.Context) (any, error) {
			return s.resources.TeamStats(ctx, stats.SeasonID, lang)
		})
	case RouteTeam:
		batch.Add(prefetch.TeamKey(req.TeamID, stats.SeasonID, lang), func(ctx context.Context) (any, error) {
			return s.resources.Team(ctx, req.TeamID, stats.SeasonID, lang)
		})
		batch.Add(prefetch.TeamPlayersKey(req.TeamID, stats.SeasonID, lang), func(ctx context.Context) (any, error) {
			return s.resources.TeamPlayers(ctx, req.TeamID, stats.SeasonID, lang)
		})
	case RoutePlayer:
		batch.Add(prefetch.PlayerKey(req.PlayerID, stats.SeasonID, lang), func(ctx context.Context) (any, error) {
			return s.resources.Player(ctx, req.PlayerID, stats.SeasonID, lang)
		})
	case RouteMatch:
		batch.Add(prefetch.MatchKey(req.MatchID, lang), func(ctx context.Context) (any, error) {
			return s.resources.Match(ctx, req.MatchID, lang)
		})
	case RouteNews:
		news := filters.ParseNews(req.Query)
		page := pageFromQuery(req.Query)
		layout.News = &news
		layout.Page = page.Number
		s.addNews(batch, news, page, lang)
	case RouteArticle:
		batch.Add(prefetch.ArticleKey(req.ArticleID, lang), func(ctx context.Context) (any, error) {
			return s.resources.Article(ctx, req.ArticleID, lang)
		})
	case RouteCup:
		seasonID := stats.SeasonID
		if !active.HasBracket {
			seasonID = s.registry.SeasonFor(tournament.CupID, "")
		}
		batch.Add(prefetch.BracketKey(seasonID, lang), func(ctx context.Context) (any, error) {
			return s.resources.Bracket(ctx, seasonID, lang)
		})
	}

	layout.Bridge = batch.Run(ctx)
	return layout, nil
}

// plan prefers the live round state from the backend and falls back to the
// catalog.
func (s *LayoutService) plan(active tournament.Tournament, matches tournament.SeasonResolution, info any) queryplan.Plan {
	in := queryplan.Input{
		TournamentID: active.ID,
		SeasonID:     matches.SeasonID,
		CurrentRound: active.CurrentRound,
		TotalRounds:  active.TotalRounds,
	}
	if live, ok := info.(league.SeasonInfo); ok {
		if live.CurrentRound != nil {
			in.CurrentRound = live.CurrentRound
		}
		if live.TotalRounds != nil {
			in.TotalRounds = live.TotalRounds
		}
		in.SeasonStarted = live.Started
	}
	return s.planner.Build(in)
}

func (s *LayoutService) addSeasons(batch *prefetch.Batch, lang preference.Language) {
	batch.Add(prefetch.SeasonsKey(lang), func(ctx context.Context) (any, error) {
		return s.resources.Seasons(ctx, lang)
	})
}

func (s *LayoutService) addTable(batch *prefetch.Batch, seasonID int64, lang preference.Language) {
	batch.Add(prefetch.TableKey(seasonID, lang), func(ctx context.Context) (any, error) {
		return s.resources.Table(ctx, seasonID, lang)
	})
}

func (s *LayoutService) addMatches(batch *prefetch.Batch, plan queryplan.Plan, lang preference.Language) {
	batch.Add(prefetch.MatchesKey(plan, lang), func(ctx context.Context) (any, error) {
		return s.resources.Matches(ctx, plan, lang)
	})
}

func (s *LayoutService) addNews(batch *prefetch.Batch, news filters.News, page prefetch.Page, lang preference.Language) {
	page = page.Normalize()
	batch.Add(prefetch.NewsKey(news, page, lang), func(ctx context.Context) (any, error) {
		return s.resources.News(ctx, news, page, lang)
	})
}

func pageFromQuery(query url.Values) prefetch.Page {
	number, _ := strconv.Atoi(strings.TrimSpace(query.Get("page")))
	return prefetch.Page{Number: number}.Normalize()
}

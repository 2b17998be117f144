package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/kzleague/league-site/internal/domain/filters"
	"github.com/kzleague/league-site/internal/domain/league"
	"github.com/kzleague/league-site/internal/domain/preference"
	"github.com/kzleague/league-site/internal/domain/queryplan"
	"github.com/kzleague/league-site/internal/domain/tournament"
	"github.com/kzleague/league-site/internal/platform/cache"
	"github.com/kzleague/league-site/internal/prefetch"
)

// ResourceService reads backend resources through the process-wide cache.
// Cache entries are keyed by the same prefetch keys the client uses.
type ResourceService struct {
	api   LeagueAPI
	cache *cache.Store
}

func NewResourceService(api LeagueAPI, store *cache.Store) *ResourceService {
	if store == nil {
		store = cache.NewStore(cache.Policy{})
	}
	return &ResourceService{api: api, cache: store}
}

func loadResource[T any](ctx context.Context, s *ResourceService, key prefetch.Key, fetch func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	if key.IsZero() {
		return zero, fmt.Errorf("%w: missing identifier for resource", ErrInvalidInput)
	}

	ctx, span := startUsecaseSpan(ctx, "usecase.ResourceService."+key.Resource())
	defer span.End()

	value, err := s.cache.GetOrLoad(ctx, key.String(), func(ctx context.Context) (any, error) {
		loaded, err := fetch(ctx)
		if errors.Is(err, ErrNotFound) {
			// Gone upstream: stop serving the stale copy.
			s.cache.Delete(ctx, key.String())
		}
		return loaded, err
	})
	if err != nil {
		return zero, fmt.Errorf("load %s: %w", key.Resource(), err)
	}
	typed, ok := value.(T)
	if !ok {
		return zero, fmt.Errorf("load %s: unexpected cached type %T", key.Resource(), value)
	}
	return typed, nil
}

// Seasons returns the season selector rows, newest first.
func (s *ResourceService) Seasons(ctx context.Context, lang preference.Language) ([]tournament.SeasonYearItem, error) {
	return loadResource(ctx, s, prefetch.SeasonsKey(lang), func(ctx context.Context) ([]tournament.SeasonYearItem, error) {
		tree, err := s.api.Seasons(ctx, lang)
		if err != nil {
			return nil, err
		}
		items := tournament.FlattenSeasons(tree)
		tournament.SortSeasonsByYearDesc(items)
		return items, nil
	})
}

// roundScoped lists the resources whose contents move with the current round.
var roundScoped = []string{
	prefetch.ResourceTable,
	prefetch.ResourceMatches,
	prefetch.ResourcePlayerStats,
	prefetch.ResourceTeamStats,
	prefetch.ResourceBracket,
}

// Season returns the live round state. When a refresh shows the round moved
// on, cached round-scoped resources of the season are dropped.
func (s *ResourceService) Season(ctx context.Context, seasonID int64, lang preference.Language) (league.SeasonInfo, error) {
	key := prefetch.SeasonKey(seasonID, lang)
	return loadResource(ctx, s, key, func(ctx context.Context) (league.SeasonInfo, error) {
		info, err := s.api.Season(ctx, seasonID, lang)
		if err != nil {
			return info, err
		}
		if previous, _, ok := s.cache.Peek(key.String()); ok {
			if prev, ok := previous.(league.SeasonInfo); ok && !sameRound(prev, info) {
				s.dropSeason(ctx, seasonID)
			}
		}
		return info, nil
	})
}

func (s *ResourceService) dropSeason(ctx context.Context, seasonID int64) {
	for _, resource := range roundScoped {
		s.cache.DeletePrefix(ctx, prefetch.SeasonScope(resource, seasonID))
	}
}

func sameRound(a, b league.SeasonInfo) bool {
	switch {
	case a.CurrentRound == nil || b.CurrentRound == nil:
		return a.CurrentRound == nil && b.CurrentRound == nil
	default:
		return *a.CurrentRound == *b.CurrentRound
	}
}

func (s *ResourceService) Table(ctx context.Context, seasonID int64, lang preference.Language) (league.Table, error) {
	return loadResource(ctx, s, prefetch.TableKey(seasonID, lang), func(ctx context.Context) (league.Table, error) {
		return s.api.Table(ctx, seasonID, lang)
	})
}

func (s *ResourceService) Matches(ctx context.Context, plan queryplan.Plan, lang preference.Language) (league.MatchList, error) {
	return loadResource(ctx, s, prefetch.MatchesKey(plan, lang), func(ctx context.Context) (league.MatchList, error) {
		return s.api.Matches(ctx, plan, lang)
	})
}

func (s *ResourceService) Match(ctx context.Context, matchID int64, lang preference.Language) (league.Match, error) {
	return loadResource(ctx, s, prefetch.MatchKey(matchID, lang), func(ctx context.Context) (league.Match, error) {
		return s.api.Match(ctx, matchID, lang)
	})
}

func (s *ResourceService) Team(ctx context.Context, teamID, seasonID int64, lang preference.Language) (league.Team, error) {
	return loadResource(ctx, s, prefetch.TeamKey(teamID, seasonID, lang), func(ctx context.Context) (league.Team, error) {
		return s.api.Team(ctx, teamID, seasonID, lang)
	})
}

func (s *ResourceService) TeamPlayers(ctx context.Context, teamID, seasonID int64, lang preference.Language) ([]league.Player, error) {
	return loadResource(ctx, s, prefetch.TeamPlayersKey(teamID, seasonID, lang), func(ctx context.Context) ([]league.Player, error) {
		return s.api.TeamPlayers(ctx, teamID, seasonID, lang)
	})
}

func (s *ResourceService) Player(ctx context.Context, playerID, seasonID int64, lang preference.Language) (league.Player, error) {
	return loadResource(ctx, s, prefetch.PlayerKey(playerID, seasonID, lang), func(ctx context.Context) (league.Player, error) {
		return s.api.Player(ctx, playerID, seasonID, lang)
	})
}

func (s *ResourceService) PlayerStats(ctx context.Context, seasonID int64, query prefetch.PlayerStatsQuery, lang preference.Language) ([]league.PlayerStat, error) {
	return loadResource(ctx, s, prefetch.PlayerStatsKey(seasonID, query, lang), func(ctx context.Context) ([]league.PlayerStat, error) {
		return s.api.PlayerStats(ctx, seasonID, query, lang)
	})
}

func (s *ResourceService) TeamStats(ctx context.Context, seasonID int64, lang preference.Language) ([]league.TeamStat, error) {
	return loadResource(ctx, s, prefetch.TeamStatsKey(seasonID, lang), func(ctx context.Context) ([]league.TeamStat, error) {
		return s.api.TeamStats(ctx, seasonID, lang)
	})
}

func (s *ResourceService) News(ctx context.Context, news filters.News, page prefetch.Page, lang preference.Language) (league.NewsPage, error) {
	page = page.Normalize()
	return loadResource(ctx, s, prefetch.NewsKey(news, page, lang), func(ctx context.Context) (league.NewsPage, error) {
		return s.api.News(ctx, news, page, lang)
	})
}

func (s *ResourceService) Article(ctx context.Context, articleID int64, lang preference.Language) (league.Article, error) {
	return loadResource(ctx, s, prefetch.ArticleKey(articleID, lang), func(ctx context.Context) (league.Article, error) {
		return s.api.Article(ctx, articleID, lang)
	})
}

func (s *ResourceService) Bracket(ctx context.Context, seasonID int64, lang preference.Language) (league.Bracket, error) {
	return loadResource(ctx, s, prefetch.BracketKey(seasonID, lang), func(ctx context.Context) (league.Bracket, error) {
		return s.api.Bracket(ctx, seasonID, lang)
	})
}

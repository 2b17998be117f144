package usecase

import (
	"context"

	"github.com/kzleague/league-site/internal/domain/filters"
	"github.com/kzleague/league-site/internal/domain/league"
	"github.com/kzleague/league-site/internal/domain/preference"
	"github.com/kzleague/league-site/internal/domain/queryplan"
	"github.com/kzleague/league-site/internal/domain/tournament"
	"github.com/kzleague/league-site/internal/prefetch"
)

// LeagueAPI is the league backend. Every call is scoped to a language.
type LeagueAPI interface {
	Seasons(ctx context.Context, lang preference.Language) ([]tournament.Championship, error)
	Season(ctx context.Context, seasonID int64, lang preference.Language) (league.SeasonInfo, error)
	Table(ctx context.Context, seasonID int64, lang preference.Language) (league.Table, error)
	Matches(ctx context.Context, plan queryplan.Plan, lang preference.Language) (league.MatchList, error)
	Match(ctx context.Context, matchID int64, lang preference.Language) (league.Match, error)
	Team(ctx context.Context, teamID, seasonID int64, lang preference.Language) (league.Team, error)
	TeamPlayers(ctx context.Context, teamID, seasonID int64, lang preference.Language) ([]league.Player, error)
	Player(ctx context.Context, playerID, seasonID int64, lang preference.Language) (league.Player, error)
	PlayerStats(ctx context.Context, seasonID int64, query prefetch.PlayerStatsQuery, lang preference.Language) ([]league.PlayerStat, error)
	TeamStats(ctx context.Context, seasonID int64, lang preference.Language) ([]league.TeamStat, error)
	News(ctx context.Context, news filters.News, page prefetch.Page, lang preference.Language) (league.NewsPage, error)
	Article(ctx context.Context, articleID int64, lang preference.Language) (league.Article, error)
	Bracket(ctx context.Context, seasonID int64, lang preference.Language) (league.Bracket, error)
}

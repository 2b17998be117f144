package usecase

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kzleague/league-site/internal/domain/filters"
	"github.com/kzleague/league-site/internal/domain/league"
	"github.com/kzleague/league-site/internal/domain/preference"
	"github.com/kzleague/league-site/internal/domain/queryplan"
	"github.com/kzleague/league-site/internal/domain/tournament"
	"github.com/kzleague/league-site/internal/infrastructure/prefstore"
	usecasemock "github.com/kzleague/league-site/internal/mocks/usecase"
	"github.com/kzleague/league-site/internal/platform/cache"
	"github.com/kzleague/league-site/internal/platform/logging"
	"github.com/kzleague/league-site/internal/prefetch"
)

func newLayoutService(t *testing.T, api LeagueAPI, policy tournament.PreSeasonPolicy) *LayoutService {
	t.Helper()

	registry := newRegistry(t, policy)
	return NewLayoutService(
		registry,
		NewPreferenceService(registry, prefstore.NewMemoryStorage(), logging.NewNop()),
		NewResourceService(api, cache.NewStore(cache.Policy{})),
		prefetch.NewGateway(logging.NewNop()),
	)
}

func TestLayoutService_PreSeasonSplitsStatsAndFixtures(t *testing.T) {
	t.Parallel()

	api := usecasemock.NewLeagueAPI(t)
	api.On("Seasons", mock.Anything, preference.LanguageKZ).Return([]tournament.Championship{}, nil).Once()
	api.On("Season", mock.Anything, int64(200), preference.LanguageKZ).Return(league.SeasonInfo{}, errors.New("season not published")).Once()
	api.On("Table", mock.Anything, int64(61), preference.LanguageKZ).Return(league.Table{SeasonID: 61}, nil).Once()
	api.On("Matches", mock.Anything, mock.MatchedBy(func(plan queryplan.Plan) bool {
		return plan.Source == queryplan.SourceMatchCenter && plan.SeasonID == 200
	}), preference.LanguageKZ).Return(league.MatchList{Total: 8}, nil).Once()
	api.On("News", mock.Anything, filters.News{}, HomeNewsPage().Normalize(), preference.LanguageKZ).Return(league.NewsPage{}, errors.New("cms timeout")).Once()

	service := newLayoutService(t, api, tournament.PreSeasonPolicy{Enabled: true, CurrentSeasonID: 200, PreviousSeasonID: 61})
	layout, err := service.Build(context.Background(), LayoutRequest{Route: RouteHome})
	require.NoError(t, err)

	assert.Equal(t, "pl", layout.Tournament.ID)
	assert.Equal(t, tournament.StatePreSeason, layout.SeasonState)
	assert.Equal(t, int64(61), layout.StatsSeasonID)
	assert.Equal(t, int64(200), layout.MatchesSeasonID)
	require.NotNil(t, layout.DateWindow)
	assert.Equal(t, "2026-03-01", layout.DateWindow.From)

	require.NotNil(t, layout.Plan.Filters)
	assert.Equal(t, 40, layout.Plan.Filters.Limit)
	assert.Equal(t, "2026-03-15", layout.Plan.Filters.DateTo)

	bridge := layout.Bridge
	assert.True(t, bridge.Has(prefetch.TableKey(61, preference.LanguageKZ)))
	assert.True(t, bridge.Has(prefetch.MatchesKey(layout.Plan, preference.LanguageKZ)))
	assert.True(t, bridge.Has(prefetch.SeasonsKey(preference.LanguageKZ)))
	assert.False(t, bridge.Has(prefetch.SeasonKey(200, preference.LanguageKZ)))
	assert.False(t, bridge.Has(prefetch.NewsKey(filters.News{}, HomeNewsPage(), preference.LanguageKZ)))
	assert.Equal(t, 3, bridge.Len())
}

func TestLayoutService_LiveRoundsDriveThePlan(t *testing.T) {
	t.Parallel()

	current, total := 12, 30
	api := usecasemock.NewLeagueAPI(t)
	api.On("Seasons", mock.Anything, preference.LanguageRU).Return([]tournament.Championship{}, nil).Once()
	api.On("Season", mock.Anything, int64(85), preference.LanguageRU).Return(league.SeasonInfo{ID: 85, CurrentRound: &current, TotalRounds: &total}, nil).Once()
	api.On("Table", mock.Anything, int64(85), preference.LanguageRU).Return(league.Table{SeasonID: 85}, nil).Once()

	service := newLayoutService(t, api, tournament.PreSeasonPolicy{})
	layout, err := service.Build(context.Background(), LayoutRequest{
		Route: RouteTable,
		Preferences: PreferenceInput{
			CookieLanguage:   preference.Ptr("ru"),
			CookieTournament: preference.Ptr("1l"),
		},
	})
	require.NoError(t, err)

	assert.Equal(t, queryplan.TourPlan(85, 30), layout.Plan)
	assert.Equal(t, "Первая Лига", layout.Tournament.Name)
	assert.True(t, layout.Bridge.Has(prefetch.SeasonKey(85, preference.LanguageRU)))
	assert.True(t, layout.Bridge.Has(prefetch.TableKey(85, preference.LanguageRU)))
}

func TestLayoutService_RouteParameters(t *testing.T) {
	t.Parallel()

	api := usecasemock.NewLeagueAPI(t)
	api.On("Seasons", mock.Anything, mock.Anything).Return([]tournament.Championship{}, nil)
	api.On("Season", mock.Anything, mock.Anything, mock.Anything).Return(league.SeasonInfo{}, nil)
	api.On("Team", mock.Anything, int64(7), int64(81), preference.LanguageKZ).Return(league.Team{ID: 7}, nil).Once()
	api.On("TeamPlayers", mock.Anything, int64(7), int64(81), preference.LanguageKZ).Return([]league.Player{{ID: 1}}, nil).Once()
	api.On("Matches", mock.Anything, mock.MatchedBy(func(plan queryplan.Plan) bool {
		return plan.Values().Get("tours") == "3" && plan.SeasonID == 61
	}), preference.LanguageKZ).Return(league.MatchList{}, nil).Once()

	service := newLayoutService(t, api, tournament.PreSeasonPolicy{})

	team, err := service.Build(context.Background(), LayoutRequest{
		Route:       RouteTeam,
		TeamID:      7,
		Stage:       "b",
		Preferences: PreferenceInput{CookieTournament: preference.Ptr("2l")},
	})
	require.NoError(t, err)
	assert.Equal(t, "b", team.Stage)
	assert.True(t, team.Bridge.Has(prefetch.TeamKey(7, 81, preference.LanguageKZ)))
	assert.True(t, team.Bridge.Has(prefetch.TeamPlayersKey(7, 81, preference.LanguageKZ)))

	matches, err := service.Build(context.Background(), LayoutRequest{
		Route: RouteMatches,
		Query: url.Values{"tours": {"3"}, "status": {"bogus"}},
	})
	require.NoError(t, err)
	require.NotNil(t, matches.MatchCenter)
	assert.Equal(t, []int64{3}, matches.MatchCenter.Tours)
	assert.True(t, matches.Bridge.Has(prefetch.MatchesKey(matches.Plan, preference.LanguageKZ)))

	// Missing ids never reach the backend.
	player, err := service.Build(context.Background(), LayoutRequest{Route: RoutePlayer})
	require.NoError(t, err)
	assert.False(t, player.Bridge.Has(prefetch.PlayerKey(0, 61, preference.LanguageKZ)))

	_, err = service.Build(context.Background(), LayoutRequest{Route: "admin"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

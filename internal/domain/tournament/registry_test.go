package tournament

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kzleague/league-site/internal/domain/preference"
)

func newTestRegistry(t *testing.T, policy PreSeasonPolicy) *Registry {
	t.Helper()

	registry, err := NewDefaultRegistry("", policy)
	require.NoError(t, err)
	return registry
}

func TestRegistry_LookupAndDefault(t *testing.T) {
	t.Parallel()

	registry := newTestRegistry(t, PreSeasonPolicy{})

	pl, ok := registry.Lookup(" PL ")
	require.True(t, ok)
	assert.Equal(t, int64(61), pl.SeasonID)
	assert.Equal(t, "Премьер-Лига", pl.Name.In(preference.LanguageKZ))

	cup, ok := registry.Lookup("cup")
	require.True(t, ok)
	assert.True(t, cup.HasBracket)
	assert.Equal(t, "Кубок Казахстана", cup.Name.In(preference.LanguageRU))

	_, ok = registry.Lookup("unknown")
	assert.False(t, ok)
	assert.Equal(t, PremierLeagueID, registry.ResolveID("unknown"))
	assert.Equal(t, FirstLeagueID, registry.ResolveID("1L"))
	assert.Equal(t, PremierLeagueID, registry.Default().ID)
}

func TestRegistry_LookupReturnsCopies(t *testing.T) {
	t.Parallel()

	registry := newTestRegistry(t, PreSeasonPolicy{})

	first, ok := registry.Lookup(FirstLeagueID)
	require.True(t, ok)
	require.NotNil(t, first.TotalRounds)
	*first.TotalRounds = 99

	again, _ := registry.Lookup(FirstLeagueID)
	assert.Equal(t, 30, *again.TotalRounds)
}

func TestRegistry_AllIsOrdered(t *testing.T) {
	t.Parallel()

	registry := newTestRegistry(t, PreSeasonPolicy{})

	ids := make([]string, 0)
	for _, item := range registry.All() {
		ids = append(ids, item.ID)
	}
	assert.Equal(t, []string{"pl", "1l", "cup", "2l", "wl", "supercup"}, ids)
}

func TestRegistry_SecondLeagueStages(t *testing.T) {
	t.Parallel()

	registry := newTestRegistry(t, PreSeasonPolicy{})

	stage, ok := ParseSecondLeagueStage(" Final ")
	require.True(t, ok)
	assert.Equal(t, int64(157), registry.SeasonFor(SecondLeagueID, stage))
	assert.Equal(t, int64(81), registry.SeasonFor(SecondLeagueID, StageB))
	assert.Equal(t, int64(80), registry.SeasonFor(SecondLeagueID, ""))

	// Stages never leak into other tournaments.
	assert.Equal(t, int64(61), registry.SeasonFor(PremierLeagueID, StageFinal))

	_, ok = ParseSecondLeagueStage("c")
	assert.False(t, ok)
}

func TestNewRegistry_RejectsInvalidCatalog(t *testing.T) {
	t.Parallel()

	_, err := NewRegistry(RegistryConfig{Tournaments: Catalog(), DefaultID: "missing"})
	require.Error(t, err)

	dup := append(Catalog(), Tournament{ID: "PL", SeasonID: 1})
	_, err = NewRegistry(RegistryConfig{Tournaments: dup, DefaultID: PremierLeagueID})
	require.Error(t, err)

	_, err = NewDefaultRegistry("", PreSeasonPolicy{Enabled: true, CurrentSeasonID: 200})
	require.Error(t, err)
}

func TestRegistry_PreSeasonSplitsStatsAndMatches(t *testing.T) {
	t.Parallel()

	registry := newTestRegistry(t, PreSeasonPolicy{Enabled: true, CurrentSeasonID: 200, PreviousSeasonID: 61})

	pl, ok := registry.Lookup(PremierLeagueID)
	require.True(t, ok)
	assert.Equal(t, int64(61), pl.SeasonID)

	stats := registry.StatsSeason(PremierLeagueID, "")
	assert.Equal(t, StatePreSeason, stats.State)
	assert.Equal(t, int64(61), stats.SeasonID)
	assert.Nil(t, stats.DateWindow)

	matches := registry.MatchesSeason(PremierLeagueID, "")
	assert.Equal(t, int64(200), matches.SeasonID)
	require.NotNil(t, matches.DateWindow)
	assert.Equal(t, DateWindow{From: "2026-03-01", To: "2026-03-15"}, *matches.DateWindow)

	// Other tournaments are untouched.
	first := registry.MatchesSeason(FirstLeagueID, "")
	assert.Equal(t, int64(85), first.SeasonID)
	assert.Nil(t, first.DateWindow)
}

func TestRegistry_InSeasonResolution(t *testing.T) {
	t.Parallel()

	registry := newTestRegistry(t, PreSeasonPolicy{CurrentSeasonID: 200, PreviousSeasonID: 61})

	stats := registry.StatsSeason("", "")
	matches := registry.MatchesSeason("", "")
	assert.Equal(t, StateInSeason, stats.State)
	assert.Equal(t, int64(61), stats.SeasonID)
	assert.Equal(t, int64(61), matches.SeasonID)
	assert.Nil(t, matches.DateWindow)
}

package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kzleague/league-site/internal/config"
	"github.com/kzleague/league-site/internal/platform/logging"
)

func testConfig() config.Config {
	return config.Config{
		HTTPAddr:               ":0",
		ReadTimeout:            time.Second,
		WriteTimeout:           time.Second,
		LeagueAPIBaseURL:       "http://127.0.0.1:1",
		LeagueAPITimeout:       time.Second,
		CacheTTL:               time.Minute,
		CacheRevalidateWorkers: 2,
		PrefetchMaxConcurrency: 4,
		DefaultTournamentID:    "pl",
		PreferenceStore:        config.PreferenceStoreMemory,
		MetricsEnabled:         true,
	}
}

func TestNew_WiresRouterWithMetrics(t *testing.T) {
	a, err := New(context.Background(), testConfig(), logging.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Shutdown(context.Background()) })

	for _, path := range []string{"/healthz", "/metrics"} {
		rec := httptest.NewRecorder()
		a.Server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestNew_MetricsDisabledHidesEndpoint(t *testing.T) {
	cfg := testConfig()
	cfg.MetricsEnabled = false

	a, err := New(context.Background(), cfg, logging.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Shutdown(context.Background()) })

	assert.Nil(t, a.Metrics)
	rec := httptest.NewRecorder()
	a.Server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNew_RejectsUnknownTournament(t *testing.T) {
	cfg := testConfig()
	cfg.DefaultTournamentID = "unknown"

	_, err := New(context.Background(), cfg, logging.NewNop())
	require.Error(t, err)
}

func TestShutdown_ReleasesInReverseOrder(t *testing.T) {
	a := &App{logger: logging.NewNop()}
	var order []string
	a.onShutdown("first", func(context.Context) error { order = append(order, "first"); return nil })
	a.onShutdown("second", func(context.Context) error { order = append(order, "second"); return nil })

	require.NoError(t, a.Shutdown(context.Background()))
	assert.Equal(t, []string{"second", "first"}, order)
}

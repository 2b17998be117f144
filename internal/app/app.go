package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/kzleague/league-site/external/leagueapi"
	"github.com/kzleague/league-site/internal/config"
	"github.com/kzleague/league-site/internal/domain/tournament"
	"github.com/kzleague/league-site/internal/infrastructure/prefstore"
	"github.com/kzleague/league-site/internal/interfaces/httpapi"
	"github.com/kzleague/league-site/internal/observability"
	"github.com/kzleague/league-site/internal/platform/cache"
	"github.com/kzleague/league-site/internal/platform/logging"
	"github.com/kzleague/league-site/internal/platform/resilience"
	"github.com/kzleague/league-site/internal/prefetch"
	"github.com/kzleague/league-site/internal/usecase"
)

// App owns the HTTP server and everything that must be released with it.
type App struct {
	Server  *http.Server
	Metrics *observability.Metrics

	logger  *logging.Logger
	closers []namedCloser
}

type namedCloser struct {
	name  string
	close func(ctx context.Context) error
}

func (a *App) onShutdown(name string, fn func(ctx context.Context) error) {
	a.closers = append(a.closers, namedCloser{name: name, close: fn})
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	a := &App{logger: logger}
	if cfg.MetricsEnabled {
		a.Metrics = observability.NewMetrics()
	}

	registry, err := tournament.NewDefaultRegistry(cfg.DefaultTournamentID, tournament.PreSeasonPolicy{
		Enabled:          cfg.PreSeasonEnabled,
		CurrentSeasonID:  cfg.PreSeasonCurrentSeasonID,
		PreviousSeasonID: cfg.PreSeasonPreviousSeasonID,
	})
	if err != nil {
		return nil, fmt.Errorf("build tournament registry: %w", err)
	}

	pool, err := cache.NewRevalidatePool(cfg.CacheRevalidateWorkers)
	if err != nil {
		return nil, fmt.Errorf("build revalidate pool: %w", err)
	}
	a.onShutdown("revalidate pool", func(context.Context) error {
		pool.Release()
		return nil
	})

	cacheOpts := []cache.Option{cache.WithRevalidatePool(pool)}
	if a.Metrics != nil {
		cacheOpts = append(cacheOpts, cache.WithObserver(a.Metrics.ObserveCacheEvent))
	}
	store := cache.NewStore(cache.Policy{
		TTL:            cfg.CacheTTL,
		DedupeInterval: cfg.CacheDedupeInterval,
	}, cacheOpts...)

	api := leagueapi.NewClient(leagueapi.ClientConfig{
		HTTPClient: &http.Client{
			Timeout:   cfg.LeagueAPITimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		BaseURL:      cfg.LeagueAPIBaseURL,
		APIKey:       cfg.LeagueAPIKey,
		Timeout:      cfg.LeagueAPITimeout,
		MaxRetries:   cfg.LeagueAPIMaxRetries,
		RetryBackoff: cfg.LeagueAPIRetryBackoff,
		Logger:       logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.LeagueAPICircuitEnabled,
			FailureThreshold: cfg.LeagueAPICircuitFailureCount,
			OpenTimeout:      cfg.LeagueAPICircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.LeagueAPICircuitHalfOpenMaxReq,
		},
	})

	storage, err := a.preferenceStorage(ctx, cfg)
	if err != nil {
		a.closeAll(ctx)
		return nil, err
	}

	gatewayOpts := []prefetch.GatewayOption{prefetch.WithMaxConcurrency(cfg.PrefetchMaxConcurrency)}
	handlerOpts := []httpapi.HandlerOption{}
	routerCfg := httpapi.RouterConfig{CORSAllowedOrigins: cfg.CORSAllowedOrigins}
	if a.Metrics != nil {
		gatewayOpts = append(gatewayOpts, prefetch.WithObserver(a.Metrics))
		handlerOpts = append(handlerOpts, httpapi.WithLayoutObserver(a.Metrics))
		routerCfg.Metrics = a.Metrics.Handler()
	}

	preferences := usecase.NewPreferenceService(registry, prefstore.NewSafeStorage(storage, logger), logger)
	resources := usecase.NewResourceService(api, store)
	layouts := usecase.NewLayoutService(registry, preferences, resources, prefetch.NewGateway(logger, gatewayOpts...))
	cookies := prefstore.NewCookies(prefstore.CookieOptions{Secure: cfg.CookieSecure, Domain: cfg.CookieDomain})

	handler := httpapi.NewHandler(layouts, preferences, resources, cookies, logger, handlerOpts...)
	a.Server = &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      httpapi.NewRouter(handler, logger, routerCfg),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	logger.Info("app wired",
		"default_tournament", registry.DefaultID(),
		"season_state", registry.PreSeason().State(),
		"preference_store", cfg.PreferenceStore,
		"metrics", a.Metrics != nil,
	)
	return a, nil
}

// Shutdown stops the server and releases resources in reverse order.
func (a *App) Shutdown(ctx context.Context) error {
	var errs []error
	if a.Server != nil {
		if err := a.Server.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("http server: %w", err))
		}
	}
	errs = append(errs, a.closeAll(ctx)...)
	return errors.Join(errs...)
}

func (a *App) closeAll(ctx context.Context) []error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		c := a.closers[i]
		if err := c.close(ctx); err != nil {
			a.logger.Warn("release failed", "resource", c.name, "error", err)
			errs = append(errs, fmt.Errorf("%s: %w", c.name, err))
		}
	}
	a.closers = nil
	return errs
}

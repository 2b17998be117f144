package app

import (
	"context"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"go.opentelemetry.io/otel/attribute"

	"github.com/kzleague/league-site/internal/config"
	"github.com/kzleague/league-site/internal/domain/preference"
	"github.com/kzleague/league-site/internal/infrastructure/prefstore"
)

// preferenceStorage opens the durable store selected by PREFERENCE_STORE.
func (a *App) preferenceStorage(ctx context.Context, cfg config.Config) (preference.Storage, error) {
	switch cfg.PreferenceStore {
	case config.PreferenceStoreRedis:
		client, err := prefstore.NewRedisClient(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("open redis: %w", err)
		}
		if err := client.Ping(ctx).Err(); err != nil {
			a.logger.Warn("redis not reachable at startup", "error", err)
		}
		a.onShutdown("redis", func(context.Context) error { return client.Close() })
		return prefstore.NewRedisStorage(client), nil

	case config.PreferenceStorePostgres:
		dsn := NormalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)
		db, err := otelsqlx.Open("postgres", dsn,
			otelsql.WithAttributes(attribute.String("db.system", "postgresql")),
			otelsql.WithDBName(dbNameFromURL(dsn)),
			otelsql.WithQueryFormatter(formatDBQueryForTrace),
		)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		if err := db.PingContext(ctx); err != nil {
			a.logger.Warn("postgres not reachable at startup", "error", err)
		}
		a.onShutdown("postgres", func(context.Context) error { return db.Close() })
		return prefstore.NewPostgresStorage(db), nil

	default:
		return prefstore.NewMemoryStorage(), nil
	}
}

package prefstore

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/kzleague/league-site/internal/domain/preference"
)

const (
	redisKeyPrefix = "league-site:prefs:"
	redisTTL       = 365 * 24 * time.Hour

	fieldLanguage   = "language"
	fieldTournament = "tournament_id"
	fieldUpdatedAt  = "updated_at"
)

// RedisStorage keeps one hash per visitor. Every save extends its TTL.
type RedisStorage struct {
	client goredis.UniversalClient
	now    func() time.Time
}

func NewRedisStorage(client goredis.UniversalClient) *RedisStorage {
	return &RedisStorage{client: client, now: time.Now}
}

// NewRedisClient parses a redis:// URL into a client.
func NewRedisClient(rawURL string) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return goredis.NewClient(opts), nil
}

func (s *RedisStorage) Load(ctx context.Context, visitorID string) (preference.Stored, bool, error) {
	fields, err := s.client.HGetAll(ctx, redisKey(visitorID)).Result()
	if err != nil {
		return preference.Stored{}, false, fmt.Errorf("load visitor preferences: %w", err)
	}
	if len(fields) == 0 {
		return preference.Stored{}, false, nil
	}

	stored := preference.Stored{
		Language:     fields[fieldLanguage],
		TournamentID: fields[fieldTournament],
	}
	if raw := fields[fieldUpdatedAt]; raw != "" {
		if ts, err := time.Parse(time.RFC3339Nano, raw); err == nil {
			stored.UpdatedAt = ts
		}
	}
	return stored, true, nil
}

func (s *RedisStorage) Save(ctx context.Context, visitorID string, value preference.Stored) error {
	updatedAt := value.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = s.now()
	}

	fields := map[string]any{fieldUpdatedAt: updatedAt.UTC().Format(time.RFC3339Nano)}
	if value.Language != "" {
		fields[fieldLanguage] = value.Language
	}
	if value.TournamentID != "" {
		fields[fieldTournament] = value.TournamentID
	}

	key := redisKey(visitorID)
	_, err := s.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.HSet(ctx, key, fields)
		pipe.Expire(ctx, key, redisTTL)
		return nil
	})
	if err != nil {
		return fmt.Errorf("save visitor preferences: %w", err)
	}
	return nil
}

func redisKey(visitorID string) string {
	return redisKeyPrefix + visitorID
}

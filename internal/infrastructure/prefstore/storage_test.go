package prefstore

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kzleague/league-site/internal/domain/preference"
	"github.com/kzleague/league-site/internal/platform/logging"
)

func TestMemoryStorage_MergesPartialSaves(t *testing.T) {
	t.Parallel()

	store := NewMemoryStorage()
	ctx := context.Background()

	_, ok, err := store.Load(ctx, "v1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Save(ctx, "v1", preference.Stored{Language: "ru"}))
	require.NoError(t, store.Save(ctx, "v1", preference.Stored{TournamentID: "cup"}))

	stored, ok, err := store.Load(ctx, "v1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "ru", stored.Language)
	assert.Equal(t, "cup", stored.TournamentID)
	assert.False(t, stored.UpdatedAt.IsZero())
}

type failingStorage struct{}

func (failingStorage) Load(context.Context, string) (preference.Stored, bool, error) {
	return preference.Stored{Language: "ru"}, true, errors.New("connection refused")
}

func (failingStorage) Save(context.Context, string, preference.Stored) error {
	return errors.New("connection refused")
}

func TestSafeStorage_SwallowsFailures(t *testing.T) {
	t.Parallel()

	safe := NewSafeStorage(failingStorage{}, logging.NewNop())

	stored, ok, err := safe.Load(context.Background(), "v1")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, preference.Stored{}, stored)

	assert.NoError(t, safe.Save(context.Background(), "v1", preference.Stored{Language: "kz"}))
}

func TestSafeStorage_EmptyVisitorSkipsInner(t *testing.T) {
	t.Parallel()

	inner := NewMemoryStorage()
	safe := NewSafeStorage(inner, nil)

	require.NoError(t, safe.Save(context.Background(), " ", preference.Stored{Language: "kz"}))
	assert.Empty(t, inner.data)
}

func TestRedisStorage_RoundTrip(t *testing.T) {
	rawURL := os.Getenv("TEST_REDIS_URL")
	if rawURL == "" {
		t.Skip("TEST_REDIS_URL not set")
	}

	client, err := NewRedisClient(rawURL)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	store := NewRedisStorage(client)
	ctx := context.Background()
	visitor := uuid.NewString()
	t.Cleanup(func() { _ = client.Del(ctx, redisKey(visitor)).Err() })

	at := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	require.NoError(t, store.Save(ctx, visitor, preference.Stored{Language: "ru", UpdatedAt: at}))
	require.NoError(t, store.Save(ctx, visitor, preference.Stored{TournamentID: "1l", UpdatedAt: at}))

	stored, ok, err := store.Load(ctx, visitor)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, preference.Stored{Language: "ru", TournamentID: "1l", UpdatedAt: at}, stored)

	ttl, err := client.TTL(ctx, redisKey(visitor)).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, 364*24*time.Hour)
}

package prefetch

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kzleague/league-site/internal/domain/preference"
	"github.com/kzleague/league-site/internal/platform/logging"
)

type recordingObserver struct {
	mu       sync.Mutex
	outcomes map[string]int
}

func (o *recordingObserver) ObservePrefetch(resource, outcome string, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.outcomes == nil {
		o.outcomes = map[string]int{}
	}
	o.outcomes[resource+"/"+outcome]++
}

func TestGateway_FetchSwallowsFailures(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	observer := &recordingObserver{}
	gateway := NewGateway(logging.NewWriter(&logs, logging.LevelDebug), WithObserver(observer))
	key := TableKey(61, preference.LanguageKZ)

	value, ok := gateway.Fetch(context.Background(), key, func(context.Context) (any, error) {
		return nil, errors.New("backend 503")
	})
	assert.False(t, ok)
	assert.Nil(t, value)

	_, ok = gateway.Fetch(context.Background(), key, func(context.Context) (any, error) {
		panic("decode exploded")
	})
	assert.False(t, ok)

	_, ok = gateway.Fetch(context.Background(), "", func(context.Context) (any, error) {
		t.Fatal("zero key must not fetch")
		return nil, nil
	})
	assert.False(t, ok)

	value, ok = gateway.Fetch(context.Background(), key, func(context.Context) (any, error) {
		return []string{"row"}, nil
	})
	assert.True(t, ok)
	assert.Equal(t, []string{"row"}, value)

	assert.Equal(t, map[string]int{"table/error": 1, "table/panic": 1, "table/ok": 1}, observer.outcomes)
	assert.Contains(t, logs.String(), `"msg":"prefetch failed"`)
	assert.Contains(t, logs.String(), `"key":"table:61:kz"`)
}

func TestGateway_FetchDropsResultAfterCancel(t *testing.T) {
	t.Parallel()

	gateway := NewGateway(logging.NewNop())
	ctx, cancel := context.WithCancel(context.Background())

	_, ok := gateway.Fetch(ctx, MatchKey(9, preference.LanguageKZ), func(context.Context) (any, error) {
		cancel()
		return "late", nil
	})
	assert.False(t, ok)
}

func TestGateway_FetchTreatsTypedNilAsEmpty(t *testing.T) {
	t.Parallel()

	observer := &recordingObserver{}
	gateway := NewGateway(logging.NewNop(), WithObserver(observer))
	key := TeamPlayersKey(7, 61, preference.LanguageKZ)

	for _, result := range []any{[]string(nil), map[string]int(nil), (*Bridge)(nil)} {
		value, ok := gateway.Fetch(context.Background(), key, func(context.Context) (any, error) {
			return result, nil
		})
		assert.False(t, ok, "%T", result)
		assert.Nil(t, value)
	}

	value, ok := gateway.Fetch(context.Background(), key, func(context.Context) (any, error) {
		return []string{}, nil
	})
	assert.True(t, ok, "an empty list is still data")
	assert.Equal(t, []string{}, value)

	assert.Equal(t, map[string]int{"team_players/empty": 3, "team_players/ok": 1}, observer.outcomes)
}

func TestBatch_TypedNilResultNeverReachesBridge(t *testing.T) {
	t.Parallel()

	batch := NewGateway(logging.NewNop()).NewBatch()
	players := TeamPlayersKey(7, 61, preference.LanguageKZ)
	table := TableKey(61, preference.LanguageKZ)
	batch.Add(players, func(context.Context) (any, error) { return []string(nil), nil })
	batch.Add(table, func(context.Context) (any, error) { return "table", nil })

	bridge := batch.Run(context.Background())
	assert.False(t, bridge.Has(players))
	assert.Equal(t, []Key{table}, bridge.Keys())

	data, err := bridge.MarshalJSON()
	require.NoError(t, err)
	decoded, err := DecodeBridge(data)
	require.NoError(t, err)
	assert.False(t, decoded.Has(players))
	assert.True(t, decoded.Has(table))
}

func TestBatch_RunBuildsBridge(t *testing.T) {
	t.Parallel()

	gateway := NewGateway(logging.NewNop(), WithMaxConcurrency(2))
	batch := gateway.NewBatch()

	var calls atomic.Int32
	ok := func(v any) FetchFunc {
		return func(context.Context) (any, error) {
			calls.Add(1)
			return v, nil
		}
	}

	table := TableKey(61, preference.LanguageKZ)
	assert.True(t, batch.Add(table, ok("table")))
	assert.False(t, batch.Add(table, ok("duplicate")))
	assert.False(t, batch.Add(TeamKey(0, 61, preference.LanguageKZ), ok("zero")))
	assert.True(t, batch.Add(SeasonsKey(preference.LanguageKZ), ok("seasons")))
	assert.True(t, batch.Add(MatchKey(1, preference.LanguageKZ), func(context.Context) (any, error) {
		calls.Add(1)
		return nil, errors.New("not found")
	}))
	assert.Equal(t, 3, batch.Len())

	bridge := batch.Run(context.Background())
	require.NotNil(t, bridge)
	assert.Equal(t, int32(3), calls.Load())
	assert.Equal(t, 2, bridge.Len())
	assert.False(t, bridge.Has(MatchKey(1, preference.LanguageKZ)))

	got, found := Lookup[string](bridge, table)
	assert.True(t, found)
	assert.Equal(t, "table", got)
}

func TestBatch_RunsConcurrently(t *testing.T) {
	t.Parallel()

	gateway := NewGateway(logging.NewNop(), WithMaxConcurrency(6))
	batch := gateway.NewBatch()

	var running, peak atomic.Int32
	release := make(chan struct{})
	for i := int64(1); i <= 6; i++ {
		batch.Add(MatchKey(i, preference.LanguageKZ), func(context.Context) (any, error) {
			n := running.Add(1)
			for {
				current := peak.Load()
				if n <= current || peak.CompareAndSwap(current, n) {
					break
				}
			}
			<-release
			running.Add(-1)
			return i, nil
		})
	}

	done := make(chan *Bridge)
	go func() { done <- batch.Run(context.Background()) }()

	require.Eventually(t, func() bool { return running.Load() == 6 }, time.Second, 5*time.Millisecond)
	close(release)

	bridge := <-done
	assert.Equal(t, int32(6), peak.Load())
	assert.Equal(t, 6, bridge.Len())
}

func TestBatch_RunAfterCancelIsEmpty(t *testing.T) {
	t.Parallel()

	gateway := NewGateway(logging.NewNop())
	batch := gateway.NewBatch()
	batch.Add(TableKey(61, preference.LanguageKZ), func(context.Context) (any, error) { return "x", nil })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Equal(t, 0, batch.Run(ctx).Len())
}

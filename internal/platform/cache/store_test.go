package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_GetOrLoad_UsesSingleFlight(t *testing.T) {
	t.Parallel()

	store := NewStore(Policy{TTL: time.Minute})
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "value", nil
	}

	const workers = 32
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	errCh := make(chan error, workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err := store.GetOrLoad(context.Background(), "same-key", loader)
			if err != nil {
				errCh <- err
				return
			}
			if got, _ := v.(string); got != "value" {
				errCh <- errUnexpectedValue
			}
		}()
	}

	close(start)
	wg.Wait()
	close(errCh)
	for err := range errCh {
		require.NoError(t, err)
	}

	assert.Equal(t, int32(1), calls.Load())
}

func TestStore_GetOrLoad_UsesCachedValueAfterFirstLoad(t *testing.T) {
	t.Parallel()

	store := NewStore(Policy{TTL: time.Minute})
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		return "cached", nil
	}

	_, err := store.GetOrLoad(context.Background(), "k", loader)
	require.NoError(t, err)
	_, err = store.GetOrLoad(context.Background(), "k", loader)
	require.NoError(t, err)

	assert.Equal(t, int32(1), calls.Load())
}

func TestStore_GetOrLoad_ServesStaleAndRevalidates(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	var nowMu sync.Mutex
	store := NewStore(Policy{TTL: time.Minute})
	store.now = func() time.Time {
		nowMu.Lock()
		defer nowMu.Unlock()
		return now
	}

	store.Set(context.Background(), "k", "old")

	nowMu.Lock()
	now = now.Add(2 * time.Minute)
	nowMu.Unlock()

	refreshed := make(chan struct{})
	v, err := store.GetOrLoad(context.Background(), "k", func(context.Context) (any, error) {
		defer close(refreshed)
		return "new", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "old", v)

	select {
	case <-refreshed:
	case <-time.After(time.Second):
		t.Fatalf("background revalidation did not run")
	}
	require.Eventually(t, func() bool {
		got, _, _ := store.Peek("k")
		return got == "new"
	}, time.Second, 5*time.Millisecond)
}

func TestStore_Do_KeepsPreviousValueOnFailure(t *testing.T) {
	t.Parallel()

	store := NewStore(Policy{})
	store.Set(context.Background(), "k", "kept")

	_, err := store.Do(context.Background(), "k", func(context.Context) (any, error) {
		return nil, errors.New("upstream down")
	})
	require.Error(t, err)

	v, _, ok := store.Peek("k")
	require.True(t, ok)
	assert.Equal(t, "kept", v)
}

func TestStore_Do_DedupeWindowAndInvalidate(t *testing.T) {
	t.Parallel()

	store := NewStore(Policy{DedupeInterval: time.Hour})
	var calls atomic.Int32
	loader := func(context.Context) (any, error) {
		return int(calls.Add(1)), nil
	}

	first, err := store.Do(context.Background(), "k", loader)
	require.NoError(t, err)
	second, err := store.Do(context.Background(), "k", loader)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), calls.Load())

	store.Invalidate("k")
	_, fresh, ok := store.Peek("k")
	assert.True(t, ok)
	assert.False(t, fresh)

	third, err := store.Do(context.Background(), "k", loader)
	require.NoError(t, err)
	assert.Equal(t, 2, third)
}

func TestStore_SubscribeAndSeed(t *testing.T) {
	t.Parallel()

	store := NewStore(Policy{})
	var got []any
	unsubscribe := store.Subscribe("k", func(v any) { got = append(got, v) })

	assert.True(t, store.Seed("k", "seed"))
	assert.False(t, store.Seed("k", "again"))

	store.Set(context.Background(), "k", "one")
	unsubscribe()
	store.Set(context.Background(), "k", "two")

	assert.Equal(t, []any{"one"}, got)
}

func TestStore_EmptyKeyBypassesCache(t *testing.T) {
	t.Parallel()

	store := NewStore(Policy{TTL: time.Minute})
	var calls atomic.Int32
	loader := func(context.Context) (any, error) { calls.Add(1); return "x", nil }

	_, _ = store.GetOrLoad(context.Background(), "", loader)
	_, _ = store.GetOrLoad(context.Background(), "", loader)
	assert.Equal(t, int32(2), calls.Load())
}

func TestStore_DeleteAndDeletePrefix(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(Policy{})
	store.Set(ctx, "table:61:kz", 1)
	store.Set(ctx, "table:61:ru", 2)
	store.Set(ctx, "table:611:kz", 3)
	store.Set(ctx, "match:9:kz", 4)

	store.Delete(ctx, "match:9:kz")
	_, _, ok := store.Peek("match:9:kz")
	assert.False(t, ok)

	store.DeletePrefix(ctx, "table:61:")
	for _, key := range []string{"table:61:kz", "table:61:ru"} {
		_, _, ok := store.Peek(key)
		assert.False(t, ok, key)
	}
	_, _, ok = store.Peek("table:611:kz")
	assert.True(t, ok)

	store.DeletePrefix(ctx, "")
	_, _, ok = store.Peek("table:611:kz")
	assert.True(t, ok, "empty prefix is a no-op")
}

var errUnexpectedValue = errors.New("unexpected loaded value")

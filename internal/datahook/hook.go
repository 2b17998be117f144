package datahook

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/kzleague/league-site/internal/platform/cache"
	"github.com/kzleague/league-site/internal/prefetch"
)

var ErrUnexpectedType = errors.New("cached value has unexpected type")

// Cache is the shared keyed cache hooks delegate to. Do must collapse
// concurrent fetches of one key into a single call.
type Cache interface {
	Peek(key string) (value any, fresh bool, ok bool)
	Seed(key string, value any) bool
	Subscribe(key string, fn func(value any)) func()
	Invalidate(key string)
	Do(ctx context.Context, key string, loader cache.Loader) (any, error)
}

// Policy controls when a hook revalidates.
type Policy struct {
	// DedupeInterval suppresses focus revalidation this soon after a fetch.
	DedupeInterval time.Duration
	// RevalidateOnFocus refetches on Focus.
	RevalidateOnFocus bool
	// RevalidateOnMount refetches on Load even when data is already present.
	RevalidateOnMount bool
}

func DefaultPolicy() Policy {
	return Policy{DedupeInterval: 2 * time.Second, RevalidateOnFocus: true}
}

type Fetcher[T any] func(ctx context.Context) (T, error)

// State is what a hook exposes. Loading means no data yet, no error, and a
// request is due; it stays false while revalidating over existing data.
type State[T any] struct {
	Data    T
	HasData bool
	Loading bool
	Err     error
}

// Hook binds one key to the shared cache.
type Hook[T any] struct {
	cache  Cache
	key    prefetch.Key
	fetch  Fetcher[T]
	policy Policy
	now    func() time.Time

	mu          sync.Mutex
	state       State[T]
	lastFetch   time.Time
	closed      bool
	unsubscribe func()
}

// New creates a hook for key. A zero key never fetches.
func New[T any](c Cache, key prefetch.Key, fetch Fetcher[T], policy Policy) *Hook[T] {
	h := &Hook[T]{
		cache:       c,
		key:         key,
		fetch:       fetch,
		policy:      policy,
		now:         time.Now,
		unsubscribe: func() {},
	}
	if key.IsZero() || c == nil || fetch == nil {
		return h
	}

	if value, _, ok := c.Peek(key.String()); ok {
		h.accept(value)
	}
	h.state.Loading = !h.state.HasData
	h.unsubscribe = c.Subscribe(key.String(), func(value any) {
		h.mu.Lock()
		defer h.mu.Unlock()
		if !h.closed {
			h.accept(value)
		}
	})
	return h
}

// WithFallback seeds the cache with a hydrated value unless the key already
// holds data.
func (h *Hook[T]) WithFallback(value T) *Hook[T] {
	if h.key.IsZero() || h.cache == nil {
		return h
	}
	h.cache.Seed(h.key.String(), value)

	h.mu.Lock()
	defer h.mu.Unlock()
	if current, _, ok := h.cache.Peek(h.key.String()); ok {
		h.accept(current)
	}
	if h.state.HasData && h.lastFetch.IsZero() {
		h.lastFetch = h.now()
	}
	return h
}

func (h *Hook[T]) Key() prefetch.Key {
	return h.key
}

func (h *Hook[T]) State() State[T] {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}

// Load is the mount-time read: it fetches unless data is already present and
// the policy does not ask for revalidation.
func (h *Hook[T]) Load(ctx context.Context) State[T] {
	if !h.active() {
		return h.State()
	}
	if h.State().HasData && !h.policy.RevalidateOnMount {
		return h.State()
	}
	return h.run(ctx, false)
}

// Refetch reissues the request for the same key, bypassing the dedupe window.
func (h *Hook[T]) Refetch(ctx context.Context) State[T] {
	if !h.active() {
		return h.State()
	}
	return h.run(ctx, true)
}

// Focus revalidates when the policy allows it and the last fetch is older
// than the dedupe interval.
func (h *Hook[T]) Focus(ctx context.Context) State[T] {
	if !h.active() || !h.policy.RevalidateOnFocus {
		return h.State()
	}
	h.mu.Lock()
	recent := !h.lastFetch.IsZero() && h.now().Sub(h.lastFetch) < h.policy.DedupeInterval
	h.mu.Unlock()
	if recent {
		return h.State()
	}
	return h.run(ctx, false)
}

// Close detaches the hook; results arriving afterwards are ignored.
func (h *Hook[T]) Close() {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	h.closed = true
	unsubscribe := h.unsubscribe
	h.mu.Unlock()
	unsubscribe()
}

func (h *Hook[T]) active() bool {
	if h.key.IsZero() || h.cache == nil || h.fetch == nil {
		return false
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	return !h.closed
}

func (h *Hook[T]) run(ctx context.Context, force bool) State[T] {
	key := h.key.String()
	if force {
		h.cache.Invalidate(key)
	}

	value, err := h.cache.Do(ctx, key, func(ctx context.Context) (any, error) {
		return h.fetch(ctx)
	})

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return h.state
	}
	h.lastFetch = h.now()
	h.state.Loading = false
	if err != nil {
		h.state.Err = err
		return h.state
	}
	h.accept(value)
	return h.state
}

// accept installs value as data. Callers hold mu, except during New.
func (h *Hook[T]) accept(value any) {
	typed, ok := value.(T)
	if !ok {
		h.state.Err = fmt.Errorf("%w: key %s holds %T", ErrUnexpectedType, h.key, value)
		return
	}
	h.state.Data = typed
	h.state.HasData = true
	h.state.Loading = false
	h.state.Err = nil
}

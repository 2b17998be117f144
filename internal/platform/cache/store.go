package cache

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/kzleague/league-site/internal/platform/resilience"
	"github.com/panjf2000/ants/v2"
)

// Event names reported to the observer.
const (
	EventHit               = "hit"
	EventStale             = "stale"
	EventMiss              = "miss"
	EventLoadError         = "load_error"
	EventRevalidate        = "revalidate"
	EventRevalidateDropped = "revalidate_dropped"
	EventDeduped           = "deduped"
)

// Policy controls freshness and revalidation.
type Policy struct {
	// TTL is how long a value stays fresh. Zero keeps values fresh forever.
	TTL time.Duration
	// DedupeInterval collapses repeated fetches of one key started within the window.
	DedupeInterval time.Duration
	// RevalidateOnFocus lets hooks refetch when the view regains focus.
	RevalidateOnFocus bool
}

type Loader func(ctx context.Context) (any, error)

type entry struct {
	value     any
	storedAt  time.Time
	fetchedAt time.Time
	stale     bool
}

type subscriber struct {
	id uint64
	fn func(value any)
}

// Store is a keyed in-process cache with in-flight de-duplication,
// subscriptions and stale-while-revalidate reads.
type Store struct {
	mu      sync.RWMutex
	entries map[string]entry
	subs    map[string][]subscriber
	nextSub uint64

	policy   Policy
	flight   resilience.SingleFlight
	workers  *ants.Pool
	observer func(event string)
	now      func() time.Time
}

type Option func(*Store)

// WithRevalidatePool runs background revalidations on pool. Without a pool
// stale entries are revalidated on a plain goroutine.
func WithRevalidatePool(pool *ants.Pool) Option {
	return func(s *Store) { s.workers = pool }
}

func WithObserver(fn func(event string)) Option {
	return func(s *Store) { s.observer = fn }
}

func NewStore(policy Policy, opts ...Option) *Store {
	s := &Store{
		entries: make(map[string]entry),
		subs:    make(map[string][]subscriber),
		policy:  policy,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewRevalidatePool builds a non-blocking worker pool for background refreshes.
func NewRevalidatePool(size int) (*ants.Pool, error) {
	if size < 1 {
		size = 1
	}
	return ants.NewPool(size, ants.WithNonblocking(true))
}

func (s *Store) Policy() Policy {
	return s.policy
}

// Peek returns the stored value regardless of freshness.
func (s *Store) Peek(key string) (value any, fresh bool, ok bool) {
	if key == "" {
		return nil, false, false
	}

	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false, false
	}
	return e.value, s.isFresh(e), true
}

func (s *Store) isFresh(e entry) bool {
	if e.stale {
		return false
	}
	if s.policy.TTL <= 0 {
		return true
	}
	return s.now().Sub(e.storedAt) < s.policy.TTL
}

func (s *Store) Set(_ context.Context, key string, value any) {
	if key == "" {
		return
	}

	now := s.now()
	s.mu.Lock()
	s.entries[key] = entry{value: value, storedAt: now, fetchedAt: now}
	subs := append([]subscriber(nil), s.subs[key]...)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn(value)
	}
}

// Seed stores value only when key has no entry yet. It reports whether the
// value was stored. Seeded values count as fetched now for dedupe purposes.
func (s *Store) Seed(key string, value any) bool {
	if key == "" {
		return false
	}

	s.mu.Lock()
	if _, exists := s.entries[key]; exists {
		s.mu.Unlock()
		return false
	}
	now := s.now()
	s.entries[key] = entry{value: value, storedAt: now, fetchedAt: now}
	s.mu.Unlock()
	return true
}

func (s *Store) Delete(_ context.Context, key string) {
	if key == "" {
		return
	}

	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
	s.flight.Forget(key)
}

func (s *Store) DeletePrefix(_ context.Context, prefix string) {
	if prefix == "" {
		return
	}

	s.mu.Lock()
	for key := range s.entries {
		if strings.HasPrefix(key, prefix) {
			delete(s.entries, key)
		}
	}
	s.mu.Unlock()
}

// Invalidate marks key stale without dropping its value, so readers keep the
// last known data while the next fetch bypasses the dedupe window.
func (s *Store) Invalidate(key string) {
	if key == "" {
		return
	}

	s.mu.Lock()
	if e, ok := s.entries[key]; ok {
		e.stale = true
		e.fetchedAt = time.Time{}
		s.entries[key] = e
	}
	s.mu.Unlock()
	s.flight.Forget(key)
}

// Subscribe registers fn for every value stored under key. The returned
// function removes the subscription.
func (s *Store) Subscribe(key string, fn func(value any)) func() {
	if key == "" || fn == nil {
		return func() {}
	}

	s.mu.Lock()
	s.nextSub++
	id := s.nextSub
	s.subs[key] = append(s.subs[key], subscriber{id: id, fn: fn})
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			list := s.subs[key]
			for i, sub := range list {
				if sub.id == id {
					s.subs[key] = append(list[:i:i], list[i+1:]...)
					break
				}
			}
			if len(s.subs[key]) == 0 {
				delete(s.subs, key)
			}
		})
	}
}

// GetOrLoad returns a fresh value, or a stale one while refreshing it in the
// background, or loads synchronously on a miss. Concurrent misses share one load.
func (s *Store) GetOrLoad(ctx context.Context, key string, loader Loader) (any, error) {
	if loader == nil {
		return nil, fmt.Errorf("loader is required")
	}
	if key == "" {
		return loader(ctx)
	}

	if value, fresh, ok := s.Peek(key); ok {
		if fresh {
			s.observe(EventHit)
			return value, nil
		}
		s.observe(EventStale)
		s.revalidate(ctx, key, loader)
		return value, nil
	}

	s.observe(EventMiss)
	return s.load(ctx, key, loader)
}

// Do fetches key through the shared in-flight group and stores the result.
// Within the dedupe window a recent value is returned without fetching. A
// failed fetch leaves any previous value in place.
func (s *Store) Do(ctx context.Context, key string, loader Loader) (any, error) {
	if loader == nil {
		return nil, fmt.Errorf("loader is required")
	}
	if key == "" {
		return loader(ctx)
	}

	if value, ok := s.recent(key); ok {
		s.observe(EventDeduped)
		return value, nil
	}
	return s.load(ctx, key, loader)
}

func (s *Store) recent(key string) (any, bool) {
	if s.policy.DedupeInterval <= 0 {
		return nil, false
	}

	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok || e.fetchedAt.IsZero() {
		return nil, false
	}
	if s.now().Sub(e.fetchedAt) >= s.policy.DedupeInterval {
		return nil, false
	}
	return e.value, true
}

func (s *Store) load(ctx context.Context, key string, loader Loader) (any, error) {
	value, err, _ := s.flight.Do(key, func() (any, error) {
		loaded, loadErr := loader(ctx)
		if loadErr != nil {
			s.observe(EventLoadError)
			return nil, loadErr
		}
		s.Set(ctx, key, loaded)
		return loaded, nil
	})
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (s *Store) revalidate(ctx context.Context, key string, loader Loader) {
	if s.flight.InFlight(key) {
		return
	}

	bg := context.WithoutCancel(ctx)
	task := func() {
		_, _ = s.load(bg, key, loader)
	}

	if s.workers == nil {
		s.observe(EventRevalidate)
		go task()
		return
	}
	if err := s.workers.Submit(task); err != nil {
		s.observe(EventRevalidateDropped)
		return
	}
	s.observe(EventRevalidate)
}

func (s *Store) observe(event string) {
	if s.observer != nil {
		s.observer(event)
	}
}

package prefetch

import (
	"context"
	"errors"
	"reflect"
	"time"

	"github.com/sourcegraph/conc/panics"
	"github.com/sourcegraph/conc/pool"

	"github.com/kzleague/league-site/internal/platform/logging"
)

// Fetch outcomes reported to the Observer.
const (
	OutcomeOK       = "ok"
	OutcomeError    = "error"
	OutcomePanic    = "panic"
	OutcomeCanceled = "canceled"
	OutcomeEmpty    = "empty"
)

const DefaultMaxConcurrency = 6

type FetchFunc func(ctx context.Context) (any, error)

// Observer receives one call per attempted fetch.
type Observer interface {
	ObservePrefetch(resource, outcome string, elapsed time.Duration)
}

// Gateway runs server-side prefetches. A failed prefetch never fails the
// caller: it is logged and reported as absent.
type Gateway struct {
	logger         *logging.Logger
	observer       Observer
	maxConcurrency int
}

type GatewayOption func(*Gateway)

func WithMaxConcurrency(n int) GatewayOption {
	return func(g *Gateway) {
		if n > 0 {
			g.maxConcurrency = n
		}
	}
}

func WithObserver(observer Observer) GatewayOption {
	return func(g *Gateway) { g.observer = observer }
}

func NewGateway(logger *logging.Logger, opts ...GatewayOption) *Gateway {
	if logger == nil {
		logger = logging.Default()
	}
	g := &Gateway{
		logger:         logger.Named("prefetch"),
		maxConcurrency: DefaultMaxConcurrency,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Fetch runs fn for key. ok is false when the key is zero, fn fails or
// panics, or ctx is done by the time fn returns.
func (g *Gateway) Fetch(ctx context.Context, key Key, fn FetchFunc) (value any, ok bool) {
	if key.IsZero() || fn == nil {
		return nil, false
	}
	if ctx.Err() != nil {
		g.observe(key, OutcomeCanceled, 0)
		return nil, false
	}

	startedAt := time.Now()
	var (
		result any
		err    error
	)
	var catcher panics.Catcher
	catcher.Try(func() {
		result, err = fn(ctx)
	})
	elapsed := time.Since(startedAt)

	if recovered := catcher.Recovered(); recovered != nil {
		g.observe(key, OutcomePanic, elapsed)
		g.logger.WarnContext(ctx, "prefetch panicked", "key", key.String(), "resource", key.Resource(), "error", recovered.AsError())
		return nil, false
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		g.observe(key, OutcomeCanceled, elapsed)
		g.logger.DebugContext(ctx, "prefetch result dropped", "key", key.String(), "error", ctxErr)
		return nil, false
	}
	if err != nil {
		outcome := OutcomeError
		if errors.Is(err, context.Canceled) {
			outcome = OutcomeCanceled
		}
		g.observe(key, outcome, elapsed)
		g.logger.WarnContext(ctx, "prefetch failed", "key", key.String(), "resource", key.Resource(), "error", err)
		return nil, false
	}
	if isNil(result) {
		g.observe(key, OutcomeEmpty, elapsed)
		return nil, false
	}

	g.observe(key, OutcomeOK, elapsed)
	return result, true
}

// isNil also catches typed nils: they marshal as null and a bridge reader
// would drop them anyway.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Chan, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}

func (g *Gateway) observe(key Key, outcome string, elapsed time.Duration) {
	if g.observer != nil {
		g.observer.ObservePrefetch(key.Resource(), outcome, elapsed)
	}
}

type batchEntry struct {
	key Key
	fn  FetchFunc
}

// Batch collects the prefetches of one request.
type Batch struct {
	gateway *Gateway
	entries []batchEntry
	seen    map[Key]struct{}
}

func (g *Gateway) NewBatch() *Batch {
	return &Batch{gateway: g, seen: make(map[Key]struct{})}
}

// Add registers fn for key. Zero and already registered keys are skipped.
func (b *Batch) Add(key Key, fn FetchFunc) bool {
	if key.IsZero() || fn == nil {
		return false
	}
	if _, dup := b.seen[key]; dup {
		return false
	}
	b.seen[key] = struct{}{}
	b.entries = append(b.entries, batchEntry{key: key, fn: fn})
	return true
}

func (b *Batch) Len() int {
	return len(b.entries)
}

// Run fans the fetches out, waits for all of them and freezes the results.
func (b *Batch) Run(ctx context.Context) *Bridge {
	if len(b.entries) == 0 || ctx.Err() != nil {
		return EmptyBridge()
	}

	type result struct {
		value any
		ok    bool
	}
	results := make([]result, len(b.entries))

	p := pool.New().WithMaxGoroutines(b.gateway.maxConcurrency)
	for i, item := range b.entries {
		p.Go(func() {
			value, ok := b.gateway.Fetch(ctx, item.key, item.fn)
			results[i] = result{value: value, ok: ok}
		})
	}
	p.Wait()

	if ctx.Err() != nil {
		return EmptyBridge()
	}

	entries := make(map[Key]any, len(b.entries))
	for i, item := range b.entries {
		if results[i].ok {
			entries[item.key] = results[i].value
		}
	}
	return newBridge(entries)
}

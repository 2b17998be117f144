package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsNamespace = "league_site"

// Metrics holds the site's collectors on a private registry.
type Metrics struct {
	registry         *prometheus.Registry
	prefetchTotal    *prometheus.CounterVec
	prefetchDuration *prometheus.HistogramVec
	cacheEvents      *prometheus.CounterVec
	layoutDuration   *prometheus.HistogramVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		prefetchTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "prefetch_total",
			Help:      "Server-side prefetches by resource and outcome.",
		}, []string{"resource", "outcome"}),
		prefetchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "prefetch_duration_seconds",
			Help:      "Latency of server-side prefetches.",
			Buckets:   []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"resource"}),
		cacheEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "cache_events_total",
			Help:      "Shared resource cache events.",
		}, []string{"event"}),
		layoutDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "layout_duration_seconds",
			Help:      "Time to build a page layout including its prefetches.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.prefetchTotal,
		m.prefetchDuration,
		m.cacheEvents,
		m.layoutDuration,
	)
	return m
}

// ObservePrefetch records one gateway fetch.
func (m *Metrics) ObservePrefetch(resource, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	if resource == "" {
		resource = "unknown"
	}
	m.prefetchTotal.WithLabelValues(resource, outcome).Inc()
	m.prefetchDuration.WithLabelValues(resource).Observe(elapsed.Seconds())
}

func (m *Metrics) ObserveCacheEvent(event string) {
	if m == nil {
		return
	}
	m.cacheEvents.WithLabelValues(event).Inc()
}

func (m *Metrics) ObserveLayout(route string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.layoutDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}

func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Package propmetrics exposes Prometheus metrics for a propcell graph:
// alert dispatch volume and fanout, cache recomputation and invalidation,
// binding outcomes, and cell creation by kind.
package propmetrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/propcell-dev/propcell/pkg/propcell"
)

// Config configures the Prometheus instrumentation.
type Config struct {
	// Namespace is the metrics namespace (default: "propcell").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for recompute duration.
	// Default: prometheus.DefBuckets.
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer.
	Registry prometheus.Registerer
}

// Option configures the Prometheus instrumentation.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) { c.Namespace = namespace }
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) Option {
	return func(c *Config) { c.Subsystem = subsystem }
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) { c.ConstLabels = labels }
}

// WithBuckets sets the recompute-duration histogram buckets.
func WithBuckets(buckets []float64) Option {
	return func(c *Config) { c.Buckets = buckets }
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) { c.Registry = registry }
}

func defaultConfig() Config {
	return Config{
		Namespace: "propcell",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// metrics holds the Prometheus metrics for the graph.
type metrics struct {
	alertsTotal        *prometheus.CounterVec
	alertFanout        prometheus.Histogram
	recomputeSeconds   *prometheus.HistogramVec
	invalidationsTotal *prometheus.CounterVec
	bindingsTotal      *prometheus.CounterVec
	cellsTotal         *prometheus.CounterVec
}

var (
	globalMetrics   *metrics
	globalMetricsMu sync.Mutex
	uninstall       func()
)

func initMetrics(config Config) *metrics {
	factory := promauto.With(config.Registry)

	return &metrics{
		alertsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "alerts_total",
			Help:        "Total number of alerts dispatched, by originating property",
			ConstLabels: config.ConstLabels,
		}, []string{"property"}),

		alertFanout: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "alert_fanout",
			Help:        "Number of subscribers notified per alert",
			ConstLabels: config.ConstLabels,
			Buckets:     []float64{1, 2, 5, 10, 25, 50, 100},
		}),

		recomputeSeconds: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "recompute_duration_seconds",
			Help:        "Cached getter execution time in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"property"}),

		invalidationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "cache_invalidations_total",
			Help:        "Total number of cache invalidations, by cached property",
			ConstLabels: config.ConstLabels,
		}, []string{"property"}),

		bindingsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "bindings_total",
			Help:        "Total number of bind attempts, by outcome",
			ConstLabels: config.ConstLabels,
		}, []string{"status"}),

		cellsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "cells_created_total",
			Help:        "Total number of property cells materialized, by kind",
			ConstLabels: config.ConstLabels,
		}, []string{"kind"}),
	}
}

// Install registers the metrics and hooks them into the propcell graph.
// Metrics are created once; a second Install reuses them (a custom
// registry passed later is ignored).
//
// Example:
//
//	propmetrics.Install(propmetrics.WithNamespace("myapp"))
//	http.Handle("/metrics", promhttp.Handler())
func Install(opts ...Option) {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}

	globalMetricsMu.Lock()
	defer globalMetricsMu.Unlock()
	if globalMetrics == nil {
		globalMetrics = initMetrics(config)
	}
	if uninstall != nil {
		return
	}
	m := globalMetrics

	uninstall = propcell.Instrument(&propcell.Instrumentation{
		CellCreated: func(kind propcell.Kind, name string) {
			m.cellsTotal.WithLabelValues(kind.String()).Inc()
		},
		AlertDispatched: func(origin propcell.Node, subscribers int) {
			m.alertsTotal.WithLabelValues(origin.Name()).Inc()
			m.alertFanout.Observe(float64(subscribers))
		},
		CacheRecomputed: func(name string, seconds float64) {
			m.recomputeSeconds.WithLabelValues(name).Observe(seconds)
		},
		CacheInvalidated: func(name string) {
			m.invalidationsTotal.WithLabelValues(name).Inc()
		},
		BindingInstalled: func(from, to propcell.Node) {
			m.bindingsTotal.WithLabelValues("installed").Inc()
		},
		BindingRejected: func(from, to propcell.Node) {
			m.bindingsTotal.WithLabelValues("rejected").Inc()
		},
	})
}

// Uninstall detaches the metrics from the graph. The registered metrics
// remain in the registry.
func Uninstall() {
	globalMetricsMu.Lock()
	defer globalMetricsMu.Unlock()
	if uninstall != nil {
		uninstall()
		uninstall = nil
	}
}

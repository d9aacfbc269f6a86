// Package metrics provides Prometheus metrics for the bikeshare explorer.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns the Prometheus collectors of one process.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	constLabels      prometheus.Labels
	registry         prometheus.Registerer

	// Session metrics
	sessionsStarted   prometheus.Counter
	sessionsCompleted prometheus.Counter
	invalidInputs     *prometheus.CounterVec

	// Load metrics
	loadDuration   prometheus.Histogram
	recordsLoaded  prometheus.Counter
	recordsMatched prometheus.Gauge
	loadErrors     *prometheus.CounterVec

	// Report metrics
	reportDuration *prometheus.HistogramVec

	// Paginator metrics
	rowsDisplayed prometheus.Counter
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "bikeshare",
		subsystem:        "explorer",
		histogramBuckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		constLabels:      prometheus.Labels{},
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.sessionsStarted = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "sessions_started_total",
		Help:        "Total number of session passes started",
		ConstLabels: m.constLabels,
	})

	m.sessionsCompleted = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "sessions_completed_total",
		Help:        "Total number of session passes that reached the restart prompt",
		ConstLabels: m.constLabels,
	})

	m.invalidInputs = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        "invalid_inputs_total",
			Help:        "Total number of rejected answers by prompt field",
			ConstLabels: m.constLabels,
		},
		[]string{"field"},
	)

	m.loadDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "load_duration_seconds",
		Help:        "Time spent reading and filtering a city file",
		Buckets:     m.histogramBuckets,
		ConstLabels: m.constLabels,
	})

	m.recordsLoaded = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "records_loaded_total",
		Help:        "Total number of trip records read from source files",
		ConstLabels: m.constLabels,
	})

	m.recordsMatched = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "records_matched",
		Help:        "Number of records that passed the filters in the latest pass",
		ConstLabels: m.constLabels,
	})

	m.loadErrors = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        "load_errors_total",
			Help:        "Total number of failed loads by error kind",
			ConstLabels: m.constLabels,
		},
		[]string{"kind"},
	)

	m.reportDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        "report_duration_seconds",
			Help:        "Time spent computing and printing each report",
			Buckets:     m.histogramBuckets,
			ConstLabels: m.constLabels,
		},
		[]string{"reporter"},
	)

	m.rowsDisplayed = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "raw_rows_displayed_total",
		Help:        "Total number of raw rows shown by the paginator",
		ConstLabels: m.constLabels,
	})
}

// RecordSessionStarted increments the started sessions counter.
func RecordSessionStarted() {
	globalManager.sessionsStarted.Inc()
}

// RecordSessionCompleted increments the completed sessions counter.
func RecordSessionCompleted() {
	globalManager.sessionsCompleted.Inc()
}

// RecordInvalidInput increments the rejected answers counter for field.
func RecordInvalidInput(field string) {
	globalManager.invalidInputs.WithLabelValues(field).Inc()
}

// RecordLoad records one successful load: duration, records read and records kept.
func RecordLoad(seconds float64, loaded, matched int) {
	globalManager.loadDuration.Observe(seconds)
	globalManager.recordsLoaded.Add(float64(loaded))
	globalManager.recordsMatched.Set(float64(matched))
}

// RecordLoadError increments the load error counter for kind.
func RecordLoadError(kind string) {
	globalManager.loadErrors.WithLabelValues(kind).Inc()
}

// RecordReportDuration observes the duration of one reporter run.
func RecordReportDuration(reporter string, seconds float64) {
	globalManager.reportDuration.WithLabelValues(reporter).Observe(seconds)
}

// RecordRowsDisplayed adds n to the displayed raw rows counter.
func RecordRowsDisplayed(n int) {
	globalManager.rowsDisplayed.Add(float64(n))
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// WriteTextfile writes every metric of the custom registry to path in the
// text exposition format, suitable for the node exporter textfile collector.
func WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, customRegistry); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	return nil
}

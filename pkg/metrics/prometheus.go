package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics is the global metrics container.
type Metrics struct {
	// Matching metrics
	MatchRunsTotal     *prometheus.CounterVec
	MatchDuration      *prometheus.HistogramVec
	MatchedPairs       prometheus.Gauge
	RosterSize         *prometheus.HistogramVec
	AugmentingPaths    prometheus.Histogram
	UnmatchedCustomers prometheus.Histogram

	// Cache metrics
	CacheRequestsTotal *prometheus.CounterVec

	// Report metrics
	ReportsGenerated *prometheus.CounterVec

	// Service info
	ServiceInfo *prometheus.GaugeVec
}

var defaultMetrics *Metrics

// InitMetrics registers and returns the metrics container.
func InitMetrics(namespace, subsystem string) *Metrics {
	m := &Metrics{
		MatchRunsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "match_runs_total",
				Help:      "Total number of matching runs",
			},
			[]string{"status"},
		),

		MatchDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "match_duration_seconds",
				Help:      "Duration of matching runs",
				Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"source"},
		),

		MatchedPairs: promauto.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "matched_pairs",
				Help:      "Number of pairs produced by the last matching run",
			},
		),

		RosterSize: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "roster_size",
				Help:      "Number of employees and customers in processed rosters",
				Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 5000},
			},
			[]string{"side"},
		),

		AugmentingPaths: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "augmenting_paths",
				Help:      "Number of augmenting paths found per run",
				Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100, 500},
			},
		),

		UnmatchedCustomers: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "unmatched_customers",
				Help:      "Number of customers left unmatched per run",
				Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100},
			},
		),

		CacheRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "cache_requests_total",
				Help:      "Total number of match cache lookups",
			},
			[]string{"result"},
		),

		ReportsGenerated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "reports_generated_total",
				Help:      "Total number of generated reports",
			},
			[]string{"format", "status"},
		),

		ServiceInfo: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "service_info",
				Help:      "Service information",
			},
			[]string{"version", "environment"},
		),
	}

	defaultMetrics = m
	return m
}

// Get returns the global metrics container.
func Get() *Metrics {
	if defaultMetrics == nil {
		return InitMetrics("rostering", "")
	}
	return defaultMetrics
}

// RecordMatchRun records the outcome of a matching run.
func (m *Metrics) RecordMatchRun(source string, success bool, duration time.Duration, matched, unmatched int) {
	status := "success"
	if !success {
		status = "error"
	}

	m.MatchRunsTotal.WithLabelValues(status).Inc()
	m.MatchDuration.WithLabelValues(source).Observe(duration.Seconds())
	if success {
		m.MatchedPairs.Set(float64(matched))
		m.UnmatchedCustomers.Observe(float64(unmatched))
	}
}

// RecordRosterSize records the size of a processed roster.
func (m *Metrics) RecordRosterSize(employees, customers int) {
	m.RosterSize.WithLabelValues("employees").Observe(float64(employees))
	m.RosterSize.WithLabelValues("customers").Observe(float64(customers))
}

// RecordAugmentingPaths records how many augmenting paths a run found.
func (m *Metrics) RecordAugmentingPaths(count int) {
	m.AugmentingPaths.Observe(float64(count))
}

// RecordCacheLookup records a match cache hit or miss.
func (m *Metrics) RecordCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.CacheRequestsTotal.WithLabelValues(result).Inc()
}

// RecordReport records a generated report.
func (m *Metrics) RecordReport(format string, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	m.ReportsGenerated.WithLabelValues(format, status).Inc()
}

// SetServiceInfo sets the service info gauge.
func (m *Metrics) SetServiceInfo(version, environment string) {
	m.ServiceInfo.WithLabelValues(version, environment).Set(1)
}

// Handler returns the HTTP handler for /metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}

// StartMetricsServer starts the HTTP server exposing metrics.
func StartMetricsServer(port int) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK")) //nolint:errcheck
	})

	server := &http.Server{
		Addr:         ":" + strconv.Itoa(port),
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	return server.ListenAndServe()
}

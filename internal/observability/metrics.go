package observability

import (
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/danmuck/fastahdr/internal/header"
)

var (
	registerOnce sync.Once

	parsesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fastahdr",
			Subsystem: "parse",
			Name:      "headers_total",
			Help:      "Header lines parsed, by variant and outcome.",
		},
		[]string{"variant", "outcome"},
	)
	parseFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fastahdr",
			Subsystem: "parse",
			Name:      "failures_total",
			Help:      "Parse failures by error kind.",
		},
		[]string{"variant", "kind"},
	)
	parseDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "fastahdr",
			Subsystem: "parse",
			Name:      "duration_seconds",
			Help:      "Single-header parse duration in seconds.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 8),
		},
		[]string{"variant"},
	)
	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fastahdr",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "fastahdr",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(parsesTotal, parseFailures, parseDuration, httpRequests, httpDuration)
	})
}

// RecordParse tracks one parse attempt. Err may be nil.
func RecordParse(variant string, err error, duration time.Duration) {
	RegisterMetrics()
	outcome := "ok"
	if err != nil {
		outcome = "error"
		parseFailures.WithLabelValues(variant, FailureKind(err)).Inc()
	}
	parsesTotal.WithLabelValues(variant, outcome).Inc()
	parseDuration.WithLabelValues(variant).Observe(duration.Seconds())
}

func RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	RegisterMetrics()
	statusLabel := strconv.Itoa(status)
	httpRequests.WithLabelValues(method, path, statusLabel).Inc()
	httpDuration.WithLabelValues(method, path, statusLabel).Observe(duration.Seconds())
}

// FailureKind flattens a parse error into a stable label value.
func FailureKind(err error) string {
	var syn *header.SyntaxError
	if errors.As(err, &syn) {
		return string(syn.Kind)
	}
	if errors.Is(err, header.ErrIncomplete) {
		return "incomplete"
	}
	return "other"
}

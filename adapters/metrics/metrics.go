// Package metrics provides Prometheus metrics collection for folio.
package metrics

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector holds all Prometheus metrics for the server.
type Collector struct {
	// Request metrics
	RequestsTotal    *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	RequestsInFlight prometheus.Gauge

	// Auth metrics
	LoginAttempts *prometheus.CounterVec
	GateDenials   prometheus.Counter

	// Repository metrics
	StoreErrors *prometheus.CounterVec

	// Upload metrics
	UploadsTotal prometheus.Counter
	UploadErrors prometheus.Counter

	// HotSeat metrics
	VisionRequests *prometheus.CounterVec
}

// NormalizePath replaces identifier path segments with a placeholder so
// per-entity URLs do not explode label cardinality.
func NormalizePath(path string) string {
	segments := strings.Split(path, "/")
	for i, s := range segments {
		if s == "" {
			continue
		}
		if isIdentifier(s) {
			segments[i] = ":id"
		}
	}
	return strings.Join(segments, "/")
}

func isIdentifier(s string) bool {
	// Numeric IDs or UUID-shaped segments
	digits := true
	for _, r := range s {
		if r < '0' || r > '9' {
			digits = false
			break
		}
	}
	if digits {
		return true
	}
	return len(s) == 36 && strings.Count(s, "-") == 4
}

// New creates a metrics collector registered on the default registry.
func New() *Collector {
	return NewWith(prometheus.DefaultRegisterer)
}

// NewWith creates a metrics collector registered on reg.
// Tests pass a private registry to avoid duplicate registration.
func NewWith(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)

	return &Collector{
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "folio",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests processed",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "folio",
				Name:      "request_duration_seconds",
				Help:      "Request duration in seconds",
				Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path", "status"},
		),
		RequestsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "folio",
				Name:      "requests_in_flight",
				Help:      "Number of requests currently being served",
			},
		),
		LoginAttempts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "folio",
				Name:      "login_attempts_total",
				Help:      "Admin login attempts by outcome",
			},
			[]string{"outcome"},
		),
		GateDenials: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: "folio",
				Name:      "gate_denials_total",
				Help:      "Requests redirected or rejected by the auth gate",
			},
		),
		StoreErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "folio",
				Name:      "store_errors_total",
				Help:      "Repository call failures by store",
			},
			[]string{"store"},
		),
		UploadsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: "folio",
				Name:      "uploads_total",
				Help:      "Successful attachment uploads",
			},
		),
		UploadErrors: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: "folio",
				Name:      "upload_errors_total",
				Help:      "Failed attachment uploads",
			},
		),
		VisionRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "folio",
				Name:      "vision_requests_total",
				Help:      "HotSeat vision analysis requests by outcome",
			},
			[]string{"outcome"},
		),
	}
}

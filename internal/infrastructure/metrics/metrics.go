package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Creative-API Metrics
var (
	// Request counters
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "adcraft",
			Subsystem: "creative_api",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// Request duration histogram
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "adcraft",
			Subsystem: "creative_api",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60, 120},
		},
		[]string{"method", "endpoint"},
	)

	// Generation batch counters
	GenerationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "adcraft",
			Subsystem: "creative_api",
			Name:      "generations_total",
			Help:      "Total ad generation batches",
		},
		[]string{"status"},
	)

	// Per-variation outcome counter
	VariationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "adcraft",
			Subsystem: "creative_api",
			Name:      "variations_total",
			Help:      "Total creative variations produced",
		},
		[]string{"component", "status"},
	)

	// Model call duration
	ModelCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "adcraft",
			Subsystem: "creative_api",
			Name:      "model_call_duration_seconds",
			Help:      "Hosted model call duration in seconds",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 30, 60, 120},
		},
		[]string{"model_kind"},
	)

	// Warehouse query duration
	WarehouseQueryDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "adcraft",
			Subsystem: "creative_api",
			Name:      "warehouse_query_duration_seconds",
			Help:      "Persona warehouse query duration in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10},
		},
	)
)

// RecordRequest records an HTTP request
func RecordRequest(method, endpoint, status string, durationSec float64) {
	RequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	RequestDuration.WithLabelValues(method, endpoint).Observe(durationSec)
}

// RecordGeneration records a generation batch outcome
func RecordGeneration(status string) {
	GenerationsTotal.WithLabelValues(status).Inc()
}

// RecordVariation records a single variation outcome for a pipeline component
func RecordVariation(component, status string) {
	VariationsTotal.WithLabelValues(component, status).Inc()
}

// RecordModelCall records a hosted model call
func RecordModelCall(modelKind string, durationSec float64) {
	ModelCallDuration.WithLabelValues(modelKind).Observe(durationSec)
}

// RecordWarehouseQuery records a persona warehouse query
func RecordWarehouseQuery(durationSec float64) {
	WarehouseQueryDuration.Observe(durationSec)
}

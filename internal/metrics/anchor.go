package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	anchorOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "medledger",
		Subsystem: "anchor",
		Name:      "operations_total",
		Help:      "Count of anchor service operations.",
	}, []string{"operation", "status"})
	anchorOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "medledger",
		Subsystem: "anchor",
		Name:      "operation_duration_seconds",
		Help:      "Duration of anchor service operations.",
		Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
	}, []string{"operation", "status"})
)

// Anchor tracks metrics for anchor service operations.
type Anchor struct{}

// NewAnchor creates an Anchor metrics collector.
func NewAnchor() *Anchor {
	return &Anchor{}
}

// Observe records duration and status of an anchor operation.
func (m Anchor) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	anchorOperationsTotal.WithLabelValues(operation, status).Inc()
	anchorOperationDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}

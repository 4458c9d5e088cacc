package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	chainAppendsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "medledger",
		Subsystem: "chain",
		Name:      "appends_total",
		Help:      "Count of block append attempts.",
	}, []string{"status"})
	chainAppendDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "medledger",
		Subsystem: "chain",
		Name:      "append_duration_seconds",
		Help:      "Duration of block appends.",
		Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
	}, []string{"status"})
	chainVerifiesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "medledger",
		Subsystem: "chain",
		Name:      "verifies_total",
		Help:      "Count of full chain verifications.",
	}, []string{"result"})
	chainVerifyDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "medledger",
		Subsystem: "chain",
		Name:      "verify_duration_seconds",
		Help:      "Duration of full chain verifications.",
		Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"result"})
	chainLength = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "medledger",
		Subsystem: "chain",
		Name:      "length",
		Help:      "Current number of blocks in the chain.",
	})
)

// Chain tracks metrics for ledger chain operations.
type Chain struct{}

// NewChain creates a Chain metrics collector.
func NewChain() *Chain {
	return &Chain{}
}

// ObserveAppend records duration and status of a block append.
func (m Chain) ObserveAppend(err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	chainAppendsTotal.WithLabelValues(status).Inc()
	chainAppendDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
}

// ObserveVerify records the outcome of a full chain verification.
func (m Chain) ObserveVerify(valid bool, length uint64, started time.Time) {
	result := "valid"
	if !valid {
		result = "invalid"
	}
	chainVerifiesTotal.WithLabelValues(result).Inc()
	chainVerifyDuration.WithLabelValues(result).Observe(time.Since(started).Seconds())
	chainLength.Set(float64(length))
}

// SetLength records the current chain length.
func (m Chain) SetLength(length uint64) {
	chainLength.Set(float64(length))
}

package metrics

import (
	"time"

	"github.com/caretrust/medledger-backend/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	reconcilerJobsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "medledger",
		Subsystem: "reconciler",
		Name:      "jobs_total",
		Help:      "Count of processed anchor jobs.",
	}, []string{"kind", "status"})
	reconcilerJobDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "medledger",
		Subsystem: "reconciler",
		Name:      "job_duration_seconds",
		Help:      "Duration of anchor job processing.",
		Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"kind", "status"})
	reconcilerSweepsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "medledger",
		Subsystem: "reconciler",
		Name:      "sweeps_total",
		Help:      "Count of unanchored document sweeps.",
	}, []string{"status"})
	reconcilerSweepResubmitted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "medledger",
		Subsystem: "reconciler",
		Name:      "sweep_resubmitted_total",
		Help:      "Count of documents resubmitted by sweeps.",
	})
	reconcilerSweepDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "medledger",
		Subsystem: "reconciler",
		Name:      "sweep_duration_seconds",
		Help:      "Duration of unanchored document sweeps.",
		Buckets:   []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
	}, []string{"status"})
	reconcilerQueueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "medledger",
		Subsystem: "reconciler",
		Name:      "queue_depth",
		Help:      "Current number of queued anchor jobs.",
	})
)

// Reconciler tracks metrics for reconciliation jobs and sweeps.
type Reconciler struct{}

// NewReconciler creates a Reconciler metrics collector.
func NewReconciler() *Reconciler {
	return &Reconciler{}
}

// ObserveJob records the outcome of one anchor job.
func (m Reconciler) ObserveJob(kind model.DocumentKind, status model.AnchorStatus, started time.Time) {
	reconcilerJobsTotal.WithLabelValues(string(kind), string(status)).Inc()
	reconcilerJobDuration.WithLabelValues(string(kind), string(status)).Observe(time.Since(started).Seconds())
}

// ObserveSweep records the outcome of one unanchored sweep.
func (m Reconciler) ObserveSweep(err error, resubmitted int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	reconcilerSweepsTotal.WithLabelValues(status).Inc()
	reconcilerSweepDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
	reconcilerSweepResubmitted.Add(float64(resubmitted))
}

// SetQueueDepth records the current job queue depth.
func (m Reconciler) SetQueueDepth(depth int) {
	reconcilerQueueDepth.Set(float64(depth))
}

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	leveldbRepositoryOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "medledger",
		Subsystem: "leveldb_repository",
		Name:      "operations_total",
		Help:      "Count of LevelDB store operations.",
	}, []string{"store", "operation", "status"})
	leveldbRepositoryOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "medledger",
		Subsystem: "leveldb_repository",
		Name:      "operation_duration_seconds",
		Help:      "Duration of LevelDB store operations.",
		Buckets:   []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1},
	}, []string{"store", "operation", "status"})
)

// LevelDBRepository tracks metrics for one LevelDB store.
type LevelDBRepository struct {
	store string
}

// NewLevelDBRepository creates a LevelDBRepository metrics collector labelled
// with the store name.
func NewLevelDBRepository(store string) *LevelDBRepository {
	if store == "" {
		store = "unknown"
	}
	return &LevelDBRepository{store: store}
}

// Observe records duration and status of a store operation.
func (m LevelDBRepository) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	leveldbRepositoryOperationsTotal.WithLabelValues(m.store, operation, status).Inc()
	leveldbRepositoryOperationDuration.WithLabelValues(m.store, operation, status).Observe(time.Since(started).Seconds())
}

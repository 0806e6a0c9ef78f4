package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeFulfilled = "fulfilled"
	OutcomeRejected  = "rejected"
	OutcomeCancelled = "cancelled"
	OutcomeDegraded  = "degraded"
	OutcomeStale     = "stale"
)

var (
	operationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agrilink_operations_total",
			Help: "Settled client operations by outcome",
		},
		[]string{"op", "outcome"},
	)

	operationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "agrilink_operation_duration_seconds",
			Help:    "Latency of client operations",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"op"},
	)

	pushFramesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agrilink_push_frames_total",
			Help: "Frames received on the notification channel",
		},
		[]string{"event"},
	)
)

// ObserveOperation 记录一次操作结果
func ObserveOperation(op, outcome string, d time.Duration) {
	operationsTotal.WithLabelValues(op, outcome).Inc()
	operationDuration.WithLabelValues(op).Observe(d.Seconds())
}

func RecordPushFrame(event string) {
	pushFramesTotal.WithLabelValues(event).Inc()
}

// OperationCount exposes the counter for op/outcome.
func OperationCount(op, outcome string) prometheus.Counter {
	return operationsTotal.WithLabelValues(op, outcome)
}

func PushFrameCount(event string) prometheus.Counter {
	return pushFramesTotal.WithLabelValues(event)
}

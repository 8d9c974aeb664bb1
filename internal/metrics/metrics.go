package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "leave_tracker"

var (
	LeavesSubmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "leaves_submitted_total",
		Help:      "Leave requests accepted, by category.",
	}, []string{"leave_type"})

	LeaveDaysSubmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "leave_days_submitted_total",
		Help:      "Days applied to usage totals, by category.",
	}, []string{"leave_type"})

	LeavesUpdated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "leaves_updated_total",
		Help:      "Leave requests patched, by resulting status.",
	}, []string{"status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)

// RecordLeaveSubmitted bumps the submission counters for one accepted request.
func RecordLeaveSubmitted(leaveType string, days int) {
	LeavesSubmitted.WithLabelValues(leaveType).Inc()
	LeaveDaysSubmitted.WithLabelValues(leaveType).Add(float64(days))
}

func RecordLeaveUpdated(status string) {
	LeavesUpdated.WithLabelValues(status).Inc()
}

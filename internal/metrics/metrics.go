package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "laundry_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "laundry_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	RateLimitedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "laundry_http_rate_limited_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
	)

	BookingsCommittedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "laundry_bookings_committed_total",
			Help: "Total number of committed bookings",
		},
		[]string{"machine_type", "payment_method"},
	)

	CommitRejectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "laundry_commit_rejections_total",
			Help: "Total number of rejected commits",
		},
		[]string{"reason"},
	)

	ProgressReportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "laundry_progress_reports_total",
			Help: "Total number of accepted progress reports",
		},
		[]string{"status"},
	)

	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "laundry_active_sessions",
			Help: "Number of booking sessions held in memory",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordRateLimited() {
	RateLimitedTotal.Inc()
}

func RecordBookingCommitted(machineType, paymentMethod string) {
	if machineType == "" {
		machineType = "unset"
	}
	if paymentMethod == "" {
		paymentMethod = "unset"
	}
	BookingsCommittedTotal.WithLabelValues(machineType, paymentMethod).Inc()
}

func RecordCommitRejected(reason string) {
	CommitRejectionsTotal.WithLabelValues(reason).Inc()
}

func RecordProgressReport(status string) {
	ProgressReportsTotal.WithLabelValues(status).Inc()
}

func SessionOpened() {
	ActiveSessions.Inc()
}

func SessionClosed() {
	ActiveSessions.Dec()
}

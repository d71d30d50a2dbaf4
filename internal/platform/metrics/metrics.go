package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "findash"

var (
	// InstallmentsAdvanced counts installment progression steps, labeled by
	// origin: "manual" for pay-installment requests, "sweep" for the timer.
	InstallmentsAdvanced = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "installments_advanced_total",
		Help:      "Number of installment schedule advances, by origin.",
	}, []string{"origin"})

	// SweepRuns counts completed sweep passes over a dashboard.
	SweepRuns = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sweep_runs_total",
		Help:      "Number of completed installment sweep passes.",
	})

	// SessionRefreshes counts snapshot reloads performed by active sessions.
	SessionRefreshes = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_refreshes_total",
		Help:      "Number of dashboard snapshot refreshes.",
	})

	// HTTPRequests counts served requests by method, route and status class.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Number of HTTP requests served.",
	}, []string{"method", "route", "status"})

	// HTTPDuration observes request latency by route.
	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})
)

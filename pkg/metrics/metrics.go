// Package metrics holds the Prometheus collectors exported at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests by route pattern, method and status",
		},
		[]string{"route", "method", "status"},
	)

	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by route pattern",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)

	BookingsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookings_created_total",
			Help: "Bookings created by kind",
		},
		[]string{"kind"},
	)

	DepositsReviewed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "deposits_reviewed_total",
			Help: "Deposits approved or rejected by an admin",
		},
		[]string{"status"},
	)

	OTPsIssued = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "otps_issued_total",
			Help: "One-time passwords issued by type",
		},
		[]string{"type"},
	)

	JanitorRemoved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "janitor_removed_total",
			Help: "Rows cleaned up by the background janitor",
		},
		[]string{"kind"},
	)

	RealtimeConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "realtime_connections",
			Help: "Open notification websocket connections",
		},
	)
)

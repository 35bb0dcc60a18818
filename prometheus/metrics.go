package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clover_inventory_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "clover_inventory_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// Authentication metrics
	LoginAttemptsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "clover_inventory_login_attempts_total",
			Help: "Total number of login attempts",
		},
	)

	LoginFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "clover_inventory_login_failures_total",
			Help: "Total number of failed logins",
		},
	)

	// Ledger metrics
	AdjustmentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clover_inventory_stock_adjustments_total",
			Help: "Total number of stock adjustments applied",
		},
		[]string{"adjustment_type"},
	)

	AlertsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "clover_inventory_low_stock_alerts_total",
			Help: "Total number of low stock alerts created",
		},
	)

	// Sync stub metrics
	SyncRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clover_inventory_sync_runs_total",
			Help: "Total number of sync stub invocations",
		},
		[]string{"sync_type"},
	)
)

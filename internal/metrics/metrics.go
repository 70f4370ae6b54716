package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portfolio_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "portfolio_http_request_duration_seconds",
			Help:    "HTTP request duration",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"method", "path"},
	)

	// Chat metrics
	ChatMessagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portfolio_chat_messages_total",
			Help: "Accepted user chat messages",
		},
		[]string{"audience"}, // "guest" or "user"
	)

	ReplyCategoriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portfolio_reply_categories_total",
			Help: "Replies produced per keyword category",
		},
		[]string{"category"},
	)

	ReplyFallbacksTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "portfolio_reply_fallbacks_total",
			Help: "Replies replaced by the apology message after a provider failure",
		},
	)

	RemoteReplyLatency = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "portfolio_remote_reply_latency_seconds",
			Help:    "Latency of calls to the remote chat backend",
			Buckets: []float64{.05, .1, .25, .5, 1, 2, 5, 10},
		},
	)

	// Quota metrics
	QuotaRejectionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "portfolio_quota_rejections_total",
			Help: "Guest messages rejected by the quota policy",
		},
	)

	// Analytics metrics
	AnalyticsEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portfolio_analytics_events_total",
			Help: "Visitor analytics events recorded",
		},
		[]string{"type"},
	)

	// Storage metrics
	StorageFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portfolio_storage_failures_total",
			Help: "Storage operations that failed and were recovered",
		},
		[]string{"store", "op"},
	)

	StorageAvailable = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "portfolio_storage_available",
			Help: "1 when the store substrate passed its availability check, 0 when running on the in-memory fallback",
		},
		[]string{"store"},
	)
)

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Mail send outcomes used as the "outcome" label.
const (
	MailOutcomeSent          = "sent"
	MailOutcomeNotSucceeded  = "not_succeeded"
	MailOutcomeRejected      = "rejected"
	MailOutcomeFailed        = "failed"
	MailOutcomeMisconfigured = "misconfigured"
)

// HTTP metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "voidmail_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "voidmail_http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)

// Mail metrics
var (
	MailSendTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "voidmail_mail_send_total",
			Help: "Total number of email send attempts by outcome",
		},
		[]string{"outcome"},
	)
)

// Cache metrics
var (
	EventCacheTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "voidmail_event_cache_total",
			Help: "Event read cache lookups by result",
		},
		[]string{"result"}, // hit, miss, bypass
	)
)

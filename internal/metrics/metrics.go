// Package metrics holds the Prometheus collectors exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "dicefit",
			Name:      "http_request_duration_seconds",
			Help:      "A histogram of request latencies.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"code", "method"},
	)

	// AuthEvents counts registration, login and password flows by outcome.
	AuthEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dicefit",
			Name:      "auth_events_total",
			Help:      "Authentication events by type and outcome.",
		},
		[]string{"event", "outcome"},
	)

	TrainingsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "dicefit",
			Name:      "trainings_created_total",
			Help:      "Training sessions stored.",
		},
	)

	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dicefit",
			Name:      "cache_lookups_total",
			Help:      "Reference data cache lookups by result.",
		},
		[]string{"result"},
	)

	MailsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dicefit",
			Name:      "mails_sent_total",
			Help:      "Outbound mails by outcome.",
		},
		[]string{"outcome"},
	)
)

// Outcome labels.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

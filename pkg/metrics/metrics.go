// Package metrics exposes the prometheus instruments shared by the
// extraction surfaces.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that
// can be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

//nolint: gochecknoglobals
var (
	// ExtractRequests counts extraction requests by endpoint.
	ExtractRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "emailsieve",
		Name:      "extract_requests_total",
		Help:      "Number of extraction requests served.",
	}, []string{"endpoint"})

	// ExtractedEmails counts canonical addresses produced.
	ExtractedEmails = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "emailsieve",
		Name:      "extracted_emails_total",
		Help:      "Number of canonical email addresses extracted.",
	})

	// RejectedMatches counts raw captures the cleanup stage refused.
	RejectedMatches = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "emailsieve",
		Name:      "rejected_matches_total",
		Help:      "Number of raw captures rejected by domain cleanup.",
	})

	// ExtractSeconds observes end-to-end extraction request latency.
	ExtractSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "emailsieve",
		Name:      "extract_duration_seconds",
		Help:      "Extraction request latency in seconds.",
		Buckets:   DefaultBuckets,
	})
)

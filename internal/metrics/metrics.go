package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// BackendRequestDuration tracks calls to the link/QR/analytics backend
	BackendRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "qrlinx_backend_request_duration_seconds",
			Help:    "Duration of backend requests in seconds",
			Buckets: []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 15},
		},
		[]string{"endpoint", "outcome"},
	)

	// LinkCreationsTotal counts creation workflows by outcome (ok, partial, failed)
	LinkCreationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "qrlinx_link_creations_total",
			Help: "Total number of link creation workflows",
		},
		[]string{"outcome"},
	)

	// AnalyticsLoadsTotal counts analytics loads by outcome (ready, unavailable, stale)
	AnalyticsLoadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "qrlinx_analytics_loads_total",
			Help: "Total number of analytics loads",
		},
		[]string{"outcome"},
	)

	// LinksDeletedTotal counts confirmed deletions
	LinksDeletedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "qrlinx_links_deleted_total",
			Help: "Total number of deleted links",
		},
	)

	// LinkEventsTotal counts link events by direction (sent, received) and type
	LinkEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "qrlinx_link_events_total",
			Help: "Total number of link events exchanged over the message queue",
		},
		[]string{"direction", "type"},
	)
)

// ObserveBackend records the latency of one backend call
func ObserveBackend(endpoint string, start time.Time, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	BackendRequestDuration.WithLabelValues(endpoint, outcome).Observe(time.Since(start).Seconds())
}

// RecordCreation increments the creation counter
func RecordCreation(outcome string) {
	LinkCreationsTotal.WithLabelValues(outcome).Inc()
}

// RecordAnalyticsLoad increments the analytics load counter
func RecordAnalyticsLoad(outcome string) {
	AnalyticsLoadsTotal.WithLabelValues(outcome).Inc()
}

// RecordDelete increments the deletion counter
func RecordDelete() {
	LinksDeletedTotal.Inc()
}

// RecordLinkEvent increments the link event counter
func RecordLinkEvent(direction, eventType string) {
	LinkEventsTotal.WithLabelValues(direction, eventType).Inc()
}

package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus collectors for the ticket monitoring pipeline. Registered via
// promauto on the default registry and exposed on /metrics.
var (
	EventsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hdtickets_events_created_total",
		Help: "Total sports events created through the catalog write path",
	})

	EventQueries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hdtickets_event_queries_total",
		Help: "Total upcoming-event catalog queries",
	})

	QueryDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "hdtickets_event_query_duration_seconds",
		Help:    "Duration of catalog queries",
		Buckets: prometheus.DefBuckets,
	})

	ScrapeRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hdtickets_scrape_runs_total",
		Help: "Scrape cycle outcomes per platform",
	}, []string{"platform", "status"})

	TicketsScraped = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hdtickets_tickets_scraped_total",
		Help: "Total ticket listings folded in per platform",
	}, []string{"platform"})

	AlertsTriggered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hdtickets_alerts_triggered_total",
		Help: "Total ticket alerts fired",
	})
)

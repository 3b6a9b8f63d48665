package domain

import (
	"context"
	"time"
)

// Cache keys evicted by the invalidation subscriber when domain events fire.
const (
	CacheKeyUpcomingEvents    = "hd:events:upcoming"
	CacheKeyHighDemandTickets = "hd:tickets:high_demand"
	CacheKeyActiveAlerts      = "hd:alerts:active"
	CacheKeyDashboardStats    = "hd:dashboard:stats"
)

// CacheStore is the port for keyed cache storage. Get returns ok=false on a
// miss; Delete ignores keys that are absent.
type CacheStore interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// DashboardStats are the headline counts shown on the admin dashboard.
type DashboardStats struct {
	UpcomingEvents    int       `json:"upcoming_events"`
	HighDemandTickets int       `json:"high_demand_tickets"`
	ActiveAlerts      int       `json:"active_alerts"`
	GeneratedAt       time.Time `json:"generated_at"`
}

// DashboardService computes dashboard statistics with a cache read-through.
type DashboardService interface {
	Stats(ctx context.Context) (*DashboardStats, error)
}

// TicketMonitorService runs scrape cycles across the registered platform
// adapters, persisting listings and evaluating alerts.
type TicketMonitorService interface {
	RunScrapeCycle(ctx context.Context, query string) error
}

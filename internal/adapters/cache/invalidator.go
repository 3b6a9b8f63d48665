package cache

import (
	"context"
	"log/slog"
	"time"

	"hdtickets/internal/domain"
)

const invalidateTimeout = 2 * time.Second

// keysByEvent maps each domain event to the cache keys it stales. The
// dashboard aggregates all three sources, so every event evicts its key.
var keysByEvent = map[string][]string{
	domain.EventNameSportEventCreated: {domain.CacheKeyUpcomingEvents, domain.CacheKeyDashboardStats},
	domain.EventNameTicketChanged:     {domain.CacheKeyHighDemandTickets, domain.CacheKeyDashboardStats},
	domain.EventNameAlertChanged:      {domain.CacheKeyActiveAlerts, domain.CacheKeyDashboardStats},
}

// RegisterInvalidator subscribes cache eviction to the event bus. Eviction
// failures are logged and never propagate; the cache entries expire by TTL
// anyway.
func RegisterInvalidator(bus domain.EventBus, store domain.CacheStore, logger *slog.Logger) {
	bus.Subscribe(func(event domain.DomainEvent) {
		keys, ok := keysByEvent[event.EventName()]
		if !ok {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), invalidateTimeout)
		defer cancel()
		if err := store.Delete(ctx, keys...); err != nil {
			logger.Warn("cache invalidation failed", "event", event.EventName(), "error", err)
		}
	})
}

package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DomainEvent is the contract for events emitted by write paths. Subscribers
// (cache invalidation, metrics) consume them off the event bus; persistence
// never depends on any subscriber.
type DomainEvent interface {
	EventID() string
	EventName() string
	AggregateID() string
	OccurredAt() time.Time
}

// EventBus decouples write paths from their observers. Publish must not block
// the caller on subscriber work.
type EventBus interface {
	Publish(ctx context.Context, event DomainEvent)
	Subscribe(fn func(event DomainEvent))
	Close()
}

// Event names carried on the bus.
const (
	EventNameSportEventCreated = "sport_event.created"
	EventNameTicketChanged     = "ticket.changed"
	EventNameAlertChanged      = "alert.changed"
)

type baseEvent struct {
	id          string
	aggregateID string
	occurredAt  time.Time
}

func newBaseEvent(aggregateID string) baseEvent {
	return baseEvent{
		id:          uuid.NewString(),
		aggregateID: aggregateID,
		occurredAt:  time.Now(),
	}
}

func (e baseEvent) EventID() string       { return e.id }
func (e baseEvent) AggregateID() string   { return e.aggregateID }
func (e baseEvent) OccurredAt() time.Time { return e.occurredAt }

// SportEventCreated is published after a sports event is persisted.
type SportEventCreated struct {
	baseEvent
	Category string
}

// NewSportEventCreated builds a SportEventCreated for the given event.
func NewSportEventCreated(eventID string, category SportCategory) SportEventCreated {
	return SportEventCreated{baseEvent: newBaseEvent(eventID), Category: category.Value()}
}

func (SportEventCreated) EventName() string { return EventNameSportEventCreated }

// TicketChanged is published after a scraped ticket is created or updated.
type TicketChanged struct {
	baseEvent
	Platform string
}

// NewTicketChanged builds a TicketChanged for the given ticket.
func NewTicketChanged(ticketID, platform string) TicketChanged {
	return TicketChanged{baseEvent: newBaseEvent(ticketID), Platform: platform}
}

func (TicketChanged) EventName() string { return EventNameTicketChanged }

// AlertChanged is published after a ticket alert is created, triggered, or deleted.
type AlertChanged struct {
	baseEvent
}

// NewAlertChanged builds an AlertChanged for the given alert.
func NewAlertChanged(alertID string) AlertChanged {
	return AlertChanged{baseEvent: newBaseEvent(alertID)}
}

func (AlertChanged) EventName() string { return EventNameAlertChanged }

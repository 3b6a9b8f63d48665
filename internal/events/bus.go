package events

import (
	"context"
	"log/slog"
	"sync"

	"hdtickets/internal/domain"
)

const defaultBufferSize = 64

// Bus is an in-process event bus. Publish enqueues without blocking the
// caller's request path; a single dispatcher goroutine delivers events to
// subscribers in publish order.
type Bus struct {
	mu          sync.RWMutex
	subscribers []func(domain.DomainEvent)

	queue  chan domain.DomainEvent
	done   chan struct{}
	closed bool
	logger *slog.Logger
}

// NewBus starts the dispatcher goroutine and returns a ready bus.
func NewBus(logger *slog.Logger) *Bus {
	b := &Bus{
		queue:  make(chan domain.DomainEvent, defaultBufferSize),
		done:   make(chan struct{}),
		logger: logger,
	}
	go b.dispatch()
	return b
}

func (b *Bus) dispatch() {
	defer close(b.done)
	for event := range b.queue {
		b.mu.RLock()
		subs := b.subscribers
		b.mu.RUnlock()
		for _, fn := range subs {
			fn(event)
		}
	}
}

// Publish enqueues the event for delivery. If the queue is full or the bus
// is closed the event is dropped with a warning; publishing must never block
// or fail the operation that produced the event.
func (b *Bus) Publish(ctx context.Context, event domain.DomainEvent) {
	b.mu.RLock()
	closed := b.closed
	b.mu.RUnlock()
	if closed {
		b.logger.Warn("event dropped, bus closed", "event", event.EventName())
		return
	}
	select {
	case b.queue <- event:
	default:
		b.logger.Warn("event dropped, queue full", "event", event.EventName(), "aggregate_id", event.AggregateID())
	}
}

// Subscribe registers a handler for all subsequent events. Handlers run on
// the dispatcher goroutine and should return quickly.
func (b *Bus) Subscribe(fn func(domain.DomainEvent)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers = append(b.subscribers, fn)
}

// Close stops accepting events and waits for queued events to be delivered.
func (b *Bus) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	b.mu.Unlock()

	close(b.queue)
	<-b.done
}

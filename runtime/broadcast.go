// Package runtime handles event propagation between producers and live
// subscribers. It orchestrates delivery without containing business logic
// or domain rules.
package runtime

import (
	"chat-hub/contract"
	"chat-hub/domain/event"
	"chat-hub/errors"
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// DefaultCapacity is the per-subscriber queue size used when none is
// configured. Beyond it the oldest unread events are evicted.
const DefaultCapacity = 32

// OverrunError reports that a subscriber fell behind and lost its oldest
// buffered events. It is delivered to that subscriber only, never to the
// publisher, and the subscriber may keep receiving afterwards.
type OverrunError struct {
	Missed uint64
}

func (e *OverrunError) Error() string {
	return fmt.Sprintf("subscriber overrun: %d event(s) dropped", e.Missed)
}

// BroadcastBus is the production EventBus: it fans every published event
// out to all currently subscribed consumers through per-subscriber bounded
// queues. A slow or abandoned subscriber never blocks the publisher and
// never affects delivery to other subscribers.
//
// BroadcastBus is safe for concurrent use by multiple goroutines.
type BroadcastBus struct {
	mu       sync.RWMutex
	log      *slog.Logger
	capacity int
	nextID   uint64
	subs     map[uint64]*subscription
}

func NewBroadcastBus(log *slog.Logger, capacity int) *BroadcastBus {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &BroadcastBus{
		log:      log,
		capacity: capacity,
		subs:     make(map[uint64]*subscription),
	}
}

// Publish pushes the event into every live subscription queue.
// Cost is O(number of subscriptions); the call never blocks and has no
// failure mode visible to the caller.
func (b *BroadcastBus) Publish(e event.DomainEvent) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, sub := range b.subs {
		sub.push(e)
	}
}

func (b *BroadcastBus) Subscribe() (contract.Subscription, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.nextID
	b.nextID++
	sub := &subscription{
		bus:      b,
		id:       id,
		capacity: b.capacity,
		notify:   make(chan struct{}, 1),
	}
	b.subs[id] = sub
	b.log.Debug("Subscriber added", "id", id, "total", len(b.subs))
	return sub, true
}

// Subscribers returns the number of live subscriptions.
func (b *BroadcastBus) Subscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

func (b *BroadcastBus) drop(id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.subs, id)
	b.log.Debug("Subscriber removed", "id", id, "total", len(b.subs))
}

// subscription holds a bounded FIFO of undelivered events. The queue and
// the missed counter are guarded by mu; notify carries at most one
// pending wake-up so push never blocks.
type subscription struct {
	bus *BroadcastBus
	id  uint64

	mu       sync.Mutex
	queue    []event.DomainEvent
	capacity int
	missed   uint64
	closed   bool
	notify   chan struct{}
}

func (s *subscription) push(e event.DomainEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	if len(s.queue) == s.capacity {
		// Lag-tolerant delivery: evict the oldest unread event and
		// surface the gap on the subscriber's next Recv.
		s.queue = s.queue[1:]
		s.missed++
	}
	s.queue = append(s.queue, e)
	select {
	case s.notify <- struct{}{}:
	default:
	}
}

func (s *subscription) Recv(ctx context.Context) (event.DomainEvent, error) {
	for {
		s.mu.Lock()
		if s.closed {
			s.mu.Unlock()
			return nil, errors.ErrSubscriptionClosed
		}
		if s.missed > 0 {
			n := s.missed
			s.missed = 0
			s.mu.Unlock()
			return nil, &OverrunError{Missed: n}
		}
		if len(s.queue) > 0 {
			e := s.queue[0]
			s.queue = s.queue[1:]
			s.mu.Unlock()
			return e, nil
		}
		s.mu.Unlock()

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-s.notify:
		}
	}
}

// Close releases the subscription. It may be called at any time, including
// concurrently with a publish, and is idempotent.
func (s *subscription) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.queue = nil
	select {
	case s.notify <- struct{}{}:
	default:
	}
	s.mu.Unlock()

	s.bus.drop(s.id)
}

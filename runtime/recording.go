package runtime

import (
	"chat-hub/contract"
	"chat-hub/domain/event"
	"sync"
)

// RecordingBus is a test double: it stores every published event in call
// order and never streams live. Test suites use it to assert exact event
// sequences after a scripted series of operations without wiring any
// transport layer.
type RecordingBus struct {
	mu     sync.Mutex
	events []event.DomainEvent
}

func NewRecordingBus() *RecordingBus {
	return &RecordingBus{}
}

func (b *RecordingBus) Publish(e event.DomainEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, e)
}

// Subscribe reports that live streaming is unsupported.
func (b *RecordingBus) Subscribe() (contract.Subscription, bool) {
	return nil, false
}

// Events returns a snapshot of all events recorded so far, in
// publication order.
func (b *RecordingBus) Events() []event.DomainEvent {
	b.mu.Lock()
	defer b.mu.Unlock()
	snapshot := make([]event.DomainEvent, len(b.events))
	copy(snapshot, b.events)
	return snapshot
}

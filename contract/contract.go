//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"chat-hub/domain/event"
	"context"
	"reflect"
)

// EventBus fans published events out to live subscribers.
//
// Publish must never block the caller: a bus with no subscribers, or with
// subscribers that cannot keep up, still returns immediately. Delivery to
// any given subscriber is best effort.
type EventBus interface {
	Publish(e event.DomainEvent)

	// Subscribe creates a subscription receiving every event published
	// after this call returns. The second return value is false for bus
	// implementations that do not support live streaming; callers must
	// treat that as a capability check, not an error.
	Subscribe() (Subscription, bool)
}

// Subscription is a consumer's private receive end into the bus. It is
// owned exclusively by the consumer holding it and must be closed on
// disconnect so no further fan-out cost is attributed to it.
type Subscription interface {
	// Recv blocks until the next event, the context is done, or the
	// subscription is closed. After the subscriber fell behind, Recv
	// returns an overrun error carrying the number of missed events;
	// receiving may continue afterwards.
	Recv(ctx context.Context) (event.DomainEvent, error)
	Close()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker
// lifecycle events, avoiding the need for manual naming in the Worker
// interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Stop()
}

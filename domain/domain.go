// Package domain contains core concepts of the chat system.
// No runtime, network, or UI logic should be added here.
package domain

import (
	"time"

	"github.com/google/uuid"
)

type Room struct {
	ID   uuid.UUID
	Name string
}

// Message is append-only: once stored in a room it is never
// mutated or removed. Ordering inside a room is arrival order,
// not SentAt order.
type Message struct {
	ID     uuid.UUID
	RoomID uuid.UUID
	Author string
	Body   string
	SentAt time.Time
}

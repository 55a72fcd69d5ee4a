// Package event defines the closed set of domain events produced by the
// chat system. Events are immutable value objects: every variant carries
// all facts a consumer needs, with no reference back to mutable state.
package event

import (
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

type DomainEvent interface {
	// Kind returns the variant name used as the envelope tag on the wire.
	Kind() string
}

type UserLoggedIn struct {
	Username string `json:"username"`
}

func (UserLoggedIn) Kind() string { return "UserLoggedIn" }

type UserLoggedOut struct {
	Username string `json:"username"`
}

func (UserLoggedOut) Kind() string { return "UserLoggedOut" }

type RoomWasCreated struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func (RoomWasCreated) Kind() string { return "RoomWasCreated" }

type RoomWasRemoved struct {
	ID        uuid.UUID `json:"id"`
	RemovedAt time.Time `json:"removed_at"`
}

func (RoomWasRemoved) Kind() string { return "RoomWasRemoved" }

type UserJoinedRoom struct {
	RoomID   uuid.UUID `json:"room_id"`
	Username string    `json:"username"`
	JoinedAt time.Time `json:"joined_at"`
}

func (UserJoinedRoom) Kind() string { return "UserJoinedRoom" }

type UserLeftRoom struct {
	RoomID   uuid.UUID `json:"room_id"`
	Username string    `json:"username"`
	LeftAt   time.Time `json:"left_at"`
}

func (UserLeftRoom) Kind() string { return "UserLeftRoom" }

type MessageWasSend struct {
	ID       uuid.UUID `json:"id"`
	RoomID   uuid.UUID `json:"room_id"`
	Username string    `json:"username"`
	Message  string    `json:"message"`
	SendAt   time.Time `json:"send_at"`
}

func (MessageWasSend) Kind() string { return "MessageWasSend" }

// Envelope is the tagged wire representation consumed by the streaming
// layer: {"type": "<VariantName>", "payload": {...}}.
type Envelope struct {
	Type    string      `json:"type"`
	Payload DomainEvent `json:"payload"`
}

func Encode(e DomainEvent) ([]byte, error) {
	return json.Marshal(Envelope{Type: e.Kind(), Payload: e})
}

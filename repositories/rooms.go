// Package repositories holds the in-memory shared state of the chat
// system. Each collection is guarded by its own lock; callers hold a lock
// only across the in-memory mutation, never across an event-bus publish.
package repositories

import (
	"chat-hub/domain"
	"sync"

	"github.com/google/uuid"
)

type RoomRepository struct {
	mu    sync.Mutex
	rooms []domain.Room
}

func NewRoomRepository() *RoomRepository {
	return &RoomRepository{}
}

// Add appends the room unconditionally; room creation always mutates.
func (r *RoomRepository) Add(room domain.Room) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rooms = append(r.rooms, room)
}

func (r *RoomRepository) Get(id uuid.UUID) (domain.Room, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, room := range r.rooms {
		if room.ID == id {
			return room, true
		}
	}
	return domain.Room{}, false
}

// List returns a snapshot in creation order.
func (r *RoomRepository) List() []domain.Room {
	r.mu.Lock()
	defer r.mu.Unlock()
	snapshot := make([]domain.Room, len(r.rooms))
	copy(snapshot, r.rooms)
	return snapshot
}

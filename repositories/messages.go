package repositories

import (
	"chat-hub/domain"
	"sync"

	"github.com/google/uuid"
)

type MessageRepository struct {
	mu     sync.Mutex
	byRoom map[uuid.UUID][]domain.Message
}

func NewMessageRepository() *MessageRepository {
	return &MessageRepository{byRoom: make(map[uuid.UUID][]domain.Message)}
}

// Append stores the message at the end of its room's history.
// Histories are append-only and ordered by arrival, not by SentAt.
func (r *MessageRepository) Append(message domain.Message) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byRoom[message.RoomID] = append(r.byRoom[message.RoomID], message)
}

// ListByRoom returns a snapshot of the room's history in arrival order.
func (r *MessageRepository) ListByRoom(roomID uuid.UUID) []domain.Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	history := r.byRoom[roomID]
	snapshot := make([]domain.Message, len(history))
	copy(snapshot, history)
	return snapshot
}

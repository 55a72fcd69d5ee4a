package repositories

import (
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type Set map[string]struct{}

type MembershipRepository struct {
	mu     sync.Mutex
	byRoom map[uuid.UUID]Set
}

func NewMembershipRepository() *MembershipRepository {
	return &MembershipRepository{byRoom: make(map[uuid.UUID]Set)}
}

// Add inserts the username into the room's member set and reports whether
// it was newly added. Joining twice is a no-op: the caller must not
// publish a join event when Add returns false.
func (r *MembershipRepository) Add(roomID uuid.UUID, username string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	members, ok := r.byRoom[roomID]
	if !ok {
		members = make(Set)
		r.byRoom[roomID] = members
	}
	if _, exists := members[username]; exists {
		return false
	}
	members[username] = struct{}{}
	return true
}

// Remove deletes the username from the room's member set. Removing an
// absent member is a no-op here; the caller is expected to publish a
// leave event regardless.
func (r *MembershipRepository) Remove(roomID uuid.UUID, username string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	members, ok := r.byRoom[roomID]
	if !ok {
		return
	}
	delete(members, username)

	// If no one is left in the room, remove the room entry entirely
	if len(members) == 0 {
		delete(r.byRoom, roomID)
	}
}

// List returns the room's members sorted for deterministic output.
func (r *MembershipRepository) List(roomID uuid.UUID) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	usernames := lo.Keys(r.byRoom[roomID])
	sort.Strings(usernames)
	return usernames
}

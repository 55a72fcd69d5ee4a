package runtime

import (
	"chat-hub/domain/event"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestRecordingBus_RecordsInCallOrder(t *testing.T) {
	req := require.New(t)
	bus := NewRecordingBus()

	roomID := uuid.New()
	created := event.RoomWasCreated{ID: roomID, Name: "X", CreatedAt: time.Now().UTC()}
	joined := event.UserJoinedRoom{RoomID: roomID, Username: "A", JoinedAt: time.Now().UTC()}

	// When events are published in a known order
	bus.Publish(created)
	bus.Publish(joined)

	// Then the recorded sequence matches exactly
	req.Equal([]event.DomainEvent{created, joined}, bus.Events())
}

func TestRecordingBus_SubscribeIsUnsupported(t *testing.T) {
	req := require.New(t)
	bus := NewRecordingBus()

	sub, ok := bus.Subscribe()

	// Then the capability check fails without an error
	req.False(ok)
	req.Nil(sub)
}

func TestRecordingBus_SnapshotIsACopy(t *testing.T) {
	req := require.New(t)
	bus := NewRecordingBus()

	bus.Publish(event.UserLoggedIn{Username: "Karel"})
	first := bus.Events()
	bus.Publish(event.UserLoggedOut{Username: "Karel"})

	// Then the earlier snapshot is unaffected by later publishes
	req.Len(first, 1)
	req.Len(bus.Events(), 2)
}

func TestRecordingBus_ConcurrentPublishesNeverInterleavePartially(t *testing.T) {
	req := require.New(t)
	bus := NewRecordingBus()

	const publishers = 16
	const perPublisher = 100
	var wg sync.WaitGroup
	for p := 0; p < publishers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perPublisher; i++ {
				bus.Publish(event.UserLoggedIn{Username: "racer"})
			}
		}()
	}
	wg.Wait()

	// Then nothing is lost
	req.Len(bus.Events(), publishers*perPublisher)
}

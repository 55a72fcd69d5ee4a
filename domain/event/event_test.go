package event

import (
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestEncode_TaggedEnvelope(t *testing.T) {
	req := require.New(t)
	roomID := uuid.MustParse("6f1c4b49-4e54-42b5-bd16-9d7e7a25a393")
	createdAt := time.Date(2024, 5, 17, 12, 0, 0, 0, time.UTC)

	data, err := Encode(RoomWasCreated{ID: roomID, Name: "Lobby", CreatedAt: createdAt})
	req.NoError(err)

	var decoded struct {
		Type    string `json:"type"`
		Payload struct {
			ID        uuid.UUID `json:"id"`
			Name      string    `json:"name"`
			CreatedAt time.Time `json:"created_at"`
		} `json:"payload"`
	}
	req.NoError(json.Unmarshal(data, &decoded))

	req.Equal("RoomWasCreated", decoded.Type)
	req.Equal(roomID, decoded.Payload.ID)
	req.Equal("Lobby", decoded.Payload.Name)
	req.True(createdAt.Equal(decoded.Payload.CreatedAt))
}

func TestEncode_PayloadFieldNames(t *testing.T) {
	req := require.New(t)

	data, err := Encode(MessageWasSend{
		ID:       uuid.New(),
		RoomID:   uuid.New(),
		Username: "Karel",
		Message:  "Hoi",
		SendAt:   time.Now().UTC(),
	})
	req.NoError(err)

	var decoded map[string]any
	req.NoError(json.Unmarshal(data, &decoded))

	payload, ok := decoded["payload"].(map[string]any)
	req.True(ok)
	for _, field := range []string{"id", "room_id", "username", "message", "send_at"} {
		req.Contains(payload, field)
	}
}

func TestKind_CoversEveryVariant(t *testing.T) {
	req := require.New(t)

	variants := map[string]DomainEvent{
		"UserLoggedIn":   UserLoggedIn{},
		"UserLoggedOut":  UserLoggedOut{},
		"RoomWasCreated": RoomWasCreated{},
		"RoomWasRemoved": RoomWasRemoved{},
		"UserJoinedRoom": UserJoinedRoom{},
		"UserLeftRoom":   UserLeftRoom{},
		"MessageWasSend": MessageWasSend{},
	}
	for want, evt := range variants {
		req.Equal(want, evt.Kind())
	}
}

package server

import (
	"bufio"
	"bytes"
	"chat-hub/domain/event"
	"chat-hub/mocks"
	"chat-hub/runtime"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestStreamEvents_ForwardsPublishedEvents(t *testing.T) {
	req := require.New(t)
	bus := runtime.NewBroadcastBus(slog.Default(), 32)
	ts := newTestServer(t, bus)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, ts.URL+"/api/events", nil)
	req.NoError(err)
	resp, err := http.DefaultClient.Do(request)
	req.NoError(err)
	defer resp.Body.Close()
	req.Equal(http.StatusOK, resp.StatusCode)
	req.Equal("text/event-stream", resp.Header.Get("Content-Type"))

	// Given the stream's subscription is live
	req.Eventually(func() bool { return bus.Subscribers() == 1 },
		time.Second, 10*time.Millisecond)

	lines := make(chan string)
	go func() {
		scanner := bufio.NewScanner(resp.Body)
		for scanner.Scan() {
			if line := scanner.Text(); strings.HasPrefix(line, "data: ") {
				lines <- strings.TrimPrefix(line, "data: ")
			}
		}
		close(lines)
	}()

	// When events are published
	roomID := uuid.New()
	bus.Publish(event.RoomWasCreated{ID: roomID, Name: "Lobby", CreatedAt: frozenTime})
	bus.Publish(event.UserJoinedRoom{RoomID: roomID, Username: "Karel", JoinedAt: frozenTime})

	// Then both arrive, tagged and in order
	for _, wantType := range []string{"RoomWasCreated", "UserJoinedRoom"} {
		select {
		case line := <-lines:
			var envelope struct {
				Type string `json:"type"`
			}
			req.NoError(json.Unmarshal([]byte(line), &envelope))
			req.Equal(wantType, envelope.Type)
		case <-time.After(time.Second):
			req.Fail("Timed out waiting for streamed event")
		}
	}

	// When the client disconnects, the subscription is released
	cancel()
	req.Eventually(func() bool { return bus.Subscribers() == 0 },
		time.Second, 10*time.Millisecond)
}

func TestStreamEvents_UnsupportedOnRecordingBus(t *testing.T) {
	req := require.New(t)
	ts := newTestServer(t, runtime.NewRecordingBus())

	resp, err := http.Get(ts.URL + "/api/events")
	req.NoError(err)
	defer resp.Body.Close()

	req.Equal(http.StatusNotImplemented, resp.StatusCode)
}

func TestStreamEvents_NoReplayForLateSubscribers(t *testing.T) {
	req := require.New(t)
	bus := runtime.NewBroadcastBus(slog.Default(), 32)
	ts := newTestServer(t, bus)

	// Given an event published before the client connects
	bus.Publish(event.UserLoggedIn{Username: "early"})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, ts.URL+"/api/events", nil)
	req.NoError(err)
	resp, err := http.DefaultClient.Do(request)
	req.NoError(err)
	defer resp.Body.Close()

	req.Eventually(func() bool { return bus.Subscribers() == 1 },
		time.Second, 10*time.Millisecond)
	bus.Publish(event.UserLoggedIn{Username: "late"})

	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "data: ") {
			continue
		}
		var envelope struct {
			Payload struct {
				Username string `json:"username"`
			} `json:"payload"`
		}
		req.NoError(json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &envelope))

		// Then the first delivered event is the one published after
		// the subscription, not the earlier one
		req.Equal("late", envelope.Payload.Username)
		return
	}
	req.Fail("Stream ended before delivering an event")
}

// gatedWriter is a streaming ResponseWriter whose data writes block until
// the gate opens, modeling a client that stopped reading.
type gatedWriter struct {
	header http.Header
	gate   chan struct{}
	mu     sync.Mutex
	buf    bytes.Buffer
}

func newGatedWriter() *gatedWriter {
	return &gatedWriter{header: make(http.Header), gate: make(chan struct{})}
}

func (w *gatedWriter) Header() http.Header { return w.header }
func (w *gatedWriter) WriteHeader(int)     {}
func (w *gatedWriter) Flush()              {}

func (w *gatedWriter) Write(p []byte) (int, error) {
	<-w.gate
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.buf.Write(p)
}

func TestStreamEvents_TerminatesOnOverrun(t *testing.T) {
	req := require.New(t)
	bus := runtime.NewBroadcastBus(slog.Default(), 2)
	srv := newChatServer(t, bus)

	writer := newGatedWriter()
	request := httptest.NewRequest(http.MethodGet, "/api/events", nil)

	done := make(chan struct{})
	go func() {
		srv.streamEvents(writer, request)
		close(done)
	}()

	req.Eventually(func() bool { return bus.Subscribers() == 1 },
		time.Second, 10*time.Millisecond)

	// Given far more events than the subscription holds while the client
	// reads nothing
	for i := 0; i < 50; i++ {
		bus.Publish(event.UserLoggedIn{Username: fmt.Sprintf("user-%d", i)})
	}

	// When the client becomes writable again
	close(writer.gate)

	// Then the handler terminates the stream instead of resuming delivery
	select {
	case <-done:
	case <-time.After(time.Second):
		req.Fail("Stream did not terminate after overrun")
	}

	// And the subscription's fan-out cost is gone
	req.Equal(0, bus.Subscribers())
}

func TestStreamEventsWS_ClosesGoingAwayOnOverrun(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	busMock := mocks.NewMockEventBus(ctrl)
	subMock := mocks.NewMockSubscription(ctrl)

	// Given a subscription delivering one event and then an overrun
	busMock.EXPECT().Subscribe().Return(subMock, true).Times(1)
	gomock.InOrder(
		subMock.EXPECT().Recv(gomock.Any()).Return(event.UserLoggedIn{Username: "Karel"}, nil),
		subMock.EXPECT().Recv(gomock.Any()).Return(nil, &runtime.OverrunError{Missed: 7}),
	)
	subMock.EXPECT().Close().Times(1)

	ts := newTestServer(t, busMock)
	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws/events"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	req.NoError(err)
	if resp != nil {
		defer resp.Body.Close()
	}
	defer conn.Close()

	req.NoError(conn.SetReadDeadline(time.Now().Add(time.Second)))

	// Then the event delivered before the overrun still arrives
	_, data, err := conn.ReadMessage()
	req.NoError(err)
	req.Contains(string(data), "UserLoggedIn")

	// And the server closes the connection with a going-away frame
	_, _, err = conn.ReadMessage()
	var closeErr *websocket.CloseError
	req.ErrorAs(err, &closeErr)
	req.Equal(websocket.CloseGoingAway, closeErr.Code)
}

func TestStreamEventsWS_ForwardsPublishedEvents(t *testing.T) {
	req := require.New(t)
	bus := runtime.NewBroadcastBus(slog.Default(), 32)
	ts := newTestServer(t, bus)

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws/events"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	req.NoError(err)
	if resp != nil {
		defer resp.Body.Close()
	}
	defer conn.Close()

	req.Eventually(func() bool { return bus.Subscribers() == 1 },
		time.Second, 10*time.Millisecond)

	bus.Publish(event.UserLoggedIn{Username: "Karel"})

	req.NoError(conn.SetReadDeadline(time.Now().Add(time.Second)))
	_, data, err := conn.ReadMessage()
	req.NoError(err)

	var envelope struct {
		Type    string `json:"type"`
		Payload struct {
			Username string `json:"username"`
		} `json:"payload"`
	}
	req.NoError(json.Unmarshal(data, &envelope))
	req.Equal("UserLoggedIn", envelope.Type)
	req.Equal("Karel", envelope.Payload.Username)

	// When the client goes away, the subscription is released
	conn.Close()
	req.Eventually(func() bool { return bus.Subscribers() == 0 },
		time.Second, 10*time.Millisecond)
}

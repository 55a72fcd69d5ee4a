package server

import (
	"chat-hub/domain/event"
	"chat-hub/runtime"
	"context"
	stderrors "errors"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write an event to the peer
	writeWait = 10 * time.Second

	// Send pings with this period
	pingPeriod = 54 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// streamEventsWS serves the same live feed as the SSE endpoint over a
// WebSocket. A read pump watches for the peer closing the connection and
// cancels the subscription; the write loop forwards encoded events with
// write deadlines and periodic pings.
func (s *Server) streamEventsWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Debug("WebSocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	sub, ok := s.bus.Subscribe()
	if !ok {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseUnsupportedData, "event streaming unavailable"),
			time.Now().Add(writeWait))
		return
	}
	defer sub.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	events := make(chan event.DomainEvent)
	recvErr := make(chan error, 1)
	go func() {
		for {
			evt, err := sub.Recv(ctx)
			if err != nil {
				recvErr <- err
				return
			}
			select {
			case events <- evt:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case err := <-recvErr:
			var lag *runtime.OverrunError
			if stderrors.As(err, &lag) {
				s.log.Warn("WebSocket event stream overrun, closing", "missed", lag.Missed)
			}
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, ""),
				time.Now().Add(writeWait))
			return
		case evt := <-events:
			data, err := event.Encode(evt)
			if err != nil {
				s.log.Warn("Event encoding failed", "kind", evt.Kind(), "error", err)
				continue
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

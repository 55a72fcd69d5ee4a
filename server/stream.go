package server

import (
	"chat-hub/domain/event"
	"chat-hub/runtime"
	stderrors "errors"
	"fmt"
	"net/http"
)

// streamEvents keeps the connection open and forwards every domain event
// as a server-sent event in the tagged wire form. The subscription is
// dropped as soon as the client disconnects. When the client falls behind
// and the subscription overruns, the stream is terminated; the browser is
// expected to reconnect and continue from live traffic.
func (s *Server) streamEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	sub, ok := s.bus.Subscribe()
	if !ok {
		http.Error(w, "event streaming unavailable", http.StatusNotImplemented)
		return
	}
	defer sub.Close()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for {
		evt, err := sub.Recv(r.Context())
		if err != nil {
			var lag *runtime.OverrunError
			if stderrors.As(err, &lag) {
				s.log.Warn("Event stream overrun, closing connection", "missed", lag.Missed)
			}
			return
		}

		data, err := event.Encode(evt)
		if err != nil {
			s.log.Warn("Event encoding failed", "kind", evt.Kind(), "error", err)
			continue
		}
		if _, err := fmt.Fprintf(w, "data: %s\n\n", data); err != nil {
			return
		}
		flusher.Flush()
	}
}

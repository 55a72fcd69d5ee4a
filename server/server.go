// Package server is the HTTP boundary of the chat system. Handlers are
// thin collaborators: they validate input, call the chat service, and let
// the event bus carry the resulting domain events to the streaming
// endpoints.
package server

import (
	"chat-hub/auth"
	"chat-hub/clock"
	"chat-hub/contract"
	"chat-hub/observability"
	"chat-hub/services"
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type contextKey string

const usernameKey contextKey = "username"

type Server struct {
	log      *slog.Logger
	service  services.IChatService
	bus      contract.EventBus
	sessions *auth.SessionManager
	monitor  *observability.Monitor
	clk      clock.Clock
	validate *validator.Validate
}

func New(
	log *slog.Logger,
	service services.IChatService,
	bus contract.EventBus,
	sessions *auth.SessionManager,
	monitor *observability.Monitor,
	clk clock.Clock,
) *Server {
	return &Server{
		log:      log,
		service:  service,
		bus:      bus,
		sessions: sessions,
		monitor:  monitor,
		clk:      clk,
		validate: validator.New(),
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Route("/api", func(r chi.Router) {
		r.Post("/session", s.login)
		r.Get("/events", s.streamEvents)

		r.Group(func(r chi.Router) {
			r.Use(s.requireSession)
			r.Get("/session", s.whoami)
			r.Delete("/session", s.logout)
			r.Post("/rooms", s.createRoom)
			r.Get("/rooms", s.listRooms)
			r.Post("/rooms/{roomID}/users", s.joinRoom)
			r.Delete("/rooms/{roomID}/users", s.leaveRoom)
			r.Get("/rooms/{roomID}/users", s.listMembers)
			r.Post("/rooms/{roomID}/messages", s.sendMessage)
			r.Get("/rooms/{roomID}/messages", s.listMessages)
		})
	})

	r.Get("/ws/events", s.streamEventsWS)
	r.Get("/healthz", s.health)

	return r
}

// requireSession rejects requests without a valid session cookie and puts
// the authenticated username into the request context.
func (s *Server) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(auth.CookieName)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		username, err := s.sessions.Verify(cookie.Value)
		if err != nil {
			s.log.Debug("Session rejected", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		ctx := context.WithValue(r.Context(), usernameKey, username)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func usernameFrom(ctx context.Context) string {
	username, _ := ctx.Value(usernameKey).(string)
	return username
}

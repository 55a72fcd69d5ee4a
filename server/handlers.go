package server

import (
	"chat-hub/domain"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

const timeFormat = time.RFC3339Nano

type loginRequest struct {
	Username string `json:"username" validate:"required,min=2,max=256"`
}

type createRoomRequest struct {
	ID   uuid.UUID `json:"id" validate:"required"`
	Name string    `json:"name" validate:"required,max=256"`
}

type sendMessageRequest struct {
	ID      uuid.UUID `json:"id" validate:"required"`
	Message string    `json:"message" validate:"required,max=1024"`
}

type roomResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type messageResponse struct {
	ID     uuid.UUID `json:"id"`
	RoomID uuid.UUID `json:"room_id"`
	Author string    `json:"author"`
	Body   string    `json:"body"`
	SentAt string    `json:"sent_at"`
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		http.Error(w, "malformed request body", http.StatusBadRequest)
		return false
	}
	if err := s.validate.Struct(dst); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.log.Debug("Response encoding failed", "error", err)
	}
}

func roomIDFrom(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	roomID, err := uuid.Parse(chi.URLParam(r, "roomID"))
	if err != nil {
		http.Error(w, "invalid room id", http.StatusBadRequest)
		return uuid.Nil, false
	}
	return roomID, true
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !s.decode(w, r, &req) {
		return
	}

	token, err := s.sessions.Issue(req.Username, s.clk.Now())
	if err != nil {
		s.log.Warn("Session issuing failed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	http.SetCookie(w, s.sessions.Cookie(token))

	s.service.Login(req.Username)
	w.WriteHeader(http.StatusOK)
}

func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	s.service.Logout(usernameFrom(r.Context()))
	http.SetCookie(w, s.sessions.ClearCookie())
	w.WriteHeader(http.StatusOK)
}

func (s *Server) whoami(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"username": usernameFrom(r.Context())})
}

func (s *Server) createRoom(w http.ResponseWriter, r *http.Request) {
	var req createRoomRequest
	if !s.decode(w, r, &req) {
		return
	}

	room := s.service.CreateRoom(req.ID, req.Name, usernameFrom(r.Context()))
	s.writeJSON(w, http.StatusOK, roomResponse{ID: room.ID, Name: room.Name})
}

func (s *Server) listRooms(w http.ResponseWriter, r *http.Request) {
	rooms := lo.Map(s.service.ListRooms(), func(room domain.Room, _ int) roomResponse {
		return roomResponse{ID: room.ID, Name: room.Name}
	})
	s.writeJSON(w, http.StatusOK, rooms)
}

func (s *Server) joinRoom(w http.ResponseWriter, r *http.Request) {
	roomID, ok := roomIDFrom(w, r)
	if !ok {
		return
	}
	s.service.JoinRoom(roomID, usernameFrom(r.Context()))
	w.WriteHeader(http.StatusOK)
}

func (s *Server) leaveRoom(w http.ResponseWriter, r *http.Request) {
	roomID, ok := roomIDFrom(w, r)
	if !ok {
		return
	}
	s.service.LeaveRoom(roomID, usernameFrom(r.Context()))
	w.WriteHeader(http.StatusOK)
}

func (s *Server) listMembers(w http.ResponseWriter, r *http.Request) {
	roomID, ok := roomIDFrom(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, s.service.ListMembers(roomID))
}

func (s *Server) sendMessage(w http.ResponseWriter, r *http.Request) {
	roomID, ok := roomIDFrom(w, r)
	if !ok {
		return
	}
	var req sendMessageRequest
	if !s.decode(w, r, &req) {
		return
	}
	s.service.SendMessage(roomID, req.ID, usernameFrom(r.Context()), req.Message)
	w.WriteHeader(http.StatusOK)
}

func (s *Server) listMessages(w http.ResponseWriter, r *http.Request) {
	roomID, ok := roomIDFrom(w, r)
	if !ok {
		return
	}
	messages := lo.Map(s.service.ListMessages(roomID), func(m domain.Message, _ int) messageResponse {
		return messageResponse{
			ID:     m.ID,
			RoomID: m.RoomID,
			Author: m.Author,
			Body:   m.Body,
			SentAt: m.SentAt.Format(timeFormat),
		}
	})
	s.writeJSON(w, http.StatusOK, messages)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.monitor.Snapshot())
}

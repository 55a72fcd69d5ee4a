//go:generate go run go.uber.org/mock/mockgen -source=chat_service.go -destination=../mocks/mock_chat_service.go -package=mocks
package services

import (
	"chat-hub/clock"
	"chat-hub/contract"
	"chat-hub/domain"
	"chat-hub/domain/event"
	"chat-hub/moderation"
	"chat-hub/repositories"
	"log/slog"

	"github.com/google/uuid"
)

type IChatService interface {
	Login(username string)
	Logout(username string)
	CreateRoom(id uuid.UUID, name, creator string) domain.Room
	JoinRoom(roomID uuid.UUID, username string) bool
	LeaveRoom(roomID uuid.UUID, username string)
	SendMessage(roomID, id uuid.UUID, username, body string) domain.Message
	GetRoom(id uuid.UUID) (domain.Room, bool)
	ListRooms() []domain.Room
	ListMessages(roomID uuid.UUID) []domain.Message
	ListMembers(roomID uuid.UUID) []string
}

// ChatService executes the state-changing operations of the chat domain.
// Every mutation follows the same discipline: update the store first
// (holding only the lock of the touched collection), release it, then
// publish the resulting domain event. Locks are never held across a
// publish.
type ChatService struct {
	log       *slog.Logger
	bus       contract.EventBus
	clk       clock.Clock
	rooms     *repositories.RoomRepository
	messages  *repositories.MessageRepository
	members   *repositories.MembershipRepository
	moderator *moderation.Moderator
}

func NewChatService(
	log *slog.Logger,
	bus contract.EventBus,
	clk clock.Clock,
	rooms *repositories.RoomRepository,
	messages *repositories.MessageRepository,
	members *repositories.MembershipRepository,
	moderator *moderation.Moderator,
) *ChatService {
	return &ChatService{
		log:       log,
		bus:       bus,
		clk:       clk,
		rooms:     rooms,
		messages:  messages,
		members:   members,
		moderator: moderator,
	}
}

func (s *ChatService) Login(username string) {
	s.bus.Publish(event.UserLoggedIn{Username: username})
}

func (s *ChatService) Logout(username string) {
	s.bus.Publish(event.UserLoggedOut{Username: username})
}

// CreateRoom stores the room, adds the creator to its member set, and
// publishes RoomWasCreated followed by UserJoinedRoom for the creator.
func (s *ChatService) CreateRoom(id uuid.UUID, name, creator string) domain.Room {
	now := s.clk.Now()
	room := domain.Room{ID: id, Name: name}

	s.rooms.Add(room)
	s.members.Add(id, creator)

	s.bus.Publish(event.RoomWasCreated{ID: id, Name: name, CreatedAt: now})
	s.bus.Publish(event.UserJoinedRoom{RoomID: id, Username: creator, JoinedAt: now})
	return room
}

// JoinRoom is idempotent: when the user is already a member, nothing is
// mutated and no event is published. It reports whether the user joined.
func (s *ChatService) JoinRoom(roomID uuid.UUID, username string) bool {
	now := s.clk.Now()
	if !s.members.Add(roomID, username) {
		s.log.Debug("Join ignored, user already in room", "room", roomID, "username", username)
		return false
	}
	s.bus.Publish(event.UserJoinedRoom{RoomID: roomID, Username: username, JoinedAt: now})
	return true
}

// LeaveRoom is unconditional: it always publishes UserLeftRoom, even when
// the user was not a member. The asymmetry with JoinRoom is kept from the
// reference behavior on purpose.
func (s *ChatService) LeaveRoom(roomID uuid.UUID, username string) {
	now := s.clk.Now()
	s.members.Remove(roomID, username)
	s.bus.Publish(event.UserLeftRoom{RoomID: roomID, Username: username, LeftAt: now})
}

// SendMessage moderates the body, appends the message to the room history
// and publishes MessageWasSend. It always mutates and always publishes.
func (s *ChatService) SendMessage(roomID, id uuid.UUID, username, body string) domain.Message {
	now := s.clk.Now()
	if s.moderator != nil {
		body = s.moderator.Censor(body)
	}

	message := domain.Message{
		ID:     id,
		RoomID: roomID,
		Author: username,
		Body:   body,
		SentAt: now,
	}
	s.messages.Append(message)

	s.bus.Publish(event.MessageWasSend{
		ID:       id,
		RoomID:   roomID,
		Username: username,
		Message:  body,
		SendAt:   now,
	})
	return message
}

func (s *ChatService) GetRoom(id uuid.UUID) (domain.Room, bool) {
	return s.rooms.Get(id)
}

func (s *ChatService) ListRooms() []domain.Room {
	return s.rooms.List()
}

func (s *ChatService) ListMessages(roomID uuid.UUID) []domain.Message {
	return s.messages.ListByRoom(roomID)
}

func (s *ChatService) ListMembers(roomID uuid.UUID) []string {
	return s.members.List(roomID)
}

package services

import (
	"errors"
	"fmt"
	"sync"

	"anonchat_server/models"

	"github.com/google/uuid"
)

var (
	// ErrAlreadyInRoom means a member of a would-be room is still in another room
	ErrAlreadyInRoom = errors.New("connection is already in a room")
	// ErrRoomNotFound means the referenced room does not exist
	ErrRoomNotFound = errors.New("room not found")
	// ErrNotAMember means the connection does not belong to the referenced room
	ErrNotAMember = errors.New("connection is not a member of this room")
)

// RoomService tracks active two-party rooms and their membership.
type RoomService struct {
	mu      sync.RWMutex
	rooms   map[string]*models.Room // room id -> room
	members map[string]string       // connection id -> room id
}

// NewRoomService initializes an empty registry
func NewRoomService() *RoomService {
	return &RoomService{
		rooms:   make(map[string]*models.Room),
		members: make(map[string]string),
	}
}

// CreateRoom pairs two connections in a fresh room and returns its id. Ids are
// random rather than derived from the member ids, so they are collision-free
// even when the same two users match again later.
func (s *RoomService) CreateRoom(connA, connB string) (string, error) {
	if connA == connB {
		return "", fmt.Errorf("room needs two distinct members, got %q twice", connA)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.members[connA]; taken {
		return "", fmt.Errorf("%w: %s", ErrAlreadyInRoom, connA)
	}
	if _, taken := s.members[connB]; taken {
		return "", fmt.Errorf("%w: %s", ErrAlreadyInRoom, connB)
	}

	roomID := "room_" + uuid.NewString()
	s.rooms[roomID] = &models.Room{ID: roomID, MemberA: connA, MemberB: connB}
	s.members[connA] = roomID
	s.members[connB] = roomID
	return roomID, nil
}

// LeaveRoom dissolves the room containing connID, if any, and returns the peer
// connection so the caller can notify it. Not being in a room is a no-op.
func (s *RoomService) LeaveRoom(connID string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	roomID, ok := s.members[connID]
	if !ok {
		return "", false
	}

	room := s.rooms[roomID]
	peer := room.Peer(connID)
	delete(s.rooms, roomID)
	delete(s.members, connID)
	delete(s.members, peer)
	return peer, true
}

// RoomOf returns the room id a connection currently belongs to
func (s *RoomService) RoomOf(connID string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	roomID, ok := s.members[connID]
	return roomID, ok
}

// Peer validates that connID belongs to roomID and returns the other member.
// Client-supplied room ids flow through here, so both the room and the
// membership are checked rather than trusted.
func (s *RoomService) Peer(roomID, connID string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	room, ok := s.rooms[roomID]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrRoomNotFound, roomID)
	}
	if !room.Contains(connID) {
		return "", fmt.Errorf("%w: %s in %s", ErrNotAMember, connID, roomID)
	}
	return room.Peer(connID), nil
}

// ActiveRooms returns the number of live rooms
func (s *RoomService) ActiveRooms() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rooms)
}

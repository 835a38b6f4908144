package services

import (
	"fmt"
	"log"
	"sync"

	"anonchat_server/models"
)

// SessionService orchestrates the connection lifecycle: queueing, matching,
// room membership, and message relay. A connection is always in exactly one of
// three states: idle, waiting in the queue, or paired in a room.
type SessionService struct {
	// mu serializes full state transitions. Each collaborator also guards its
	// own data, but a join (leave room, check quota, match, create room) must
	// not interleave with another transition mid-flight.
	mu sync.Mutex

	Limiter *RateLimiterService
	Queue   *MatchmakingService
	Rooms   *RoomService
	Relay   *RelayService
}

// Stats is a snapshot of live engine counters for the HTTP API.
type Stats struct {
	WaitingUsers   int `json:"waitingUsers"`
	ActiveRooms    int `json:"activeRooms"`
	TrackedDevices int `json:"trackedDevices"`
}

// NewSessionService wires the engine to its collaborators
func NewSessionService(limiter *RateLimiterService, queue *MatchmakingService, rooms *RoomService, relay *RelayService) *SessionService {
	return &SessionService{
		Limiter: limiter,
		Queue:   queue,
		Rooms:   rooms,
		Relay:   relay,
	}
}

// JoinQueue handles a join_queue event. A paired user implicitly leaves their
// current room first. Filtered joins consume one daily-quota slot before any
// matching happens; a denied join leaves the user idle and informed, which is
// not an error from the server's point of view.
func (s *SessionService) JoinQueue(connID string, req models.JoinRequest) error {
	if err := req.Validate(); err != nil {
		return fmt.Errorf("rejecting join from %s: %w", connID, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.leaveRoomLocked(connID)

	if req.Filtered() {
		allowed, remaining := s.Limiter.CheckAndConsume(req.DeviceID, true, models.DailyFilterLimit)
		if !allowed {
			log.Printf("🚫 Device %s exhausted its daily filter quota", req.DeviceID)
			s.Relay.SystemMessage(connID, models.MsgDailyLimit)
			return nil
		}
		log.Printf("🔍 Device %s filter usage: %d/%d", req.DeviceID, models.DailyFilterLimit-remaining, models.DailyFilterLimit)
	}

	user := models.WaitingUser{
		ConnectionID: connID,
		Nickname:     req.Nickname,
		Gender:       req.Gender,
		GenderFilter: req.GenderFilter,
	}

	partner, matched := s.Queue.EnqueueOrMatch(user)
	if !matched {
		log.Printf("⏳ %s (%s) is waiting, looking for: %s", req.Nickname, req.Gender, req.GenderFilter)
		return nil
	}

	roomID, err := s.Rooms.CreateRoom(connID, partner.ConnectionID)
	if err != nil {
		// Both sides just left queue and room state, so this cannot happen
		// unless a caller bypassed the engine.
		log.Printf("❌ Failed to create room for %s and %s: %v", connID, partner.ConnectionID, err)
		return err
	}

	log.Printf("✅ Match created: %s (%s + %s)", roomID, req.Nickname, partner.Nickname)
	s.Relay.AnnounceMatch(roomID, connID, partner.ConnectionID)
	return nil
}

// SendMessage relays a chat message to the sender's current peer. A message
// against a room the sender does not belong to is rejected, never relayed.
func (s *SessionService) SendMessage(connID string, msg models.ChatMessage) error {
	if err := msg.Validate(); err != nil {
		return fmt.Errorf("rejecting message from %s: %w", connID, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.Relay.DeliverChat(connID, msg)
}

// ReportUser handles a report_user event. A report dissolves the room exactly
// like a plain leave; no record of the report is kept.
func (s *SessionService) ReportUser(connID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	log.Printf("⚠️ %s reported their partner", connID)
	s.leaveRoomLocked(connID)
}

// Disconnect removes a connection from all engine state. A waiting entry is
// cancelled, and a paired peer gets notified.
func (s *SessionService) Disconnect(connID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Queue.Cancel(connID) {
		log.Printf("🧹 Removed waiting entry for %s", connID)
	}
	s.leaveRoomLocked(connID)
}

// Stats snapshots the live counters
func (s *SessionService) Stats() Stats {
	return Stats{
		WaitingUsers:   s.Queue.WaitingCount(),
		ActiveRooms:    s.Rooms.ActiveRooms(),
		TrackedDevices: s.Limiter.ActiveDevices(),
	}
}

// leaveRoomLocked dissolves the caller's room, if any, and notifies the peer.
// Callers must hold s.mu.
func (s *SessionService) leaveRoomLocked(connID string) {
	peer, ok := s.Rooms.LeaveRoom(connID)
	if !ok {
		return
	}
	log.Printf("🚪 %s left their room, notifying %s", connID, peer)
	s.Relay.NotifyPartnerLeft(peer)
}

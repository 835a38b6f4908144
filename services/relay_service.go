package services

import (
	"fmt"
	"time"

	"anonchat_server/models"
	"anonchat_server/utils"
)

// Emitter delivers an event to a single connection endpoint. Implementations
// must not block the caller, and delivery to an unknown connection id is a
// silent no-op: the client may already be gone.
type Emitter interface {
	Emit(connID string, event string, payload ...interface{})
}

// RelayService routes chat messages and system notifications to the correct
// peer of a room.
type RelayService struct {
	Rooms   *RoomService
	Emitter Emitter
	Now     func() time.Time
}

// NewRelayService wires the relay to the room registry and the transport emitter
func NewRelayService(rooms *RoomService, emitter Emitter) *RelayService {
	return &RelayService{Rooms: rooms, Emitter: emitter, Now: time.Now}
}

// DeliverChat relays a chat message to the sender's peer. The room id comes
// from the client, so membership is validated first. The sender never receives
// an echo of their own message.
func (s *RelayService) DeliverChat(senderConnID string, msg models.ChatMessage) error {
	peer, err := s.Rooms.Peer(msg.RoomID, senderConnID)
	if err != nil {
		return fmt.Errorf("cannot relay message: %w", err)
	}

	s.Emitter.Emit(peer, models.EventReceiveMessage, models.IncomingPayload{
		Sender:  msg.Sender,
		Message: msg.Message,
		Time:    utils.Timestamp(s.Now()),
	})
	return nil
}

// AnnounceMatch tells both members their room is ready
func (s *RelayService) AnnounceMatch(roomID, connA, connB string) {
	payload := models.MatchPayload{RoomID: roomID}
	s.Emitter.Emit(connA, models.EventMatchFound, payload)
	s.Emitter.Emit(connB, models.EventMatchFound, payload)
}

// NotifyPartnerLeft tells a peer that the stranger is gone and their room dissolved
func (s *RelayService) NotifyPartnerLeft(peerConnID string) {
	s.SystemMessage(peerConnID, models.MsgStrangerLeft)
	s.Emitter.Emit(peerConnID, models.EventPartnerLeft)
}

// SystemMessage delivers an in-band server notification to one connection
func (s *RelayService) SystemMessage(connID, text string) {
	s.Emitter.Emit(connID, models.EventReceiveMessage, models.IncomingPayload{
		Sender:  models.SystemSender,
		Message: text,
	})
}

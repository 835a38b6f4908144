package socket

import (
	"log"

	"anonchat_server/models"
	"anonchat_server/services"

	socketio "github.com/googollee/go-socket.io"
)

// NewSocketServer initializes a Socket.IO server wired to the session engine.
// Handler errors are logged and swallowed: a misbehaving client must never
// take the server down or affect other connections.
func NewSocketServer(engine *services.SessionService, registry *Registry) *socketio.Server {
	server := socketio.NewServer(nil)

	// Handle connection events
	server.OnConnect("/", func(c socketio.Conn) error {
		c.SetContext("")
		registry.Add(c)
		log.Println("✅ Socket connected:", c.ID())
		return nil
	})

	// Handle queue join events
	server.OnEvent("/", models.EventJoinQueue, func(c socketio.Conn, req models.JoinRequest) {
		log.Printf("👥 %s (%s) joined. Looking for: %s", req.Nickname, req.Gender, req.GenderFilter)
		if err := engine.JoinQueue(c.ID(), req); err != nil {
			log.Println("❌", err)
		}
	})

	// Handle chat messages
	server.OnEvent("/", models.EventSendMessage, func(c socketio.Conn, msg models.ChatMessage) {
		if err := engine.SendMessage(c.ID(), msg); err != nil {
			log.Println("❌", err)
		}
	})

	// Handle partner reports
	server.OnEvent("/", models.EventReportUser, func(c socketio.Conn) {
		engine.ReportUser(c.ID())
	})

	server.OnError("/", func(c socketio.Conn, err error) {
		log.Println("❌ Socket error:", err)
	})

	// Handle disconnection
	server.OnDisconnect("/", func(c socketio.Conn, reason string) {
		log.Println("❌ Socket disconnected:", c.ID(), reason)
		registry.Remove(c.ID())
		engine.Disconnect(c.ID())
	})

	return server
}

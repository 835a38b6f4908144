package socket

import (
	"sync"

	socketio "github.com/googollee/go-socket.io"
)

// Registry maps connection ids to live socket connections. The core services
// only ever see the id; the socket handle lives here, next to the transport.
type Registry struct {
	mu    sync.RWMutex
	conns map[string]socketio.Conn
}

// NewRegistry initializes an empty connection registry
func NewRegistry() *Registry {
	return &Registry{conns: make(map[string]socketio.Conn)}
}

// Add registers a connected socket
func (r *Registry) Add(conn socketio.Conn) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conns[conn.ID()] = conn
}

// Remove deregisters a socket by connection id
func (r *Registry) Remove(connID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.conns, connID)
}

// Count returns the number of connected clients
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.conns)
}

// Emit sends an event to one connection. The write is queued on the
// connection's own send loop, so a slow client never stalls the caller.
// Unknown ids are dropped: the client may already have disconnected.
func (r *Registry) Emit(connID string, event string, payload ...interface{}) {
	r.mu.RLock()
	conn, ok := r.conns[connID]
	r.mu.RUnlock()
	if !ok {
		return
	}
	conn.Emit(event, payload...)
}

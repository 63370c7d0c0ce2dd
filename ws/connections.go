package ws

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Role is the audience group a connection belongs to. A connection has no
// role until its first join event.
type Role string

const (
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
)

// ConnectionContext stores the server-side state of one WebSocket connection.
type ConnectionContext struct {
	Conn *websocket.Conn
	ID   string // server-minted connection id

	mu sync.Mutex // serializes writes to Conn
}

// ConnectionRegistry tracks every live connection of the session and routes
// outbound events to the right audience: the teacher singleton, the students
// group, everyone, or a single connection. It implements session.Notifier.
type ConnectionRegistry struct {
	mu        sync.RWMutex
	conns     map[string]*ConnectionContext
	roles     map[string]Role
	teacherID string // connection id of the current teacher, "" when absent
	log       *slog.Logger
}

// NewConnectionRegistry initializes an empty ConnectionRegistry.
func NewConnectionRegistry(log *slog.Logger) *ConnectionRegistry {
	return &ConnectionRegistry{
		conns: make(map[string]*ConnectionContext),
		roles: make(map[string]Role),
		log:   log.With("component", "ws"),
	}
}

// Register adds a freshly upgraded connection under a new connection id.
func (r *ConnectionRegistry) Register(conn *websocket.Conn) *ConnectionContext {
	ctx := &ConnectionContext{Conn: conn, ID: uuid.NewString()}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.conns[ctx.ID] = ctx
	return ctx
}

// Unregister drops a connection (e.g. on disconnect). When the teacher
// disconnects the singleton is cleared.
func (r *ConnectionRegistry) Unregister(connID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.conns, connID)
	delete(r.roles, connID)
	if r.teacherID == connID {
		r.teacherID = ""
	}
}

// SetTeacher makes the connection the teacher singleton, replacing any
// previous teacher reference. Co-teachers are not supported: the session has
// a single moderator at a time.
func (r *ConnectionRegistry) SetTeacher(connID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.roles[connID] = RoleTeacher
	r.teacherID = connID
}

// SetStudent adds the connection to the students group.
func (r *ConnectionRegistry) SetStudent(connID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.roles[connID] = RoleStudent
}

// SendToConnection sends one event to a single connection.
func (r *ConnectionRegistry) SendToConnection(connID, event string, data any) {
	r.mu.RLock()
	ctx := r.conns[connID]
	r.mu.RUnlock()

	if ctx == nil {
		return
	}
	r.write(event, data, ctx)
}

// SendToTeacher sends one event to the teacher singleton; no-op when no
// teacher is connected.
func (r *ConnectionRegistry) SendToTeacher(event string, data any) {
	r.mu.RLock()
	ctx := r.conns[r.teacherID]
	r.mu.RUnlock()

	if ctx == nil {
		return
	}
	r.write(event, data, ctx)
}

// SendToStudents broadcasts one event to the students group.
func (r *ConnectionRegistry) SendToStudents(event string, data any) {
	r.write(event, data, r.snapshot(RoleStudent)...)
}

// SendToAll broadcasts one event to every live connection, whatever its role.
func (r *ConnectionRegistry) SendToAll(event string, data any) {
	r.write(event, data, r.snapshot("")...)
}

// CloseConnection force-closes the transport of one connection (used on
// kick). The connection's read loop observes the close and unregisters.
func (r *ConnectionRegistry) CloseConnection(connID string) {
	r.mu.RLock()
	ctx := r.conns[connID]
	r.mu.RUnlock()

	if ctx == nil {
		return
	}
	ctx.Conn.Close()
}

// snapshot copies the connections matching [role] ("" matches all) so no
// registry lock is held during WriteMessage.
func (r *ConnectionRegistry) snapshot(role Role) []*ConnectionContext {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var conns []*ConnectionContext
	for id, ctx := range r.conns {
		if role == "" || r.roles[id] == role {
			conns = append(conns, ctx)
		}
	}
	return conns
}

// write marshals one event envelope and delivers it to each receiver. A
// failed write unregisters the connection; it does not halt delivery to the
// remaining receivers.
func (r *ConnectionRegistry) write(event string, data any, receivers ...*ConnectionContext) {
	payload, err := json.Marshal(ServerMessage{Event: event, Data: data})
	if err != nil {
		r.log.Error("failed to marshal event", "event", event, "err", err)
		return
	}

	for _, ctx := range receivers {
		ctx.mu.Lock()
		err := ctx.Conn.WriteMessage(websocket.TextMessage, payload)
		ctx.mu.Unlock()

		if err != nil {
			r.log.Warn("failed to send event", "event", event, "conn", ctx.ID, "err", err)
			r.Unregister(ctx.ID)
		}
	}
}

package ws

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/noorjahan04/live-polling-system/events"
	"github.com/noorjahan04/live-polling-system/session"
)

// Registry is the connection-facing surface the gateway needs: the audience
// routing of session.Notifier plus role assignment on join events.
type Registry interface {
	session.Notifier
	SetTeacher(connID string)
	SetStudent(connID string)
}

// Gateway is the boundary between the transport and the session core. It
// checks the shape of inbound events and dispatches them; malformed or
// unknown events are dropped without a reply. The only error ever surfaced
// to a client is the create-poll conflict, sent to the requester alone.
type Gateway struct {
	session  *session.Session
	registry Registry
	validate *validator.Validate
	log      *slog.Logger
}

// NewGateway wires a gateway to the session and the connection registry.
func NewGateway(sess *session.Session, registry Registry, log *slog.Logger) *Gateway {
	return &Gateway{
		session:  sess,
		registry: registry,
		validate: validator.New(),
		log:      log.With("component", "gateway"),
	}
}

// HandleMessage processes one raw inbound frame from connection [connID].
func (g *Gateway) HandleMessage(connID string, raw []byte) {
	var env ClientEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		g.log.Debug("dropped unparseable message", "conn", connID, "err", err)
		return
	}

	switch env.Event {
	case events.TeacherJoin:
		g.registry.SetTeacher(connID)
		g.session.TeacherJoin(connID)

	case events.StudentJoin:
		var p StudentJoinPayload
		if !g.decode(connID, env, &p) {
			return
		}
		g.registry.SetStudent(connID)
		g.session.StudentJoin(connID, p.SessionID, p.Name)

	case events.CreatePoll:
		var p CreatePollPayload
		if !g.decode(connID, env, &p) {
			return
		}
		if err := g.session.CreatePoll(connID, p.Question, p.Options, p.TimeLimit); err != nil {
			g.registry.SendToConnection(connID, events.Error, ErrorPayload{Message: err.Error()})
		}

	case events.StartPoll:
		g.session.StartPoll()

	case events.SubmitAnswer:
		var p SubmitAnswerPayload
		if !g.decode(connID, env, &p) {
			return
		}
		g.session.SubmitAnswer(p.SessionID, *p.OptionID)

	case events.EndPoll:
		g.session.EndPoll()

	case events.RemoveStudent:
		var p RemoveStudentPayload
		if !g.decode(connID, env, &p) {
			return
		}
		g.session.RemoveStudent(p.SessionID)

	case events.ChatMessage:
		var p ChatPayload
		if !g.decode(connID, env, &p) {
			return
		}
		g.registry.SendToAll(events.ChatMessage, ChatBroadcast{
			ChatPayload: p,
			Timestamp:   time.Now().UnixMilli(),
		})

	default:
		g.log.Debug("dropped unknown event", "conn", connID, "event", env.Event)
	}
}

// Disconnect handles a transport-level connection loss.
func (g *Gateway) Disconnect(connID string) {
	g.session.Leave(connID)
}

// decode unmarshals and validates an event payload. Invalid payloads are
// dropped silently, mirroring the permissive legacy behavior.
func (g *Gateway) decode(connID string, env ClientEnvelope, out any) bool {
	if err := json.Unmarshal(env.Data, out); err != nil {
		g.log.Debug("dropped malformed payload", "conn", connID, "event", env.Event, "err", err)
		return false
	}
	if err := g.validate.Struct(out); err != nil {
		g.log.Debug("dropped invalid payload", "conn", connID, "event", env.Event, "err", err)
		return false
	}
	return true
}

package app

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/noorjahan04/live-polling-system/config"
	"github.com/noorjahan04/live-polling-system/session"
	"github.com/noorjahan04/live-polling-system/ws"
)

// Manager represents the orchestrator of the whole service and wires the
// critically important components: the connection registry, the session
// state and the event gateway.
type Manager struct {
	Registry *ws.ConnectionRegistry
	Session  *session.Session
	Gateway  *ws.Gateway
}

// NewManager builds the component graph. The registry doubles as the
// session's notifier, so outbound events flow session -> registry ->
// connections without the session ever touching a socket.
func NewManager(log *slog.Logger) *Manager {
	registry := ws.NewConnectionRegistry(log)
	sess := session.New(registry, log)

	return &Manager{
		Registry: registry,
		Session:  sess,
		Gateway:  ws.NewGateway(sess, registry, log),
	}
}

// Router builds the HTTP surface: the WebSocket endpoint, a liveness check
// and a read-only JSON view of the closed-poll history.
func (m *Manager) Router(cfg *config.ServiceConfig, log *slog.Logger) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/ws", ws.NewWebSocketHandler(m.Registry, m.Gateway, cfg.FrontendURL, log))

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	r.HandleFunc("/api/history", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(m.Session.History()); err != nil {
			log.Error("failed to encode poll history", "err", err)
		}
	}).Methods(http.MethodGet)

	return r
}

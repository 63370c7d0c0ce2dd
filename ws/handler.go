package ws

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
)

// NewWebSocketHandler returns the http.HandlerFunc serving the one WebSocket
// endpoint. It upgrades the request, registers the connection under a fresh
// connection id and starts a read loop feeding the gateway. When
// [allowedOrigin] is non-empty, upgrades from any other Origin are refused.
func NewWebSocketHandler(registry *ConnectionRegistry, gateway *Gateway, allowedOrigin string, log *slog.Logger) http.HandlerFunc {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  5 * 1024,
		WriteBufferSize: 5 * 1024,
		CheckOrigin: func(r *http.Request) bool {
			if allowedOrigin == "" {
				return true
			}
			origin := r.Header.Get("Origin")
			return origin == "" || origin == allowedOrigin
		},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Error("failed to upgrade websocket", "err", err)
			return
		}

		ctx := registry.Register(conn)
		log.Info("client connected", "conn", ctx.ID)

		go handleRead(ctx, registry, gateway, log)
	}
}

// handleRead continuously reads messages from the connection and hands them
// to the gateway. Any read error, including a kick-triggered close, is a
// disconnect: the connection is unregistered and the roster cleaned up.
func handleRead(ctx *ConnectionContext, registry *ConnectionRegistry, gateway *Gateway, log *slog.Logger) {
	defer func() {
		registry.Unregister(ctx.ID)
		gateway.Disconnect(ctx.ID)
		ctx.Conn.Close()
	}()

	for {
		_, raw, err := ctx.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Warn("websocket read failed", "conn", ctx.ID, "err", err)
			} else {
				log.Info("client disconnected", "conn", ctx.ID)
			}
			return
		}

		gateway.HandleMessage(ctx.ID, raw)
	}
}

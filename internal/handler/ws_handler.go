package handler

import (
	"net/http"

	"notekeeper/internal/logger"
	"notekeeper/internal/websocket"

	"github.com/google/uuid"
	ws "github.com/gorilla/websocket"
)

type WebSocketHandler struct {
	manager  *websocket.Manager
	upgrader ws.Upgrader
}

func NewWebSocketHandler(manager *websocket.Manager) *WebSocketHandler {
	return &WebSocketHandler{
		manager: manager,
		upgrader: ws.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// HandleConnection upgrades the request and subscribes it to the note
// change feed.
func (h *WebSocketHandler) HandleConnection(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Msg("failed to upgrade websocket connection")
		return
	}

	client := websocket.NewClient(uuid.NewString(), conn, h.manager)
	if !h.manager.Attach(client) {
		conn.Close()
		return
	}
	log.Debug().Str("client_id", client.ID).Msg("websocket client connected")

	go client.WritePump()
	go client.ReadPump()
}

package ws

import (
	"animalquiz/internal/model"
	"animalquiz/internal/service"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins, CORS policy lives in the REST layer
	},
}

// Handler handles WebSocket connections
type Handler struct {
	hub        *Hub
	authSvc    *service.AuthService
	attemptSvc *service.AttemptService
	logger     *zap.Logger
}

// NewHandler creates a new WebSocket handler
func NewHandler(hub *Hub, authSvc *service.AuthService, attemptSvc *service.AttemptService, logger *zap.Logger) *Handler {
	return &Handler{
		hub:        hub,
		authSvc:    authSvc,
		attemptSvc: attemptSvc,
		logger:     logger,
	}
}

// AttemptWS handles GET /v1/ws/attempts?token=...
// The current view is sent right after the upgrade, then every update.
func (h *Handler) AttemptWS(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		http.Error(w, "missing token", http.StatusUnauthorized)
		return
	}

	claims, err := h.authSvc.ValidateAttemptToken(token)
	if err != nil {
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return
	}

	if _, err := h.attemptSvc.Current(r.Context(), claims.AttemptID); err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	wsConn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	conn := &Connection{
		AttemptID: claims.AttemptID,
		Send:      make(chan []byte, 256),
		Hub:       h.hub,
	}

	// Registered before the first view is read so no update falls between
	h.hub.Register(conn)

	go h.writePump(wsConn, conn)
	go h.readPump(wsConn, conn)

	err = h.attemptSvc.Watch(r.Context(), claims.AttemptID, func(view *model.AttemptView) {
		h.hub.SendTo(conn, string(MsgState), view)
	})
	if err != nil {
		h.logger.Warn("attempt gone before first view", zap.String("attempt", claims.AttemptID), zap.Error(err))
		h.hub.Unregister(conn)
	}
}

func (h *Handler) readPump(wsConn *websocket.Conn, conn *Connection) {
	defer func() {
		h.hub.Unregister(conn)
		wsConn.Close()
	}()

	wsConn.SetReadLimit(maxMessageSize)
	wsConn.SetReadDeadline(time.Now().Add(pongWait))
	wsConn.SetPongHandler(func(string) error {
		wsConn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		// Clients only listen; answers go through REST
		if _, _, err := wsConn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.Warn("websocket closed", zap.String("attempt", conn.AttemptID), zap.Error(err))
			}
			break
		}
	}
}

func (h *Handler) writePump(wsConn *websocket.Conn, conn *Connection) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		wsConn.Close()
	}()

	for {
		select {
		case message, ok := <-conn.Send:
			wsConn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				wsConn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := wsConn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			if err := w.Close(); err != nil {
				return
			}

		case <-ticker.C:
			wsConn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := wsConn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

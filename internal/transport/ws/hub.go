package ws

import (
	"encoding/json"
	"sync"

	"go.uber.org/zap"
)

// MessageType defines the type of WebSocket message
type MessageType string

const (
	MsgState MessageType = "state"
	MsgError MessageType = "error"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub fans attempt updates out to every socket watching that attempt
type Hub struct {
	conns map[string]map[*Connection]bool // attemptID -> conns

	mu     sync.RWMutex
	logger *zap.Logger

	register   chan *Connection
	unregister chan *Connection
	broadcast  chan *BroadcastMessage
	done       chan struct{}
	closeOnce  sync.Once
}

// Connection represents a WebSocket connection
type Connection struct {
	AttemptID string
	Send      chan []byte
	Hub       *Hub
}

// BroadcastMessage is a message to broadcast. A non-nil Conn limits
// delivery to that socket.
type BroadcastMessage struct {
	AttemptID string
	Conn      *Connection
	Message   *Message
}

// NewHub creates a WebSocket hub and starts its loop
func NewHub(logger *zap.Logger) *Hub {
	h := &Hub{
		conns:      make(map[string]map[*Connection]bool),
		logger:     logger,
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		broadcast:  make(chan *BroadcastMessage, 256),
		done:       make(chan struct{}),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			if h.conns[conn.AttemptID] == nil {
				h.conns[conn.AttemptID] = make(map[*Connection]bool)
			}
			h.conns[conn.AttemptID][conn] = true
			h.mu.Unlock()
			h.logger.Debug("socket connected", zap.String("attempt", conn.AttemptID))

		case conn := <-h.unregister:
			h.mu.Lock()
			if set, ok := h.conns[conn.AttemptID]; ok && set[conn] {
				delete(set, conn)
				close(conn.Send)
				if len(set) == 0 {
					delete(h.conns, conn.AttemptID)
				}
				h.logger.Debug("socket disconnected", zap.String("attempt", conn.AttemptID))
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			data, err := json.Marshal(msg.Message)
			if err != nil {
				h.logger.Error("encode broadcast", zap.Error(err))
				continue
			}
			h.mu.RLock()
			for conn := range h.conns[msg.AttemptID] {
				if msg.Conn != nil && msg.Conn != conn {
					continue
				}
				select {
				case conn.Send <- data:
				default:
					// Drop message if buffer full
				}
			}
			h.mu.RUnlock()

		case <-h.done:
			h.mu.Lock()
			for _, set := range h.conns {
				for conn := range set {
					close(conn.Send)
				}
			}
			h.conns = make(map[string]map[*Connection]bool)
			h.mu.Unlock()
			return
		}
	}
}

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	select {
	case h.register <- conn:
	case <-h.done:
		close(conn.Send)
	}
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	select {
	case h.unregister <- conn:
	case <-h.done:
	}
}

// Close stops the hub and closes every connection's send channel
func (h *Hub) Close() {
	h.closeOnce.Do(func() { close(h.done) })
}

// Watchers counts sockets subscribed to an attempt
func (h *Hub) Watchers(attemptID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns[attemptID])
}

// BroadcastToAttempt sends a message to every socket of an attempt
// (implements service.Broadcaster)
func (h *Hub) BroadcastToAttempt(attemptID string, msgType string, payload interface{}) {
	h.enqueue(attemptID, nil, msgType, payload)
}

// SendTo queues a message for one registered socket, behind any
// broadcast already queued for its attempt
func (h *Hub) SendTo(conn *Connection, msgType string, payload interface{}) {
	h.enqueue(conn.AttemptID, conn, msgType, payload)
}

func (h *Hub) enqueue(attemptID string, conn *Connection, msgType string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		h.logger.Error("encode payload", zap.String("type", msgType), zap.Error(err))
		return
	}
	msg := &BroadcastMessage{
		AttemptID: attemptID,
		Conn:      conn,
		Message: &Message{
			Type:    MessageType(msgType),
			Payload: data,
		},
	}
	select {
	case h.broadcast <- msg:
	case <-h.done:
	}
}

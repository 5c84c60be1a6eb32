// Package realtime pushes JSON events to connected websocket clients.
package realtime

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"celebrity-booking/pkg/metrics"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	sendBuffer = 16
)

type client struct {
	conn *websocket.Conn
	send chan []byte
	// closeCode is set before send is closed and read by writePump after.
	closeCode int
}

// Hub fans out messages to every socket a user has open.
type Hub struct {
	upgrader websocket.Upgrader
	mu       sync.RWMutex
	clients  map[string]map[*client]struct{}
	log      *zap.Logger
}

func NewHub(allowedOrigins []string, log *zap.Logger) *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowedOrigins),
		},
		clients: make(map[string]map[*client]struct{}),
		log:     log.With(zap.String("component", "realtime")),
	}
}

func originChecker(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		for _, a := range allowed {
			if a == "*" || a == origin {
				return true
			}
		}
		return false
	}
}

// Serve upgrades the request and blocks until the client disconnects.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request, userID string) error {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	c := &client{conn: conn, send: make(chan []byte, sendBuffer), closeCode: websocket.CloseNormalClosure}
	h.add(userID, c)
	defer h.remove(userID, c)

	go h.writePump(c)
	h.readPump(c)
	return nil
}

func (h *Hub) add(userID string, c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[userID] == nil {
		h.clients[userID] = make(map[*client]struct{})
	}
	h.clients[userID][c] = struct{}{}
	metrics.RealtimeConnections.Inc()
	h.log.Debug("Client connected", zap.String("user_id", userID))
}

func (h *Hub) remove(userID string, c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.detach(userID, c, websocket.CloseNormalClosure)
}

// detach must be called with mu held. It is a no-op for clients already gone,
// so the deferred remove in Serve is safe after an eviction.
func (h *Hub) detach(userID string, c *client, code int) bool {
	set, ok := h.clients[userID]
	if !ok {
		return false
	}
	_, found := set[c]
	if found {
		delete(set, c)
		c.closeCode = code
		close(c.send)
		metrics.RealtimeConnections.Dec()
	}
	if len(set) == 0 {
		delete(h.clients, userID)
	}
	return found
}

// readPump discards client input; it only keeps the deadline fresh.
func (h *Hub) readPump(c *client) {
	c.conn.SetReadLimit(512)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(c.closeCode, ""))
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// Publish sends v as JSON to every connection of userID. A client whose
// buffer is full is disconnected with 1013 (try again later) instead of
// silently missing the message; on reconnect it refetches from the
// notification API, which stays the source of truth.
func (h *Hub) Publish(userID string, v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		h.log.Error("Failed to encode realtime payload", zap.Error(err))
		return
	}

	var slow []*client
	h.mu.RLock()
	for c := range h.clients[userID] {
		select {
		case c.send <- payload:
		default:
			slow = append(slow, c)
		}
	}
	h.mu.RUnlock()

	if len(slow) == 0 {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, c := range slow {
		if h.detach(userID, c, websocket.CloseTryAgainLater) {
			h.log.Warn("Disconnected slow realtime client", zap.String("user_id", userID))
		}
	}
}

// Connections returns the number of open sockets for userID.
func (h *Hub) Connections(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}

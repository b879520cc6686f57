package httpapi

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
	"google.golang.org/protobuf/encoding/protojson"

	"github.com/and161185/ecoscan/internal/convert"
	"github.com/and161185/ecoscan/internal/model"
)

const (
	writeWait  = 5 * time.Second
	sendBuffer = 16
)

type client struct {
	userID string
	conn   *websocket.Conn
	send   chan []byte
}

func newClient(userID string, conn *websocket.Conn) *client {
	return &client{userID: userID, conn: conn, send: make(chan []byte, sendBuffer)}
}

// writeLoop owns every write to the socket. It returns, closing the
// socket, once send is closed or a write fails.
func (c *client) writeLoop(ping time.Duration) {
	t := time.NewTicker(ping)
	defer func() {
		t.Stop()
		_ = c.conn.Close()
	}()
	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, nil)
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-t.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// Hub fans points updates out to the websocket connections of each user.
type Hub struct {
	mu      sync.Mutex
	clients map[string]map[*client]struct{}
	log     *zap.Logger
}

// NewHub returns an empty hub.
func NewHub(log *zap.Logger) *Hub {
	return &Hub{clients: make(map[string]map[*client]struct{}), log: log}
}

func (h *Hub) register(c *client) {
	h.mu.Lock()
	if h.clients[c.userID] == nil {
		h.clients[c.userID] = make(map[*client]struct{})
	}
	h.clients[c.userID][c] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	h.dropLocked(c)
	h.mu.Unlock()
}

// dropLocked removes c and closes its queue, which stops its writer.
// It is a no-op for clients already dropped.
func (h *Hub) dropLocked(c *client) {
	set := h.clients[c.userID]
	if _, ok := set[c]; !ok {
		return
	}
	delete(set, c)
	if len(set) == 0 {
		delete(h.clients, c.userID)
	}
	close(c.send)
}

// Connected returns how many sockets the user has open.
func (h *Hub) Connected(userID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients[userID])
}

// Notify queues the points record for every socket of the user and
// returns without waiting on the network. Sockets whose queue is full
// are dropped.
func (h *Hub) Notify(userID string, p model.UserPoints) {
	msg, err := protojson.Marshal(convert.ToWirePoints(&p))
	if err != nil {
		h.log.Error("encode points", zap.Error(err))
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients[userID] {
		select {
		case c.send <- msg:
		default:
			h.log.Debug("drop slow socket", zap.String("user", userID))
			h.dropLocked(c)
		}
	}
}

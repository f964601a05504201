package notifier

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"truvamate/internal/domain/entity"
)

const sendBuffer = 64

// wsClient pairs a connection with its outbound queue. The queue is drained
// by exactly one writePump goroutine; gorilla allows a single concurrent
// writer per connection.
type wsClient struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub holds per-user toast queues and fans new toasts out to any connected
// websocket clients. Every toast is auto-dismissed after a fixed delay by a
// timer keyed to its id; manual dismissal cancels the timer, and dismissing
// an id that already expired is a no-op.
type Hub struct {
	mu     sync.RWMutex
	queues map[string][]entity.Toast
	timers map[string]*time.Timer
	conns  map[string]map[*websocket.Conn]*wsClient
	ttl    time.Duration
	seq    uint64
}

func NewHub(ttl time.Duration) *Hub {
	return &Hub{
		queues: make(map[string][]entity.Toast),
		timers: make(map[string]*time.Timer),
		conns:  make(map[string]map[*websocket.Conn]*wsClient),
		ttl:    ttl,
	}
}

// Push enqueues a toast for the user and schedules its auto-dismissal.
func (h *Hub) Push(userID, message, severity string) {
	h.mu.Lock()

	h.seq++
	toast := entity.Toast{
		ID:        fmt.Sprintf("%d-%d", time.Now().UnixMilli(), h.seq),
		Message:   message,
		Severity:  severity,
		CreatedAt: time.Now(),
	}
	h.queues[userID] = append(h.queues[userID], toast)

	id := toast.ID
	h.timers[timerKey(userID, id)] = time.AfterFunc(h.ttl, func() {
		h.Dismiss(userID, id)
	})
	h.mu.Unlock()

	h.send(userID, toast)
}

// Dismiss removes a toast and cancels its pending timer. Unknown ids are
// ignored.
func (h *Hub) Dismiss(userID, toastID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	key := timerKey(userID, toastID)
	if timer, ok := h.timers[key]; ok {
		timer.Stop()
		delete(h.timers, key)
	}

	queue := h.queues[userID]
	for i, toast := range queue {
		if toast.ID == toastID {
			h.queues[userID] = append(queue[:i], queue[i+1:]...)
			return
		}
	}
}

// List returns a copy of the user's current queue.
func (h *Hub) List(userID string) []entity.Toast {
	h.mu.RLock()
	defer h.mu.RUnlock()

	queue := h.queues[userID]
	out := make([]entity.Toast, len(queue))
	copy(out, queue)
	return out
}

// Register attaches a websocket connection for live toast delivery and
// starts its write pump.
func (h *Hub) Register(userID string, conn *websocket.Conn) {
	client := &wsClient{conn: conn, send: make(chan []byte, sendBuffer)}

	h.mu.Lock()
	if h.conns[userID] == nil {
		h.conns[userID] = make(map[*websocket.Conn]*wsClient)
	}
	h.conns[userID][conn] = client
	h.mu.Unlock()

	go h.writePump(userID, client)
	log.Printf("Notification client registered: %s", userID)
}

// Unregister detaches a connection and closes its queue, which stops the
// write pump. Safe to call more than once for the same connection.
func (h *Hub) Unregister(userID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.conns[userID]
	if !ok {
		return
	}
	client, ok := clients[conn]
	if !ok {
		return
	}

	delete(clients, conn)
	if len(clients) == 0 {
		delete(h.conns, userID)
	}
	close(client.send)
	log.Printf("Notification client unregistered: %s", userID)
}

// writePump is the connection's sole writer.
func (h *Hub) writePump(userID string, client *wsClient) {
	defer client.conn.Close()

	for payload := range client.send {
		if err := client.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			log.Printf("Failed to push toast to %s: %v", userID, err)
			h.Unregister(userID, client.conn)
			return
		}
	}
	client.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

func (h *Hub) send(userID string, toast entity.Toast) {
	payload, err := json.Marshal(toast)
	if err != nil {
		return
	}

	// Queue under the read lock: close only happens under the write lock,
	// so a send can never hit a closed channel.
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, client := range h.conns[userID] {
		select {
		case client.send <- payload:
		default:
			log.Printf("Toast buffer full for %s, dropping", userID)
		}
	}
}

func timerKey(userID, toastID string) string {
	return userID + ":" + toastID
}

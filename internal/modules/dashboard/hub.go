package dashboard

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"hotelcore/internal/domain"
)

// StatusEvent is pushed to every connected dashboard when a room changes
// status.
type StatusEvent struct {
	Type       string            `json:"type"`
	RoomID     int64             `json:"room_id"`
	RoomNumber string            `json:"room_number"`
	Floor      int               `json:"floor"`
	OldStatus  domain.RoomStatus `json:"old_status"`
	NewStatus  domain.RoomStatus `json:"new_status"`
	Action     domain.Action     `json:"action"`
	Channel    domain.Channel    `json:"channel"`
	ChangedBy  int64             `json:"changed_by"`
	At         time.Time         `json:"at"`
}

// client serializes writes to one connection. gorilla/websocket allows at
// most one concurrent writer per connection, and broadcasts arrive from
// many request goroutines at once.
type client struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (c *client) write(event StatusEvent) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(event)
}

func (c *client) close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.Close()
}

// Hub fans room status events out to connected dashboard clients. It is
// broadcast-only: inbound messages are ignored.
type Hub struct {
	mutex   sync.RWMutex
	nextID  int64
	clients map[int64]*client
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[int64]*client),
	}
}

func (h *Hub) Register(conn *websocket.Conn) int64 {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	h.nextID++
	h.clients[h.nextID] = &client{conn: conn}
	return h.nextID
}

func (h *Hub) Unregister(id int64) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if cl, exists := h.clients[id]; exists {
		cl.close()
		delete(h.clients, id)
	}
}

func (h *Hub) ClientCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.clients)
}

// Broadcast sends the event to every client; clients that fail to write
// are dropped.
func (h *Hub) Broadcast(event StatusEvent) {
	h.mutex.RLock()
	clients := make(map[int64]*client, len(h.clients))
	for id, cl := range h.clients {
		clients[id] = cl
	}
	h.mutex.RUnlock()

	for id, cl := range clients {
		if err := cl.write(event); err != nil {
			h.Unregister(id)
		}
	}
}

// NotifyStatusChanged satisfies the rooms module notifier interface.
func (h *Hub) NotifyStatusChanged(room *domain.Room, entry *domain.StatusHistoryEntry) {
	h.Broadcast(StatusEvent{
		Type:       "room_status_changed",
		RoomID:     room.ID,
		RoomNumber: room.RoomNumber,
		Floor:      room.Floor,
		OldStatus:  entry.OldStatus,
		NewStatus:  entry.NewStatus,
		Action:     entry.Action,
		Channel:    entry.Channel,
		ChangedBy:  entry.ChangedBy,
		At:         entry.CreatedAt,
	})
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for id, cl := range h.clients {
		cl.close()
		delete(h.clients, id)
	}
}

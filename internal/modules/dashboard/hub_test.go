package dashboard

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"

	"hotelcore/internal/domain"
)

func dialTestClient(t *testing.T, hub *Hub) *websocket.Conn {
	t.Helper()
	up := websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := up.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		hub.Register(conn)
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

// Transitions broadcast from their own request goroutines, so the hub must
// serialize writes per connection. Run with -race.
func TestBroadcastFromConcurrentRequests(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	conn := dialTestClient(t, hub)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 },
		time.Second, 5*time.Millisecond)

	received := make(chan int, 1)
	go func() {
		n := 0
		for {
			var ev StatusEvent
			if err := conn.ReadJSON(&ev); err != nil {
				received <- n
				return
			}
			n++
		}
	}()

	const writers, perWriter = 8, 200
	event := StatusEvent{
		Type:      "room_status_changed",
		RoomID:    1,
		OldStatus: domain.StatusClean,
		NewStatus: domain.StatusDirty,
	}

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWriter; j++ {
				hub.Broadcast(event)
			}
		}()
	}
	wg.Wait()

	// no write may have failed, so the client must still be registered
	require.Equal(t, 1, hub.ClientCount())

	hub.Close()
	require.Equal(t, writers*perWriter, <-received)
}

package events

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startServer(t *testing.T, hub *Hub) string {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	admin := r.Group("/api/v1/admin")
	admin.Use(func(c *gin.Context) {
		c.Set("user_id", int64(1))
		c.Next()
	})
	NewHandler(hub).RegisterRoutes(admin)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/v1/admin/ws"
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestHub_BroadcastReachesEverySubscriber(t *testing.T) {
	hub := NewHub()
	hub.now = func() time.Time { return time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC) }
	defer hub.Close()
	url := startServer(t, hub)

	a := dial(t, url)
	b := dial(t, url)
	require.Eventually(t, func() bool { return hub.Count() == 2 }, 2*time.Second, 10*time.Millisecond)

	hub.Broadcast("booking.created", map[string]string{"id": "abc"})

	for _, conn := range []*websocket.Conn{a, b} {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		_, raw, err := conn.ReadMessage()
		require.NoError(t, err)

		var ev struct {
			Type    string            `json:"type"`
			Payload map[string]string `json:"payload"`
			At      time.Time         `json:"at"`
		}
		require.NoError(t, json.Unmarshal(raw, &ev))
		assert.Equal(t, "booking.created", ev.Type)
		assert.Equal(t, "abc", ev.Payload["id"])
		assert.True(t, ev.At.Equal(time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)))
	}
}

func TestHub_UnregistersOnDisconnect(t *testing.T) {
	hub := NewHub()
	defer hub.Close()
	url := startServer(t, hub)

	conn := dial(t, url)
	require.Eventually(t, func() bool { return hub.Count() == 1 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close())
	require.Eventually(t, func() bool { return hub.Count() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestHub_CloseDisconnectsAndRefuses(t *testing.T) {
	hub := NewHub()
	url := startServer(t, hub)

	conn := dial(t, url)
	require.Eventually(t, func() bool { return hub.Count() == 1 }, 2*time.Second, 10*time.Millisecond)

	hub.Close()
	assert.Equal(t, 0, hub.Count())

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err := conn.ReadMessage()
	assert.Error(t, err)

	// Broadcasting after close is a no-op.
	hub.Broadcast("booking.cancelled", nil)
}

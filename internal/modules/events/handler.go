package events

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Sockets authenticate with the bearer token (header or ?token=), so any
// origin may connect.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type Handler struct {
	hub *Hub
}

func NewHandler(hub *Hub) *Handler {
	return &Handler{hub: hub}
}

// RegisterRoutes mounts the feed on an admin-only group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/ws", h.Stream)
}

func (h *Handler) Stream(c *gin.Context) {
	userID := c.GetInt64("user_id")
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("event_feed_upgrade_failed user_id=%d err=%v", userID, err)
		return
	}

	log.Printf("event_feed_connected user_id=%d", userID)
	h.hub.Serve(conn, userID)
	log.Printf("event_feed_disconnected user_id=%d", userID)
}

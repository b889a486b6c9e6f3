package handlers

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"campushire/models"
	"campushire/services/notification"
	"campushire/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Socket authentication is not part of this layer; see routes for the
	// HTTP-side auth story.
	CheckOrigin: func(r *http.Request) bool { return true },
}

const wsWriteTimeout = 10 * time.Second

// wsChannel adapts a websocket connection to notification.Channel.
// gorilla/websocket permits one concurrent writer, so pushes are serialized.
type wsChannel struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (c *wsChannel) Push(n *models.Notification) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
	return c.conn.WriteJSON(n)
}

type inboundMessage struct {
	Type         string `json:"type"`
	SubscriberID string `json:"subscriberId"`
}

// WebSocketHandler upgrades notification/dashboard connections and feeds the
// connection registry.
type WebSocketHandler struct {
	Dispatcher *notification.DefaultDispatcher
}

func NewWebSocketHandler(dispatcher *notification.DefaultDispatcher) *WebSocketHandler {
	return &WebSocketHandler{Dispatcher: dispatcher}
}

// ServeWS handles GET /ws. The connection stays unrouted until a valid
// subscribe message arrives; registering triggers a flush of any queued
// notifications for that subscriber.
func (h *WebSocketHandler) ServeWS(c *gin.Context) {
	logger := utils.GetLogger()

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Error("WebSocket upgrade failed", zap.Error(err))
		return
	}

	ch := &wsChannel{conn: conn}
	var subscriberID string

	defer func() {
		conn.Close()
		if subscriberID != "" {
			h.Dispatcher.Release(subscriberID, ch)
		}
	}()

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			// Close or error: stop routing to this connection.
			return
		}

		var msg inboundMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			logger.Warn("Ignoring malformed websocket message", zap.Error(err))
			continue
		}

		switch msg.Type {
		case "subscribe":
			if msg.SubscriberID == "" {
				logger.Warn("Subscribe message missing subscriber id")
				continue
			}
			if subscriberID != "" && subscriberID != msg.SubscriberID {
				h.Dispatcher.Release(subscriberID, ch)
			}
			subscriberID = msg.SubscriberID
			h.Dispatcher.Register(subscriberID, ch)
			logger.Debug("Subscriber connected", zap.String("subscriberId", subscriberID))
		default:
			// Other inbound message types are currently unhandled.
		}
	}
}

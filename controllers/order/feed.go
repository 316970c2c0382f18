package orderController

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/craftkart/marketplace-api/logger"
	"github.com/craftkart/marketplace-api/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Feed pushes order summaries to connected sellers when a checkout commits.
type Feed struct {
	mu    sync.Mutex
	conns map[*websocket.Conn]bool
}

func NewFeed() *Feed {
	return &Feed{conns: make(map[*websocket.Conn]bool)}
}

// GET /orders/ws
func (f *Feed) Handler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	f.mu.Lock()
	f.conns[conn] = true
	f.mu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			f.mu.Lock()
			delete(f.conns, conn)
			f.mu.Unlock()
			break
		}
	}
}

func (f *Feed) Broadcast(order *models.Order) {
	payload, err := json.Marshal(gin.H{
		"event": "order_placed",
		"order": order,
	})
	if err != nil {
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for conn := range f.conns {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			logger.L.Warn("order feed write failed", zap.Error(err))
			conn.Close()
			delete(f.conns, conn)
		}
	}
}

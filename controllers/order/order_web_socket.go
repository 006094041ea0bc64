package orderControllers

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/shopworks/storefront-api/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type orderEvent struct {
	Type     string             `json:"type"` // "order_created" or "status_changed"
	OrderID  uint               `json:"order_id"`
	OrderRef string             `json:"order_ref"`
	Status   models.OrderStatus `json:"status"`
}

var (
	wsMu      sync.Mutex
	wsClients = make(map[*websocket.Conn]bool)
)

// GET /orders/ws/orders
func OrderFeedHandler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	wsMu.Lock()
	wsClients[conn] = true
	wsMu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			wsMu.Lock()
			delete(wsClients, conn)
			wsMu.Unlock()
			break
		}
	}
}

func BroadcastNewOrder(order *models.Order) {
	broadcast(orderEvent{
		Type:     "order_created",
		OrderID:  order.ID,
		OrderRef: order.OrderRef,
		Status:   order.Status,
	})
}

func BroadcastOrderStatus(order *models.Order) {
	broadcast(orderEvent{
		Type:     "status_changed",
		OrderID:  order.ID,
		OrderRef: order.OrderRef,
		Status:   order.Status,
	})
}

func broadcast(event orderEvent) {
	wsMu.Lock()
	defer wsMu.Unlock()
	for client := range wsClients {
		if err := client.WriteJSON(event); err != nil {
			client.Close()
			delete(wsClients, client)
		}
	}
}

package adminController

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/AleSenlle/el-brote-verde/catalog"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// ProductFeed pushes product mutations to connected admin panels so an
// open product table refreshes live.
type ProductFeed struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

// NewProductFeed subscribes a feed to the store's mutation events.
func NewProductFeed(store *catalog.ProductStore) *ProductFeed {
	f := &ProductFeed{clients: make(map[*websocket.Conn]bool)}
	store.Subscribe(f.broadcast)
	return f
}

// GET /admin/products/ws
func (f *ProductFeed) Handler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	f.mu.Lock()
	f.clients[conn] = true
	f.mu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			f.mu.Lock()
			delete(f.clients, conn)
			f.mu.Unlock()
			break
		}
	}
}

func (f *ProductFeed) broadcast(ev catalog.Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for client := range f.clients {
		client.WriteMessage(websocket.TextMessage, data)
	}
}

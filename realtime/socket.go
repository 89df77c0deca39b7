package realtime

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Message is the envelope pushed to websocket clients.
type Message struct {
	Event   string      `json:"event"`
	Payload interface{} `json:"payload"`
}

// View registers whatever subscriptions a screen needs and pushes updates
// through send. It returns the disposer that tears them down.
type View func(send func(Message)) (dispose func())

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Serve upgrades the request and keeps view alive until the client goes away.
func Serve(w http.ResponseWriter, r *http.Request, log *zap.Logger, view View) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	var mu sync.Mutex
	closed := false
	send := func(msg Message) {
		mu.Lock()
		defer mu.Unlock()
		if closed {
			return
		}
		if err := conn.WriteJSON(msg); err != nil {
			log.Debug("websocket write failed", zap.String("event", msg.Event), zap.Error(err))
			closed = true
			conn.Close()
		}
	}

	dispose := view(send)
	defer dispose()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			mu.Lock()
			closed = true
			mu.Unlock()
			return
		}
	}
}

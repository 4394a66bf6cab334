package websockets

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// ActivityFeed pushes content and vote events to connected clients.
type ActivityFeed struct {
	mu         sync.Mutex
	clients    map[*websocket.Conn]bool
	broadcast  chan []byte
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
}

func NewActivityFeed() *ActivityFeed {
	return &ActivityFeed{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan []byte, 64),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
	}
}

// Run pumps registrations and broadcasts. Call it once, in its own goroutine.
func (feed *ActivityFeed) Run() {
	for {
		select {
		case conn := <-feed.register:
			feed.mu.Lock()
			feed.clients[conn] = true
			feed.mu.Unlock()

		case conn := <-feed.unregister:
			feed.mu.Lock()
			if _, ok := feed.clients[conn]; ok {
				delete(feed.clients, conn)
				conn.Close()
			}
			feed.mu.Unlock()

		case message := <-feed.broadcast:
			feed.mu.Lock()
			for conn := range feed.clients {
				if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
					conn.Close()
					delete(feed.clients, conn)
				}
			}
			feed.mu.Unlock()
		}
	}
}

// Publish queues an event for all connected clients. Drops the event when
// the broadcast buffer is full rather than blocking a request.
func (feed *ActivityFeed) Publish(eventType string, contentID int, emoji string) {
	payload, err := json.Marshal(Event{
		Type:      eventType,
		ContentID: contentID,
		Emoji:     emoji,
		At:        time.Now(),
	})
	if err != nil {
		log.Println("failed to marshal activity event", err)
		return
	}

	select {
	case feed.broadcast <- payload:
	default:
	}
}

// HandleConnections upgrades the request and keeps the client registered
// until it disconnects. Clients only listen; inbound messages are discarded.
func (feed *ActivityFeed) HandleConnections(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println(err)
		return
	}

	feed.register <- conn

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			feed.unregister <- conn
			break
		}
	}
}

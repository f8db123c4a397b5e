package web

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// LiveReloader pushes a reload message to connected browsers when a UI
// asset changes in dev mode. All methods are safe for concurrent use.
type LiveReloader struct {
	clients  map[*websocket.Conn]bool
	lock     sync.Mutex
	upgrader websocket.Upgrader
}

// NewLiveReloader creates a LiveReloader with no connected clients.
func NewLiveReloader() *LiveReloader {
	return &LiveReloader{
		clients: make(map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			// The page is served from the same host, but dev setups
			// vary, so accept any origin here too.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Handler upgrades the request to a websocket and registers the client
// until it disconnects.
func (lr *LiveReloader) Handler(w http.ResponseWriter, r *http.Request) {
	conn, err := lr.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	lr.lock.Lock()
	lr.clients[conn] = true
	lr.lock.Unlock()

	go func() {
		defer func() {
			lr.lock.Lock()
			delete(lr.clients, conn)
			lr.lock.Unlock()
			conn.Close()
		}()

		for {
			if _, _, err := conn.NextReader(); err != nil {
				break
			}
		}
	}()
}

// Broadcast sends the reload message to every connected client, dropping
// any client whose connection has gone away.
func (lr *LiveReloader) Broadcast() {
	lr.lock.Lock()
	defer lr.lock.Unlock()

	for conn := range lr.clients {
		if err := conn.WriteMessage(websocket.TextMessage, []byte("reload")); err != nil {
			conn.Close()
			delete(lr.clients, conn)
		}
	}
}

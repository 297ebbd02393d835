package handlers

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/medassist/medassist-api/models"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// the feed carries no sensitive data and dashboards connect from
	// arbitrary origins
	CheckOrigin: func(r *http.Request) bool { return true },
}

// LiveFeed fans out assessment summary events to connected websocket clients
type LiveFeed struct {
	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
}

// NewLiveFeed creates an empty live feed hub
func NewLiveFeed() *LiveFeed {
	return &LiveFeed{conns: make(map[*websocket.Conn]struct{})}
}

// LiveFeedHandler upgrades the connection and subscribes it to the feed
func (f *LiveFeed) LiveFeedHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		zap.S().With(err).Error("failed to upgrade live feed connection")
		return
	}

	f.mu.Lock()
	f.conns[conn] = struct{}{}
	f.mu.Unlock()
	zap.S().Debugw("live feed client connected", "remote", conn.RemoteAddr().String())

	go f.readLoop(conn)
}

// readLoop drains inbound frames so close messages are processed
func (f *LiveFeed) readLoop(conn *websocket.Conn) {
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			f.remove(conn)
			return
		}
	}
}

func (f *LiveFeed) remove(conn *websocket.Conn) {
	f.mu.Lock()
	delete(f.conns, conn)
	f.mu.Unlock()
	_ = conn.Close()
}

// Broadcast sends an assessment event to every connected client. Clients
// that fail to accept the write are dropped.
func (f *LiveFeed) Broadcast(event models.LiveAssessmentEvent) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for conn := range f.conns {
		if err := conn.WriteJSON(event); err != nil {
			delete(f.conns, conn)
			_ = conn.Close()
		}
	}
}

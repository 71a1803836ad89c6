package monitor

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/gofiber/websocket/v2"
)

// Hub fans delivered messages out to every connected /live observer.
type Hub struct {
	ctx    context.Context
	cancel context.CancelFunc
	events <-chan string

	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

func NewHub(events <-chan string) (*Hub, error) {
	if events == nil {
		return nil, fmt.Errorf("events channel is required")
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Hub{
		ctx:     ctx,
		cancel:  cancel,
		events:  events,
		clients: make(map[*websocket.Conn]bool),
	}, nil
}

// Start begins broadcasting in its own goroutine.
func (h *Hub) Start() {
	go func() {
		for {
			select {
			case <-h.ctx.Done():
				return
			case message, ok := <-h.events:
				if !ok {
					return
				}
				h.broadcast(message)
			}
		}
	}()
}

// Register adds an observer connection. It is dropped again on the first
// failed write.
func (h *Hub) Register(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[conn] = true
}

// Unregister removes an observer connection.
func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, conn)
}

func (h *Hub) broadcast(message string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, []byte(message)); err != nil {
			log.Printf("Hub: dropping observer: %v", err)
			conn.Close()
			delete(h.clients, conn)
		}
	}
}

// Stop terminates broadcasting.
func (h *Hub) Stop() {
	h.cancel()
}

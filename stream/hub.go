package stream

import (
	"fmt"
	"log"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/lixenwraith/neon-drive/constants"
	"github.com/lixenwraith/neon-drive/engine"
)

// Hub fans snapshots out to websocket spectators
// Broadcast never blocks: a client whose queue is full misses the frame
type Hub struct {
	format   Format
	codec    Codec
	upgrader websocket.Upgrader

	mu      sync.RWMutex
	clients map[string]*client

	dropped atomic.Uint64
}

type client struct {
	id   string
	conn *websocket.Conn
	send chan []byte
	done chan struct{}
	once sync.Once
}

// NewHub creates a hub encoding frames in the given format
func NewHub(format Format) *Hub {
	return &Hub{
		format: format,
		codec:  NewCodec(format),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		clients: make(map[string]*client),
	}
}

// ServeHTTP upgrades the request and registers the spectator
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("stream upgrade error: %v", err)
		return
	}

	c := &client{
		id:   uuid.New().String(),
		conn: conn,
		send: make(chan []byte, constants.StreamSendBuffer),
		done: make(chan struct{}),
	}

	hello, err := h.codec.Encode(Message{Type: TypeHello, ClientID: c.id, Format: h.format})
	if err != nil {
		log.Printf("stream hello encode error: %v", err)
		conn.Close()
		return
	}
	c.send <- hello

	h.mu.Lock()
	h.clients[c.id] = c
	h.mu.Unlock()
	log.Printf("stream client %s connected from %s", c.id, r.RemoteAddr)

	go h.writePump(c)
	go h.readPump(c)
}

// Broadcast encodes the snapshot once and queues it for every client
func (h *Hub) Broadcast(snap engine.Snapshot) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if len(h.clients) == 0 {
		return nil
	}

	data, err := h.codec.Encode(Message{Type: TypeFrame, Snapshot: &snap})
	if err != nil {
		return fmt.Errorf("encode frame %d: %w", snap.Frame, err)
	}

	for _, c := range h.clients {
		select {
		case c.send <- data:
		default:
			h.dropped.Add(1)
		}
	}
	return nil
}

// ClientCount returns the number of connected spectators
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Dropped returns the number of frames skipped for slow clients
func (h *Hub) Dropped() uint64 {
	return h.dropped.Load()
}

// Close disconnects every client
func (h *Hub) Close() {
	h.mu.Lock()
	clients := h.clients
	h.clients = make(map[string]*client)
	h.mu.Unlock()

	for _, c := range clients {
		c.close()
	}
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	if h.clients[c.id] == c {
		delete(h.clients, c.id)
		log.Printf("stream client %s disconnected", c.id)
	}
	h.mu.Unlock()
	c.close()
}

func (h *Hub) writePump(c *client) {
	defer h.remove(c)
	for {
		select {
		case data := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(constants.StreamWriteTimeout))
			if err := c.conn.WriteMessage(h.codec.MessageType(), data); err != nil {
				log.Printf("stream write error for %s: %v", c.id, err)
				return
			}
		case <-c.done:
			return
		}
	}
}

// readPump drains control frames and notices disconnects
func (h *Hub) readPump(c *client) {
	defer h.remove(c)
	c.conn.SetReadLimit(constants.StreamReadLimit)
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *client) close() {
	c.once.Do(func() {
		close(c.done)
		if c.conn != nil {
			c.conn.Close()
		}
	})
}

// Listen binds addr and serves the hub at StreamPath in the background
// Bind errors are returned synchronously; the caller owns Shutdown
func Listen(addr string, h *Hub) (*http.Server, net.Addr, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, nil, fmt.Errorf("stream listen %s: %w", addr, err)
	}

	mux := http.NewServeMux()
	mux.Handle(constants.StreamPath, h)
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			log.Printf("stream server error: %v", err)
		}
	}()
	log.Printf("stream serving %s format on ws://%s%s", h.format, ln.Addr(), constants.StreamPath)
	return srv, ln.Addr(), nil
}

// Package stream broadcasts world snapshots to websocket subscribers as
// binary protobuf frames, one frame per rendered tick.
package stream

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/lao-tseu-is-alive/go-aquarium-boids/pb"
	"go.uber.org/zap"
	"google.golang.org/protobuf/proto"
)

// ErrClosed is returned by Publish once the hub is closed.
var ErrClosed = errors.New("stream hub closed")

const (
	// sendBuffer is how many frames a slow subscriber may lag before frames are dropped.
	sendBuffer      = 8
	writeWait       = 5 * time.Second
	shutdownTimeout = 3 * time.Second
)

type subscriber struct {
	id   string
	conn *websocket.Conn
	send chan []byte
}

// Hub fans snapshots out to every connected subscriber. A subscriber that
// cannot keep up loses frames, it never slows the simulation down.
type Hub struct {
	log      *zap.Logger
	upgrader websocket.Upgrader

	mu      sync.RWMutex
	clients map[string]*subscriber
	closed  bool
}

func NewHub(logger *zap.Logger) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{
		log: logger.Named("stream"),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 16 * 1024,
			// the feed is read-only and public
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		clients: make(map[string]*subscriber),
	}
}

// ServeHTTP upgrades the request and streams until the client leaves.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", zap.String("remote", r.RemoteAddr), zap.Error(err))
		return
	}
	sub := &subscriber{id: uuid.NewString(), conn: conn, send: make(chan []byte, sendBuffer)}
	if !h.add(sub) {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"), time.Now().Add(writeWait))
		_ = conn.Close()
		return
	}
	h.log.Info("subscriber joined", zap.String("id", sub.id), zap.String("remote", r.RemoteAddr))

	go h.writeLoop(sub)
	h.readLoop(sub)
}

func (h *Hub) add(sub *subscriber) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.clients[sub.id] = sub
	return true
}

// remove is idempotent, send is closed exactly once.
func (h *Hub) remove(sub *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[sub.id]; !ok {
		return
	}
	delete(h.clients, sub.id)
	close(sub.send)
}

// readLoop drains incoming frames, subscribers are not expected to talk.
func (h *Hub) readLoop(sub *subscriber) {
	defer h.remove(sub)
	for {
		if _, _, err := sub.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.log.Debug("subscriber read failed", zap.String("id", sub.id), zap.Error(err))
			}
			return
		}
	}
}

func (h *Hub) writeLoop(sub *subscriber) {
	defer func() {
		_ = sub.conn.Close()
		h.log.Info("subscriber left", zap.String("id", sub.id))
	}()
	for frame := range sub.send {
		_ = sub.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := sub.conn.WriteMessage(websocket.BinaryMessage, frame); err != nil {
			h.log.Debug("subscriber write failed", zap.String("id", sub.id), zap.Error(err))
			h.remove(sub)
			return
		}
	}
	_ = sub.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeWait))
}

// Publish encodes snap once and queues it for every subscriber without blocking.
func (h *Hub) Publish(snap *pb.WorldSnapshot) error {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.closed {
		return ErrClosed
	}
	if len(h.clients) == 0 {
		return nil
	}

	frame, err := proto.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot %d: %w", snap.GetFrame(), err)
	}
	for _, sub := range h.clients {
		select {
		case sub.send <- frame:
		default:
			h.log.Debug("subscriber lagging, frame dropped", zap.String("id", sub.id), zap.Uint64("frame", snap.GetFrame()))
		}
	}
	return nil
}

// Clients returns the number of connected subscribers.
func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close disconnects every subscriber. Later connections are refused.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for id, sub := range h.clients {
		delete(h.clients, id)
		close(sub.send)
	}
}

// Handler exposes the feed under /ws.
func (h *Hub) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/ws", h)
	return mux
}

// ListenAndServe serves the feed on addr until ctx is done.
func (h *Hub) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		h.log.Info("snapshot feed listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("snapshot feed on %s: %w", addr, err)
	case <-ctx.Done():
	}

	h.Close()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down snapshot feed: %w", err)
	}
	return nil
}

package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"adpulse/internal/core/domain"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10

	// DefaultFeedBuffer is the number of frames a subscriber may fall
	// behind before it is dropped.
	DefaultFeedBuffer = 32
)

// Frame types sent on the feed.
const (
	FrameDashboard = "dashboard"
	FrameDetail    = "detail"
)

// Frame is one message on the view feed. Exactly one of Dashboard and
// Detail is set, according to Type.
type Frame struct {
	Type      string                `json:"type"`
	Dashboard *domain.DashboardView `json:"dashboard,omitempty"`
	Detail    *domain.DetailView    `json:"detail,omitempty"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type subscriber struct {
	id   uuid.UUID
	send chan []byte
}

// Hub pushes every view change to the connected websocket subscribers. It
// implements port.ViewSink and never blocks the controllers: a subscriber
// whose buffer is full is disconnected.
type Hub struct {
	logger *slog.Logger
	buffer int

	mu        sync.Mutex
	subs      map[uuid.UUID]*subscriber
	dashboard []byte
	detail    []byte
	closed    bool
}

// NewHub returns a hub whose subscribers may lag by buffer frames.
func NewHub(buffer int, logger *slog.Logger) *Hub {
	if buffer < 2 {
		buffer = DefaultFeedBuffer
	}
	return &Hub{
		logger: logger.With(slog.String("component", "feed")),
		buffer: buffer,
		subs:   make(map[uuid.UUID]*subscriber),
	}
}

// DashboardChanged is part of the port.ViewSink interface.
func (h *Hub) DashboardChanged(v domain.DashboardView) {
	h.broadcast(Frame{Type: FrameDashboard, Dashboard: &v})
}

// DetailChanged is part of the port.ViewSink interface.
func (h *Hub) DetailChanged(v domain.DetailView) {
	h.broadcast(Frame{Type: FrameDetail, Detail: &v})
}

// Subscribers returns the number of connected subscribers.
func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

// Close disconnects every subscriber and refuses new ones.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	for id, s := range h.subs {
		close(s.send)
		delete(h.subs, id)
	}
}

func (h *Hub) broadcast(f Frame) {
	msg, err := json.Marshal(f)
	if err != nil {
		h.logger.Error("encode frame error", slog.Any("error", err))
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if f.Type == FrameDashboard {
		h.dashboard = msg
	} else {
		h.detail = msg
	}
	for id, s := range h.subs {
		select {
		case s.send <- msg:
		default:
			h.logger.Warn("dropping slow subscriber", slog.String("subscriber", id.String()))
			close(s.send)
			delete(h.subs, id)
		}
	}
}

// subscribe registers a subscriber primed with the latest views. It
// returns nil once the hub is closed.
func (h *Hub) subscribe() *subscriber {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil
	}
	s := &subscriber{id: uuid.New(), send: make(chan []byte, h.buffer)}
	for _, msg := range [][]byte{h.dashboard, h.detail} {
		if msg != nil {
			s.send <- msg
		}
	}
	h.subs[s.id] = s
	return s
}

func (h *Hub) unsubscribe(id uuid.UUID) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if s, ok := h.subs[id]; ok {
		close(s.send)
		delete(h.subs, id)
	}
}

// ServeHTTP upgrades the request to a websocket and streams frames until
// the client goes away, the subscriber is dropped or the hub is closed.
// Anything the client sends is discarded.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	socket, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied to the client.
		h.logger.Debug("websocket upgrade failed", slog.Any("error", err))
		return
	}
	defer socket.Close()

	sub := h.subscribe()
	if sub == nil {
		closeSocket(socket, websocket.CloseGoingAway, "shutting down")
		return
	}
	defer h.unsubscribe(sub.id)
	logger := h.logger.With(slog.String("subscriber", sub.id.String()))
	logger.Debug("subscriber connected")

	// The ping/pong exchange lets the server notice a client that went
	// away without closing the connection.
	_ = socket.SetReadDeadline(time.Now().Add(pongWait))
	socket.SetPongHandler(func(string) error {
		return socket.SetReadDeadline(time.Now().Add(pongWait))
	})
	gone := make(chan struct{})
	go func() {
		defer close(gone)
		for {
			// unblocked by socket.Close when the handler returns
			if _, _, err := socket.NextReader(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-gone:
			logger.Debug("subscriber disconnected")
			return
		case msg, ok := <-sub.send:
			if !ok {
				closeSocket(socket, websocket.CloseGoingAway, "feed closed")
				return
			}
			_ = socket.SetWriteDeadline(time.Now().Add(writeWait))
			if err := socket.WriteMessage(websocket.TextMessage, msg); err != nil {
				logger.Debug("write frame failed", slog.Any("error", err))
				return
			}
		case <-ticker.C:
			if err := socket.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				logger.Debug("write ping failed", slog.Any("error", err))
				return
			}
		}
	}
}

func closeSocket(socket *websocket.Conn, code int, text string) {
	_ = socket.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(code, text), time.Now().Add(writeWait))
}

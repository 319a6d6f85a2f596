package live

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/yashasviudayan/portfolio/internal/section"
)

const writeWait = 5 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
}

// Hub tracks the open page sessions.
type Hub struct {
	mu       sync.Mutex
	sessions map[string]*Session

	base context.Context
	stop context.CancelFunc

	links    []section.NavLink
	renderer Renderer
	logger   *zap.Logger
}

// NewHub returns a hub whose sessions render headers with r.
func NewHub(links []section.NavLink, r Renderer, logger *zap.Logger) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	base, stop := context.WithCancel(context.Background())
	return &Hub{
		sessions: make(map[string]*Session),
		base:     base,
		stop:     stop,
		links:    links,
		renderer: r,
		logger:   logger,
	}
}

// Open registers a new session for route.
func (h *Hub) Open(route section.Route, send Sender) *Session {
	s := NewSession(route, h.links, h.renderer, send, h.logger)
	h.mu.Lock()
	h.sessions[s.ID] = s
	h.mu.Unlock()
	return s
}

// Close forgets the session with id.
func (h *Hub) Close(id string) {
	h.mu.Lock()
	delete(h.sessions, id)
	h.mu.Unlock()
}

// Len is the number of open sessions.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.sessions)
}

// Handler upgrades the request to a websocket and runs a session for the page
// named by the "path" query parameter until the socket closes.
func (h *Hub) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			h.logger.Warn("websocket upgrade", zap.Error(err))
			return
		}
		defer conn.Close()

		route := section.RouteFor(c.Query("path"))
		s := h.Open(route, func(f Frame) error {
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			return conn.WriteJSON(f)
		})
		defer h.Close(s.ID)

		ctx, cancel := context.WithCancel(h.base)
		defer cancel()

		go func() {
			if err := s.Run(ctx); err != nil {
				h.logger.Debug("session stopped", zap.String("session", s.ID), zap.Error(err))
			}
			// Unblock the read loop when the session stops on its own.
			_ = conn.Close()
		}()
		h.logger.Debug("session opened", zap.String("session", s.ID), zap.String("route", route.Path))

		h.readLoop(ctx, conn, s)

		cancel()
		<-s.Done()
		h.logger.Debug("session closed", zap.String("session", s.ID))
	}
}

func (h *Hub) readLoop(ctx context.Context, conn *websocket.Conn, s *Session) {
	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Debug("websocket read", zap.String("session", s.ID), zap.Error(err))
			}
			return
		}
		msg, err := DecodeMessage(raw)
		if err != nil {
			// The session loop is the only writer, so the error frame is
			// produced there.
			msg = ClientMessage{Type: typeMalformed}
		}
		if !s.Post(ctx, msg) {
			return
		}
	}
}

// Stop ends every running session. Their sockets are closed as the sessions
// unwind.
func (h *Hub) Stop() {
	h.stop()
}

// Status is a small JSON handler exposing the open session count.
func (h *Hub) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sessions": h.Len()})
}

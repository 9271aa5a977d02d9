package transport

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/gridfall/progression/internal/domain"
	"github.com/gridfall/progression/internal/infrastructure/logger"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Handler upgrades game-server connections and tracks live sessions so
// progression events can be pushed back over them.
type Handler struct {
	playerUseCase domain.PlayerUseCase
	logger        *logger.Logger

	mu       sync.Mutex
	sessions map[*Session]bool
}

// NewHandler creates a new transport handler
func NewHandler(playerUseCase domain.PlayerUseCase, log *logger.Logger) *Handler {
	return &Handler{
		playerUseCase: playerUseCase,
		logger:        log,
		sessions:      make(map[*Session]bool),
	}
}

// Serve upgrades the request and runs the session loop until disconnect
func (h *Handler) Serve(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("WebSocket upgrade failed", zap.Error(err))
		return
	}

	session := NewSession(conn, h.playerUseCase, h.logger)
	h.add(session)
	defer h.remove(session)

	h.logger.Info("Game server connected", zap.String("remoteAddr", conn.RemoteAddr().String()))
	session.Run()
}

// Publish implements domain.EventPublisher. Events fan out to every connected
// session; a write failure on one session is logged and does not stop the
// others. With no session connected the event is dropped, delivery is best
// effort by design of the live feed.
func (h *Handler) Publish(event *domain.OutboxEvent) error {
	msg := EventMessage{
		Type: MessageType(event.Type),
		Data: event.Data,
	}

	for _, session := range h.snapshot() {
		if err := session.Send(msg); err != nil {
			h.logger.Warn("Failed to push event to game server",
				zap.String("eventID", event.ID), zap.Error(err))
		}
	}
	return nil
}

func (h *Handler) add(s *Session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sessions[s] = true
}

func (h *Handler) remove(s *Session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.sessions, s)
}

func (h *Handler) snapshot() []*Session {
	h.mu.Lock()
	defer h.mu.Unlock()

	sessions := make([]*Session, 0, len(h.sessions))
	for s := range h.sessions {
		sessions = append(sessions, s)
	}
	return sessions
}

package transport

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/gridfall/progression/internal/domain"
	"github.com/gridfall/progression/internal/infrastructure/logger"
	"go.uber.org/zap"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second
	// Maximum message size allowed from peer.
	maxMessageSize = 4096
)

// Session is one long-lived game-server connection. Incoming frames are
// processed one at a time in arrival order; a bad frame never terminates the
// connection, only a transport-level fault does.
type Session struct {
	conn          *websocket.Conn
	playerUseCase domain.PlayerUseCase
	logger        *logger.Logger
	writeMu       sync.Mutex
}

// NewSession creates a session around an upgraded connection
func NewSession(conn *websocket.Conn, playerUseCase domain.PlayerUseCase, log *logger.Logger) *Session {
	return &Session{
		conn:          conn,
		playerUseCase: playerUseCase,
		logger:        log,
	}
}

// Run reads frames until the connection drops
func (s *Session) Run() {
	defer s.conn.Close()
	s.conn.SetReadLimit(maxMessageSize)

	for {
		_, raw, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Error("Transport connection error", zap.Error(err))
			} else {
				s.logger.Info("Game server disconnected")
			}
			return
		}
		s.handleFrame(raw)
	}
}

// handleFrame dispatches a single incoming frame by its type tag
func (s *Session) handleFrame(raw []byte) {
	var envelope Envelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		s.logger.Warn("Discarding malformed transport frame", zap.Error(err))
		return
	}

	switch envelope.Type {
	case MessageTypeGameResult:
		s.handleGameResult(raw)
	default:
		s.logger.Debug("Ignoring transport frame with unrecognized type",
			zap.String("type", string(envelope.Type)))
	}
}

func (s *Session) handleGameResult(raw []byte) {
	var msg GameResultMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		s.logger.Warn("Discarding malformed game_result frame", zap.Error(err))
		return
	}
	if msg.WinnerID == 0 || msg.LoserID == 0 {
		s.logger.Warn("Discarding game_result frame with missing player ids",
			zap.Int64("winnerID", msg.WinnerID),
			zap.Int64("loserID", msg.LoserID))
		return
	}

	s.logger.Info("Processing game result",
		zap.Int64("winnerID", msg.WinnerID),
		zap.Int64("loserID", msg.LoserID))
	s.playerUseCase.ApplyGameResultByIDs(msg.WinnerID, msg.LoserID)
}

// Send writes a frame to the peer. Safe for concurrent use.
func (s *Session) Send(v interface{}) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return s.conn.WriteJSON(v)
}

package listener

import (
	"context"
	"log/slog"
	"sync"

	"github.com/airstripone/oceania/internal/session"
	"github.com/gorilla/websocket"
)

type ConnectionManager struct {
	sm *session.Manager
}

func NewConnectionManager(sm *session.Manager) *ConnectionManager {
	return &ConnectionManager{
		sm: sm,
	}
}

func (m *ConnectionManager) AcceptConnection(ctx context.Context, conn *websocket.Conn) {
	if err := m.sm.Run(ctx, newWsConn(conn)); err != nil {
		slog.WarnContext(ctx, "player session", "error", err)
	}
}

// wsConn adapts a websocket connection to the session transport.
// Writes are serialized; gorilla permits one concurrent writer only.
type wsConn struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func newWsConn(conn *websocket.Conn) *wsConn {
	return &wsConn{conn: conn}
}

// ReadText returns the next text frame, skipping binary frames.
func (c *wsConn) ReadText() ([]byte, error) {
	for {
		t, data, err := c.conn.ReadMessage()
		if err != nil {
			return nil, err
		}
		if t == websocket.TextMessage {
			return data, nil
		}
	}
}

func (c *wsConn) WriteText(data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteMessage(websocket.TextMessage, data)
}

func (c *wsConn) Close() error {
	return c.conn.Close()
}

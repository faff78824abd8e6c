package remote

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

// Binary message kinds. The first byte of every binary message tags its
// payload; the rest is a PNG encoding.
const (
	// FrameSurface is the visible surface, pushed after any command
	// that changed it.
	FrameSurface byte = 0x01
	// FrameExport is the reply payload of an export command.
	FrameExport byte = 0x02
)

// DefaultUpgrader mirrors the buffer sizing of DefaultDialer-style
// clients. CheckOrigin accepts everything: the daemon binds loopback by
// default and carries no credentials.
var DefaultUpgrader = websocket.Upgrader{
	ReadBufferSize:  8192,
	WriteBufferSize: 8192,
	CheckOrigin:     func(*http.Request) bool { return true },
}

// Server is an http.Handler that runs one drawing session per
// WebSocket connection.
type Server struct {
	width    int
	height   int
	upgrader websocket.Upgrader
	logger   *slog.Logger
	writeTO  time.Duration
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithLogger sets the server's logger. Nil disables logging.
func WithLogger(l *slog.Logger) ServerOption {
	return func(s *Server) { s.logger = l }
}

// WithUpgrader replaces the WebSocket upgrader, e.g. to restrict
// origins or resize buffers.
func WithUpgrader(u websocket.Upgrader) ServerOption {
	return func(s *Server) { s.upgrader = u }
}

// WithWriteTimeout bounds each outgoing message write. Zero means no
// deadline.
func WithWriteTimeout(d time.Duration) ServerOption {
	return func(s *Server) { s.writeTO = d }
}

// NewServer creates a session server whose engines have the given
// surface dimensions.
func NewServer(width, height int, opts ...ServerOption) *Server {
	s := &Server{
		width:    width,
		height:   height,
		upgrader: DefaultUpgrader,
		writeTO:  10 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Server) log(level slog.Level, msg string, args ...any) {
	if s.logger != nil {
		s.logger.Log(context.Background(), level, msg, args...)
	}
}

// ServeHTTP upgrades the request and runs the session loop until the
// client disconnects. Reads and writes both happen on this goroutine,
// so commands execute strictly in arrival order and replies never
// interleave.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log(slog.LevelWarn, "remote: upgrade failed", "err", err)
		return
	}
	defer func() {
		_ = conn.Close()
	}()

	s.log(slog.LevelInfo, "remote: session started", "remote", conn.RemoteAddr().String())
	s.run(conn)
	s.log(slog.LevelInfo, "remote: session ended", "remote", conn.RemoteAddr().String())
}

func (s *Server) run(conn *websocket.Conn) {
	sess := newSession(s.width, s.height)
	var lastRevision uint64

	for {
		kind, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.log(slog.LevelWarn, "remote: read failed", "err", err)
			}
			return
		}
		if kind != websocket.TextMessage {
			continue
		}

		cmd, err := DecodeCommand(data)
		if err != nil {
			if werr := s.writeJSON(conn, Ack{OK: false, Error: err.Error()}); werr != nil {
				return
			}
			continue
		}

		ack, frame, export := sess.apply(cmd)
		if err := s.writeJSON(conn, ack); err != nil {
			return
		}

		if export != nil {
			if err := s.writeBinary(conn, FrameExport, export); err != nil {
				return
			}
		}

		if frame && sess.engine.Revision() != lastRevision {
			lastRevision = sess.engine.Revision()
			png, err := sess.engine.ExportPNG()
			if err != nil {
				s.log(slog.LevelWarn, "remote: frame encode failed", "err", err)
				continue
			}
			if err := s.writeBinary(conn, FrameSurface, png); err != nil {
				return
			}
		}
	}
}

func (s *Server) writeJSON(conn *websocket.Conn, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.deadline(conn)
	return conn.WriteMessage(websocket.TextMessage, data)
}

func (s *Server) writeBinary(conn *websocket.Conn, kind byte, payload []byte) error {
	msg := make([]byte, 1+len(payload))
	msg[0] = kind
	copy(msg[1:], payload)
	s.deadline(conn)
	return conn.WriteMessage(websocket.BinaryMessage, msg)
}

func (s *Server) deadline(conn *websocket.Conn) {
	if s.writeTO > 0 {
		_ = conn.SetWriteDeadline(time.Now().Add(s.writeTO))
	}
}

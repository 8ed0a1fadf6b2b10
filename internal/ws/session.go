package ws

import (
	"context"
	"fmt"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

// Session wraps one client's websocket connection. Exactly one goroutine
// reads from it (the hub's read loop); any number of broadcasts may call
// Send concurrently, serialized by an internal mutex so frames never
// interleave.
type Session struct {
	id           string
	label        string
	ws           *websocket.Conn
	writeTimeout time.Duration

	writeMu sync.Mutex
	dead    atomic.Bool
}

// NewSession wraps an accepted connection. The label identifies the peer in
// user_left broadcasts and logs; callers pass the remote address.
func NewSession(conn *websocket.Conn, label string, writeTimeout time.Duration) *Session {
	return &Session{
		id:           uuid.NewString(),
		label:        label,
		ws:           conn,
		writeTimeout: writeTimeout,
	}
}

func (s *Session) ID() string    { return s.id }
func (s *Session) Label() string { return s.label }

// Send writes payload as one JSON text frame. Writes from distinct Send
// calls reach the client in call order. On a broken connection it marks the
// session dead and returns the error; the caller decides to prune, other
// deliveries are unaffected.
func (s *Session) Send(ctx context.Context, payload any) error {
	if s.dead.Load() {
		return fmt.Errorf("session %s: %w", s.id, net.ErrClosed)
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	wctx, cancel := context.WithTimeout(ctx, s.writeTimeout)
	defer cancel()

	if err := wsjson.Write(wctx, s.ws, payload); err != nil {
		s.dead.Store(true)
		return fmt.Errorf("session %s: write: %w", s.id, err)
	}
	return nil
}

// Read blocks until the next text/binary frame arrives.
// Returns false on disconnect or protocol error; that is the normal end of
// the session's lifecycle, not an application error.
func (s *Session) Read(ctx context.Context) ([]byte, bool) {
	for {
		typ, data, err := s.ws.Read(ctx)
		if err != nil {
			return nil, false
		}
		if typ == websocket.MessageText || typ == websocket.MessageBinary {
			return data, true
		}
	}
}

// Heartbeat pings the peer on a ticker until the context or the connection
// dies. Keeps half-open connections from lingering forever.
func (s *Session) Heartbeat(ctx context.Context, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-t.C:
			pctx, cancel := context.WithTimeout(ctx, interval)
			err := s.ws.Ping(pctx)
			cancel()
			if err != nil {
				return
			}
		case <-ctx.Done():
			return
		}
	}
}

// Close closes the websocket normally.
func (s *Session) Close() error {
	s.dead.Store(true)
	return s.ws.Close(websocket.StatusNormalClosure, "bye")
}

package ws

import (
	"context"
	"log/slog"
	"net/http"

	"nhooyr.io/websocket"

	"github.com/alex-wang101/message-app/internal/app"
	"github.com/alex-wang101/message-app/internal/store"
	"github.com/alex-wang101/message-app/pkg/metrics"
)

// Hub owns the registry, broadcaster, and event router, and drives the
// lifecycle of every websocket session.
type Hub struct {
	log    *slog.Logger
	cfg    app.Config
	reg    *Registry
	bc     *Broadcaster
	router *Router
	store  *store.Memory
}

// NewHub wires registry + broadcaster + router around the message store.
func NewHub(logger *slog.Logger, cfg app.Config, st *store.Memory) *Hub {
	reg := NewRegistry()
	bc := NewBroadcaster(logger, reg)
	return &Hub{
		log:    logger,
		cfg:    cfg,
		reg:    reg,
		bc:     bc,
		router: NewRouter(logger, bc),
		store:  st,
	}
}

// Registry exposes the live set, mainly for tests and introspection.
func (h *Hub) Registry() *Registry { return h.reg }

// Accept upgrades HTTP to websocket (allow all origins)
func Accept(w http.ResponseWriter, r *http.Request) (*websocket.Conn, error) {
	return websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns:  []string{"*"},
		CompressionMode: websocket.CompressionDisabled,
	})
}

// ServeWS handles a new connection on the websocket endpoint: register,
// read frames until disconnect, then unregister and announce the departure.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := Accept(w, r)
	if err != nil {
		h.log.Error("ws.accept", "err", err)
		return
	}
	conn.SetReadLimit(h.cfg.ReadLimit)

	sess := NewSession(conn, r.RemoteAddr, h.cfg.WriteTimeout)
	h.reg.Register(sess)
	metrics.ActiveSessions.Inc()
	h.log.Info("ws.join", "session", sess.ID(), "addr", sess.Label())

	ctx := r.Context()
	go sess.Heartbeat(ctx, h.cfg.PingInterval)

	// Sole reader for this session. A read error or clean close ends the
	// loop; malformed frames are handled inside the router and do not.
	for {
		raw, ok := sess.Read(ctx)
		if !ok {
			break
		}
		h.router.HandleFrame(ctx, raw)
	}

	h.reg.Unregister(sess.ID())
	metrics.ActiveSessions.Dec()
	_ = sess.Close()

	// The read loop is the sole owner of the disconnect, so user_left goes
	// out exactly once per session. Fresh context: the request context may
	// already be canceled at this point.
	h.bc.Publish(context.Background(), newUserLeft(sess.Label()))
	h.log.Info("ws.leave", "session", sess.ID(), "addr", sess.Label())
}

// CreateMessage is the only path that appends to the message store. It
// assigns the next id, persists, then broadcasts the stored record to all
// live sessions as a non-ephemeral message.
func (h *Hub) CreateMessage(ctx context.Context, sender, text string) store.Message {
	msg := h.store.Append(sender, text)
	metrics.MessagesCreated.Inc()
	h.bc.Publish(ctx, newPersistedMessage(msg))
	return msg
}

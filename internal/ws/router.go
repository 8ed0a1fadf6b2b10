package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/alex-wang101/message-app/pkg/metrics"
)

// Router decodes inbound frames into typed events and dispatches them.
// Decode failures are per-frame: the frame is counted and dropped, the
// connection stays open.
type Router struct {
	log *slog.Logger
	bc  *Broadcaster
	now func() time.Time
}

func NewRouter(log *slog.Logger, bc *Broadcaster) *Router {
	return &Router{log: log, bc: bc, now: time.Now}
}

// HandleFrame routes one raw inbound frame from a session.
//
// typing / not_typing are stamped and rebroadcast to everyone, including
// the sender. message frames arriving here are ephemeral: they are relayed
// live but never appended to the store — persistence goes through the HTTP
// create path only.
func (r *Router) HandleFrame(ctx context.Context, raw []byte) {
	var f frame
	if err := json.Unmarshal(raw, &f); err != nil {
		metrics.DroppedFrames.Inc()
		r.log.Debug("router.drop", "err", err)
		return
	}

	switch f.Type {
	case frameTyping, frameNotTyping:
		r.bc.Publish(ctx, TypingBroadcast{Type: f.Type, Sender: f.Sender, Timestamp: r.now().UTC()})
	case frameMessage:
		r.bc.Publish(ctx, newEphemeralMessage(f.Sender, f.Text, r.now().UTC()))
	default:
		metrics.DroppedFrames.Inc()
		r.log.Debug("router.drop", "type", f.Type)
	}
}

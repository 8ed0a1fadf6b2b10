package ws

import (
	"context"
	"log/slog"

	"github.com/alex-wang101/message-app/pkg/metrics"
)

// Broadcaster fans one payload out to every live session. Delivery is
// best-effort and at-most-once per snapshot: a dead peer is pruned, never
// retried, and never blocks delivery to the others.
type Broadcaster struct {
	log *slog.Logger
	reg *Registry
}

func NewBroadcaster(log *slog.Logger, reg *Registry) *Broadcaster {
	return &Broadcaster{log: log, reg: reg}
}

// Publish snapshots the registry and attempts Send on every entry. Send
// failures are handled here — the failing session is unregistered — and are
// never surfaced to the publisher.
func (b *Broadcaster) Publish(ctx context.Context, p Payload) {
	metrics.Broadcasts.WithLabelValues(p.Kind()).Inc()

	for _, peer := range b.reg.Snapshot() {
		if err := peer.Send(ctx, p); err != nil {
			b.reg.Unregister(peer.ID())
			metrics.SendFailures.Inc()
			b.log.Debug("broadcast.prune", "session", peer.ID(), "addr", peer.Label(), "err", err)
		}
	}
}

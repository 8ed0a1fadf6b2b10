package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// ActiveSessions tracks currently connected websocket sessions.
	ActiveSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "chat_active_sessions",
		Help: "Number of live websocket sessions.",
	})

	// MessagesCreated counts messages persisted via the HTTP create path.
	MessagesCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chat_messages_created_total",
		Help: "Messages appended to the message store.",
	})

	// Broadcasts counts publish operations by payload type.
	Broadcasts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chat_broadcasts_total",
		Help: "Broadcast publishes, labeled by payload type.",
	}, []string{"type"})

	// SendFailures counts per-session delivery failures during broadcast.
	SendFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chat_send_failures_total",
		Help: "Failed outbound session writes that caused pruning.",
	})

	// DroppedFrames counts malformed or unrecognized inbound frames.
	DroppedFrames = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chat_dropped_frames_total",
		Help: "Inbound frames dropped by the event router.",
	})
)

// Handler exposes Prometheus metrics at /metrics
func Handler() http.Handler {
	return promhttp.Handler()
}

package httpx

import (
	"log/slog"
	"net/http"

	"github.com/alex-wang101/message-app/internal/app"
	"github.com/alex-wang101/message-app/internal/store"
	"github.com/alex-wang101/message-app/internal/ws"
	"github.com/alex-wang101/message-app/pkg/metrics"
)

// NewRouter wires up all HTTP routes, middleware, and handlers
func NewRouter(cfg app.Config, logger *slog.Logger, hub *ws.Hub, st *store.Memory) http.Handler {
	mw := NewMiddleware(cfg)
	api := &MessagesAPI{Log: logger, Store: st, Hub: hub}

	mux := http.NewServeMux()

	// Greeting / health / metrics
	mux.Handle("/{$}", http.HandlerFunc(api.Greeting))
	mux.Handle("/api/health", http.HandlerFunc(api.Health))
	mux.Handle("/metrics", metrics.Handler())

	// WebSocket endpoint
	mux.Handle("/api/ws", http.HandlerFunc(hub.ServeWS))

	// Messages endpoints
	mux.Handle("/api/messages", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			api.Create(w, r)
			return
		}
		if r.Method == http.MethodGet {
			api.List(w, r)
			return
		}
		http.NotFound(w, r)
	}))

	return mw.Wrap(mux)
}

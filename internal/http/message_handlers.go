package httpx

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/alex-wang101/message-app/internal/store"
	"github.com/alex-wang101/message-app/internal/ws"
)

// MessagesAPI is the thin request surface over the chat core.
type MessagesAPI struct {
	Log   *slog.Logger
	Store *store.Memory
	Hub   *ws.Hub
}

type createMessageReq struct {
	Sender string `json:"sender"`
	Text   string `json:"text"`
}

// List returns every persisted message in append order.
func (a *MessagesAPI) List(w http.ResponseWriter, r *http.Request) {
	msgs := a.Store.All()
	if msgs == nil {
		msgs = []store.Message{}
	}
	writeJSON(w, http.StatusOK, msgs)
}

// Create persists a message and broadcasts it to every live session.
// Ephemeral relay traffic never reaches this handler; it stays on the
// websocket path.
func (a *MessagesAPI) Create(w http.ResponseWriter, r *http.Request) {
	var req createMessageReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Text == "" || req.Sender == "" {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}

	msg := a.Hub.CreateMessage(r.Context(), req.Sender, req.Text)
	writeJSON(w, http.StatusOK, msg)
}

// Greeting serves the root path.
func (a *MessagesAPI) Greeting(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "chat server is running"})
}

// Health is the liveness probe.
func (a *MessagesAPI) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

package httpx

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alex-wang101/message-app/internal/app"
	"github.com/alex-wang101/message-app/internal/store"
	"github.com/alex-wang101/message-app/internal/ws"
)

func newTestServer(t *testing.T) (*httptest.Server, *store.Memory) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := app.Config{
		Env:          "test",
		CORSAllow:    []string{"*"},
		WriteTimeout: time.Second,
		PingInterval: time.Minute,
		ReadLimit:    32768,
	}
	st := store.NewMemory(logger)
	hub := ws.NewHub(logger, cfg, st)
	srv := httptest.NewServer(NewRouter(cfg, logger, hub, st))
	t.Cleanup(srv.Close)
	return srv, st
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(raw))
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func TestCreateMessageRoundTrip(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/messages", map[string]string{"sender": "u", "text": "hi"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var msg store.Message
	decodeBody(t, resp, &msg)
	assert.Equal(t, int64(1), msg.ID)
	assert.Equal(t, "u", msg.Sender)
	assert.Equal(t, "hi", msg.Text)
	assert.False(t, msg.Timestamp.IsZero())
}

func TestListReturnsMessagesInOrder(t *testing.T) {
	srv, _ := newTestServer(t)

	for _, text := range []string{"one", "two"} {
		resp := postJSON(t, srv.URL+"/api/messages", map[string]string{"sender": "u", "text": text})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()
	}

	resp, err := http.Get(srv.URL + "/api/messages")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var msgs []store.Message
	decodeBody(t, resp, &msgs)
	require.Len(t, msgs, 2)
	assert.Equal(t, "one", msgs[0].Text)
	assert.Equal(t, "two", msgs[1].Text)
	assert.Equal(t, int64(1), msgs[0].ID)
	assert.Equal(t, int64(2), msgs[1].ID)
}

func TestListEmptyIsJSONArray(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/messages")
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(raw))
}

func TestCreateRejectsInvalidPayload(t *testing.T) {
	srv, st := newTestServer(t)

	cases := []struct {
		name string
		body any
	}{
		{"missing text", map[string]string{"sender": "u"}},
		{"missing sender", map[string]string{"text": "hi"}},
		{"empty body", map[string]string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := postJSON(t, srv.URL+"/api/messages", tc.body)
			defer resp.Body.Close()
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}

	assert.Equal(t, 0, st.Len())
}

func TestUnsupportedMethodOnMessages(t *testing.T) {
	srv, _ := newTestServer(t)

	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/api/messages", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHealthAndGreeting(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/health")
	require.NoError(t, err)
	var health map[string]string
	decodeBody(t, resp, &health)
	assert.Equal(t, "ok", health["status"])

	resp, err = http.Get(srv.URL + "/")
	require.NoError(t, err)
	var greet map[string]string
	decodeBody(t, resp, &greet)
	assert.NotEmpty(t, greet["message"])
}

func TestCORSHeadersPresent(t *testing.T) {
	srv, _ := newTestServer(t)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/messages", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:3000")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.NotEmpty(t, resp.Header.Get("Access-Control-Allow-Origin"))
}

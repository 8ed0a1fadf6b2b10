package ws

import (
	"time"

	"github.com/alex-wang101/message-app/internal/store"
)

// Inbound frame discriminants. Anything else is dropped by the router.
const (
	frameTyping    = "typing"
	frameNotTyping = "not_typing"
	frameMessage   = "message"
)

// frame is the decoded shape of one inbound client frame.
type frame struct {
	Type   string `json:"type"`
	Sender string `json:"sender"`
	Text   string `json:"text"`
}

// Payload is an outbound broadcast event. Kind is used for logging and
// metrics labels, not for the wire; the wire discriminant is each payload's
// Type field.
type Payload interface {
	Kind() string
}

// PersistedMessage announces a message that was appended to the store.
type PersistedMessage struct {
	Type    string        `json:"type"`
	Message store.Message `json:"message"`
}

func (PersistedMessage) Kind() string { return "message" }

// EphemeralMessage relays a chat message that was sent over the socket
// directly and never touches the store.
type EphemeralMessage struct {
	Type      string    `json:"type"`
	Sender    string    `json:"sender"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
	Ephemeral bool      `json:"ephemeral"`
}

func (EphemeralMessage) Kind() string { return "message_ephemeral" }

// TypingBroadcast carries a typing or not_typing indicator. Type holds the
// original discriminant so both share one shape.
type TypingBroadcast struct {
	Type      string    `json:"type"`
	Sender    string    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}

func (t TypingBroadcast) Kind() string { return t.Type }

// UserLeft tells remaining sessions that a peer disconnected. Sender is the
// session's label (its remote address).
type UserLeft struct {
	Type   string `json:"type"`
	Sender string `json:"sender"`
}

func (UserLeft) Kind() string { return "user_left" }

func newPersistedMessage(msg store.Message) PersistedMessage {
	return PersistedMessage{Type: frameMessage, Message: msg}
}

func newEphemeralMessage(sender, text string, at time.Time) EphemeralMessage {
	return EphemeralMessage{Type: frameMessage, Sender: sender, Text: text, Timestamp: at, Ephemeral: true}
}

func newUserLeft(label string) UserLeft {
	return UserLeft{Type: "user_left", Sender: label}
}

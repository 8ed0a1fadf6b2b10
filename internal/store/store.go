package store

import (
	"log/slog"
	"sync"
	"time"
)

// Memory is the in-process message store. It keeps every message appended
// since startup in arrival order and owns the id sequence. State lives for
// the lifetime of the process only.
type Memory struct {
	log *slog.Logger

	mu     sync.Mutex
	nextID int64
	msgs   []Message
}

// NewMemory returns an empty store. The first message gets id 1.
func NewMemory(log *slog.Logger) *Memory {
	return &Memory{log: log, nextID: 1}
}

// Append creates a message from sender and text, stamps it, assigns the next
// id, and appends it. Safe for concurrent use; two concurrent calls can
// never produce the same id. The id sequence is owned by the store, not
// derived from the slice length.
func (s *Memory) Append(sender, text string) Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg := Message{
		ID:        s.nextID,
		Text:      text,
		Sender:    sender,
		Timestamp: time.Now().UTC(),
	}
	s.nextID++
	s.msgs = append(s.msgs, msg)

	s.log.Debug("store.append", "id", msg.ID, "sender", msg.Sender)
	return msg
}

// All returns a copy of every persisted message in append order.
func (s *Memory) All() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Message, len(s.msgs))
	copy(out, s.msgs)
	return out
}

// Len reports how many messages have been persisted.
func (s *Memory) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.msgs)
}

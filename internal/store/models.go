package store

import "time"

// Message is a persisted chat message. Messages are immutable once created
// and are only ever appended, never updated or deleted.
type Message struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	Sender    string    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}

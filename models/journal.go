package models

import "time"

// JournalKind names the event recorded by a JournalRecord.
type JournalKind string

const (
	JournalEntityCreate  JournalKind = "entity_create"
	JournalEntityUpdate  JournalKind = "entity_update"
	JournalEntityDestroy JournalKind = "entity_destroy"
	JournalAppMessage    JournalKind = "app_message"
)

// JournalRecord is one remote event observed by a synchronizer and
// persisted to the event journal.
type JournalRecord struct {
	ID        int64       `json:"id"`
	Service   string      `json:"service"`
	SessionID string      `json:"session_id"`
	EntityID  string      `json:"entity_id,omitempty"`
	Topic     string      `json:"topic,omitempty"`
	Kind      JournalKind `json:"kind"`
	Sender    string      `json:"sender,omitempty"`
	Revision  uint64      `json:"revision"`
	Payload   []byte      `json:"payload,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}

// JournalFilter narrows a journal listing. Zero fields do not filter.
type JournalFilter struct {
	Service   string
	SessionID string
	Kind      JournalKind
	Limit     uint64
}

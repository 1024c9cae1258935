package events

import (
	"time"

	"github.com/spec-kit/facility-console/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventSessionOpened  EventType = "session_opened"
	EventSessionClosed  EventType = "session_closed"
	EventSessionExpired EventType = "session_expired"
	EventStorageSwept   EventType = "storage_swept"
)

// Event represents a session lifecycle transition.
type Event struct {
	ID        string          `json:"id"`
	Type      EventType       `json:"type"`
	UserType  domain.UserType `json:"user_type"`
	Username  string          `json:"username,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
	Detail    string          `json:"detail,omitempty"`
}

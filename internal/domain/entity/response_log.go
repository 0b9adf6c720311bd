// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Response log actions recorded against an alert.
const (
	ResponseActionAcknowledged = "acknowledged"
	ResponseActionResolved     = "resolved"
	ResponseActionFalseAlarm   = "false_alarm"
	ResponseActionCancelled    = "cancelled"
	ResponseActionEscalated    = "escalated"
)

// ResponseLogEntry is an immutable audit row of a responder (or the system)
// acting on an alert. Entries are never updated or deleted.
type ResponseLogEntry struct {
	ID          uuid.UUID  `json:"id"`
	AlertID     uuid.UUID  `json:"alert_id"`
	ResponderID *uuid.UUID `json:"responder_id,omitempty"` // Nil for system-generated entries.
	Action      string     `json:"action"`
	Notes       string     `json:"notes,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

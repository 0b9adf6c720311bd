// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// EscalationStep is one fired auto-escalation in an incident report timeline.
type EscalationStep struct {
	Level       int       `json:"level"`
	EscalatedAt time.Time `json:"escalated_at"`
}

// IncidentReport is the immutable post-resolution summary of an alert's full
// timeline. It is generated exactly once, on the terminal transition, and
// attached to the alert record.
type IncidentReport struct {
	AlertID       uuid.UUID     `json:"alert_id"`
	InitiatorID   uuid.UUID     `json:"initiator_id"`
	InitiatorType InitiatorType `json:"initiator_type"`
	AlertType     AlertType     `json:"alert_type"`
	Severity      AlertSeverity `json:"severity"`

	FinalStatus AlertStatus `json:"final_status"`
	CreatedAt   time.Time   `json:"created_at"`
	ResolvedAt  time.Time   `json:"resolved_at"`
	// DurationSeconds is the elapsed time between creation and resolution.
	DurationSeconds int64 `json:"duration_seconds"`

	ResponderID     *uuid.UUID `json:"responder_id,omitempty"`
	ResponseTime    *time.Time `json:"response_time,omitempty"`
	ResolvedBy      *uuid.UUID `json:"resolved_by,omitempty"`
	ResolutionNotes string     `json:"resolution_notes,omitempty"`

	EscalationLevel           int              `json:"escalation_level"`
	EscalationTimeline        []EscalationStep `json:"escalation_timeline,omitempty"`
	EmergencyServicesNotified bool             `json:"emergency_services_notified"`
	EmergencyReferenceID      string           `json:"emergency_reference_id,omitempty"`

	LocationHistory []AlertLocation       `json:"location_history"`
	Acknowledgments []AlertAcknowledgment `json:"acknowledgments"`
	Notifications   []AlertNotification   `json:"notifications_sent"`
	ResponseLog     []ResponseLogEntry    `json:"response_log"`

	GeneratedAt time.Time `json:"generated_at"`
}

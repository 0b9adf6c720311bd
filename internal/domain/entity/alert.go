// Package entity contains the core business objects of the project.
package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// AlertType classifies the nature of an SOS alert.
type AlertType string

const (
	AlertTypeMedical    AlertType = "medical"
	AlertTypeAccident   AlertType = "accident"
	AlertTypeThreat     AlertType = "threat"
	AlertTypeMechanical AlertType = "mechanical"
	AlertTypeOther      AlertType = "other"
)

// IsValid checks if the alert type is one of the defined valid types.
func (t AlertType) IsValid() bool {
	switch t {
	case AlertTypeMedical, AlertTypeAccident, AlertTypeThreat, AlertTypeMechanical, AlertTypeOther:
		return true
	default:
		return false
	}
}

// AlertSeverity expresses how urgent an SOS alert is. Severity is fixed at
// creation and drives the escalation and emergency-services policy.
type AlertSeverity string

const (
	SeverityCritical AlertSeverity = "critical"
	SeverityHigh     AlertSeverity = "high"
	SeverityMedium   AlertSeverity = "medium"
	SeverityLow      AlertSeverity = "low"
)

// IsValid checks if the severity is one of the defined valid severities.
func (s AlertSeverity) IsValid() bool {
	switch s {
	case SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow:
		return true
	default:
		return false
	}
}

// Rank orders severities for sorting, critical first.
func (s AlertSeverity) Rank() int {
	switch s {
	case SeverityCritical:
		return 0
	case SeverityHigh:
		return 1
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 3
	default:
		return 4
	}
}

// RequiresEscalation reports whether alerts of this severity get an
// escalation timer chain at creation.
func (s AlertSeverity) RequiresEscalation() bool {
	return s == SeverityCritical || s == SeverityHigh
}

// AlertStatus is the lifecycle state of an SOS alert.
type AlertStatus string

const (
	StatusActive       AlertStatus = "active"
	StatusAcknowledged AlertStatus = "acknowledged"
	StatusResolved     AlertStatus = "resolved"
	StatusFalseAlarm   AlertStatus = "false_alarm"
	StatusCancelled    AlertStatus = "cancelled"
)

// IsTerminal reports whether the status is a terminal sink. Terminal alerts
// never transition again.
func (s AlertStatus) IsTerminal() bool {
	switch s {
	case StatusResolved, StatusFalseAlarm, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsValidResolution reports whether the status is an allowed resolution
// outcome for ResolveAlert.
func (s AlertStatus) IsValidResolution() bool {
	return s.IsTerminal()
}

// InitiatorType identifies which kind of platform user raised the alert.
type InitiatorType string

const (
	InitiatorDriver       InitiatorType = "driver"
	InitiatorContractor   InitiatorType = "contractor"
	InitiatorFleetManager InitiatorType = "fleet_manager"
	InitiatorDispatcher   InitiatorType = "dispatcher"
)

// IsValid checks if the initiator type is one of the defined valid types.
func (t InitiatorType) IsValid() bool {
	switch t {
	case InitiatorDriver, InitiatorContractor, InitiatorFleetManager, InitiatorDispatcher:
		return true
	default:
		return false
	}
}

// GeoPoint is a latitude/longitude fix with optional accuracy and a
// best-effort reverse-geocoded address.
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Accuracy  float64 `json:"accuracy,omitempty"` // Reported GPS accuracy in meters, 0 when unknown.
	Address   string  `json:"address,omitempty"`
}

// AlertLocation is one entry of an alert's append-only location history.
type AlertLocation struct {
	ID         uuid.UUID `json:"id"`
	AlertID    uuid.UUID `json:"alert_id"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Accuracy   float64   `json:"accuracy,omitempty"`
	Address    string    `json:"address,omitempty"`
	RecordedAt time.Time `json:"recorded_at"`
}

// AlertAcknowledgment records a responder accepting an alert.
type AlertAcknowledgment struct {
	ID             uuid.UUID `json:"id"`
	AlertID        uuid.UUID `json:"alert_id"`
	ResponderID    uuid.UUID `json:"responder_id"`
	Action         string    `json:"action"`
	AcknowledgedAt time.Time `json:"acknowledged_at"`
}

// Notification target types recorded on an alert.
const (
	NotifyTargetContact   = "contact"
	NotifyTargetResponder = "responder"
	NotifyTargetInitiator = "initiator"
)

// AlertNotification records one delivered notification for an alert. The
// (alert, type, target) triple is unique; the fanout uses it to skip targets
// that were already contacted.
type AlertNotification struct {
	ID        uuid.UUID `json:"id"`
	AlertID   uuid.UUID `json:"alert_id"`
	NotifType string    `json:"notif_type"` // contact, responder, initiator
	TargetID  string    `json:"target_id"`
	Channel   string    `json:"channel"` // push, sms, email
	SentAt    time.Time `json:"sent_at"`
}

// SOSAlert is the central record of an emergency request and its resolution
// lifecycle.
type SOSAlert struct {
	ID            uuid.UUID     `json:"id"`
	InitiatorID   uuid.UUID     `json:"initiator_id"`
	InitiatorType InitiatorType `json:"initiator_type"`
	JobID         *uuid.UUID    `json:"job_id,omitempty"` // Optional link to the job the initiator was on.
	AlertType     AlertType     `json:"alert_type"`
	Severity      AlertSeverity `json:"severity"`
	Status        AlertStatus   `json:"status"`
	Message       string        `json:"message,omitempty"`
	DeviceInfo    string        `json:"device_info,omitempty"`
	IsTest        bool          `json:"is_test"`

	// Latest known location. Always mirrors the newest location history row.
	Location GeoPoint `json:"location"`

	// EscalationLevel only increases, and only while the alert is active.
	EscalationLevel int        `json:"escalation_level"`
	EscalatedAt     *time.Time `json:"escalated_at,omitempty"`
	// NextEscalationAt is the persisted deadline of the armed timer so a
	// restart can resume the chain instead of dropping it.
	NextEscalationAt *time.Time `json:"next_escalation_at,omitempty"`

	// EmergencyServicesNotified is set at most once and never unset.
	EmergencyServicesNotified bool   `json:"emergency_services_notified"`
	EmergencyReferenceID      string `json:"emergency_reference_id,omitempty"`

	ResponderID     *uuid.UUID `json:"responder_id,omitempty"`
	ResponseTime    *time.Time `json:"response_time,omitempty"`
	ResolvedAt      *time.Time `json:"resolved_at,omitempty"`
	ResolvedBy      *uuid.UUID `json:"resolved_by,omitempty"`
	ResolutionNotes string     `json:"resolution_notes,omitempty"`

	// IncidentReport is the immutable post-resolution summary, serialized
	// once on the terminal transition.
	IncidentReport json.RawMessage `json:"incident_report,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Loaded on demand, not on every fetch.
	LocationHistory []AlertLocation       `json:"location_history,omitempty"`
	Acknowledgments []AlertAcknowledgment `json:"acknowledgments,omitempty"`
	Notifications   []AlertNotification   `json:"notifications_sent,omitempty"`
}

// CanAcknowledge reports whether AcknowledgeAlert is a legal transition.
func (a *SOSAlert) CanAcknowledge() bool {
	return a.Status == StatusActive
}

// CanResolve reports whether ResolveAlert is a legal transition.
func (a *SOSAlert) CanResolve() bool {
	return !a.Status.IsTerminal()
}

package usecase

import (
	"context"

	"beacon/internal/domain/entity"

	"github.com/google/uuid"
)

// TriggerAlertInput carries everything needed to raise a new SOS alert.
type TriggerAlertInput struct {
	InitiatorID   uuid.UUID
	InitiatorType entity.InitiatorType
	JobID         *uuid.UUID
	AlertType     entity.AlertType
	Severity      entity.AlertSeverity
	Message       string
	DeviceInfo    string
	IsTest        bool
	Latitude      float64
	Longitude     float64
	Accuracy      float64
}

// ResolveAlertInput carries the terminal transition parameters.
type ResolveAlertInput struct {
	AlertID    uuid.UUID
	Resolution entity.AlertStatus
	ResolvedBy *uuid.UUID
	Notes      string
}

// LocationUpdateInput carries a location fix for an open alert.
type LocationUpdateInput struct {
	AlertID   uuid.UUID
	Latitude  float64
	Longitude float64
	Accuracy  float64
}

// TriggerAlertResult is the outcome of raising an alert: the persisted alert
// plus the responders paged for it.
type TriggerAlertResult struct {
	Alert      *entity.SOSAlert
	Responders []*entity.NearbyResponder
}

// SystemTestResult summarizes a dry run of the SOS pipeline.
type SystemTestResult struct {
	AlertID          uuid.UUID `json:"alert_id"`
	ContactsNotified int       `json:"contacts_notified"`
	Passed           bool      `json:"passed"`
	Issues           []string  `json:"issues,omitempty"`
}

// SOSUsecase defines the interface for the alert lifecycle use cases.
type SOSUsecase interface {
	// TriggerAlert raises a new alert, fans out notifications and arms the
	// escalation chain for severities that require it.
	TriggerAlert(ctx context.Context, input TriggerAlertInput) (*TriggerAlertResult, error)

	// AcknowledgeAlert moves an active alert to acknowledged and stops the
	// escalation chain. Exactly one responder wins a concurrent race.
	AcknowledgeAlert(ctx context.Context, alertID, responderID uuid.UUID) (*entity.SOSAlert, error)

	// ResolveAlert moves a non-terminal alert to a terminal status and
	// generates the immutable incident report.
	ResolveAlert(ctx context.Context, input ResolveAlertInput) (*entity.SOSAlert, error)

	// UpdateAlertLocation appends a location fix to an open alert.
	UpdateAlertLocation(ctx context.Context, input LocationUpdateInput) error

	// GetAlert returns one alert with its histories loaded.
	GetAlert(ctx context.Context, alertID uuid.UUID) (*entity.SOSAlert, error)

	// GetActiveAlerts returns all open alerts for the operations dashboard,
	// most urgent first.
	GetActiveAlerts(ctx context.Context) ([]*entity.SOSAlert, error)

	// GetAlertHistory returns a user's most recent alerts.
	GetAlertHistory(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.SOSAlert, error)

	// TestSOSSystem runs an end-to-end dry run: raises a test alert,
	// messages the user's contacts and auto-resolves.
	TestSOSSystem(ctx context.Context, userID uuid.UUID) (*SystemTestResult, error)

	// ResumeEscalations re-arms timer chains for alerts that were active
	// when the previous process stopped.
	ResumeEscalations(ctx context.Context) error
}

// ResponderLocator finds and ranks the nearest available responders for an
// alert location.
type ResponderLocator interface {
	// FindNearbyResponders returns up to limit responders within radiusMiles,
	// nearest first, each with a straight-line distance and ETA estimate.
	FindNearbyResponders(ctx context.Context, lat, lng, radiusMiles float64, limit int) ([]*entity.NearbyResponder, error)
}

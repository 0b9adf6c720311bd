// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"beacon/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for alert persistence.
var (
	// ErrAlertNotFound is returned when an alert is not found.
	ErrAlertNotFound = errors.New("alert not found")
	// ErrStaleTransition is returned when a conditional status update matched
	// no row because the alert moved on concurrently.
	ErrStaleTransition = errors.New("alert status changed concurrently")
)

// AcknowledgeUpdate carries the fields written when an alert is acknowledged.
type AcknowledgeUpdate struct {
	ResponderID  uuid.UUID
	ResponseTime time.Time
}

// ResolveUpdate carries the fields written on a terminal transition.
type ResolveUpdate struct {
	Status     entity.AlertStatus
	ResolvedAt time.Time
	ResolvedBy *uuid.UUID
	Notes      string
}

// AlertRepository defines the interface for SOS alert database operations.
// Status transitions are conditional updates: they only apply when the alert
// is still in the expected source state, which is what closes the race
// between lifecycle calls and a firing escalation timer.
type AlertRepository interface {
	// CreateAlert persists a new alert together with its first location
	// history row.
	CreateAlert(ctx context.Context, alert *entity.SOSAlert) error

	// FindAlertByID retrieves an alert by its unique ID.
	FindAlertByID(ctx context.Context, id uuid.UUID) (*entity.SOSAlert, error)

	// FindActiveAlerts retrieves all non-terminal alerts sorted by severity
	// (critical first) then creation time descending.
	FindActiveAlerts(ctx context.Context) ([]*entity.SOSAlert, error)

	// FindAlertsByInitiator retrieves the most recent alerts raised by a user.
	FindAlertsByInitiator(ctx context.Context, initiatorID uuid.UUID, limit int) ([]*entity.SOSAlert, error)

	// FindAlertsWithPendingEscalation retrieves active alerts whose persisted
	// escalation deadline is set, for resuming timer chains after a restart.
	FindAlertsWithPendingEscalation(ctx context.Context) ([]*entity.SOSAlert, error)

	// Acknowledge conditionally moves an alert from active to acknowledged.
	// Returns ErrStaleTransition when the alert is no longer active.
	Acknowledge(ctx context.Context, id uuid.UUID, update AcknowledgeUpdate) error

	// Resolve conditionally moves a non-terminal alert to a terminal status.
	// Returns ErrStaleTransition when the alert is already terminal.
	Resolve(ctx context.Context, id uuid.UUID, update ResolveUpdate) error

	// AdvanceEscalation increments the escalation level by one, but only if
	// the alert is still active and at the expected level (compare-and-set).
	// Returns ErrStaleTransition when the condition no longer holds.
	AdvanceEscalation(ctx context.Context, id uuid.UUID, expectedLevel int, escalatedAt time.Time, nextDeadline *time.Time) error

	// SetNextEscalation persists the deadline of the armed timer; a nil
	// deadline clears it.
	SetNextEscalation(ctx context.Context, id uuid.UUID, deadline *time.Time) error

	// MarkEmergencyServicesNotified sets the notified flag and reference id.
	// The flag is set at most once; later calls are no-ops.
	MarkEmergencyServicesNotified(ctx context.Context, id uuid.UUID, referenceID string) error

	// AppendLocation appends one location history row and updates the
	// alert's current location columns.
	AppendLocation(ctx context.Context, location *entity.AlertLocation) error

	// AppendAcknowledgment appends one acknowledgment row.
	AppendAcknowledgment(ctx context.Context, ack *entity.AlertAcknowledgment) error

	// AppendNotification records a sent notification. Returns false without
	// error when the (alert, type, target) triple was already recorded, which
	// makes re-entrant fanout idempotent.
	AppendNotification(ctx context.Context, notification *entity.AlertNotification) (bool, error)

	// RemoveNotification deletes a recorded notification so the target can be
	// retried. Used when every delivery channel failed after the record was
	// reserved. Removing an absent triple is a no-op.
	RemoveNotification(ctx context.Context, alertID uuid.UUID, notifType, targetID string) error

	// FindLocationHistory returns the append-only location history in order.
	FindLocationHistory(ctx context.Context, alertID uuid.UUID) ([]entity.AlertLocation, error)

	// FindAcknowledgments returns acknowledgment rows in order.
	FindAcknowledgments(ctx context.Context, alertID uuid.UUID) ([]entity.AlertAcknowledgment, error)

	// FindNotifications returns recorded notifications in order.
	FindNotifications(ctx context.Context, alertID uuid.UUID) ([]entity.AlertNotification, error)

	// SaveIncidentReport attaches the serialized incident report to the
	// alert. Overwrites any previous value.
	SaveIncidentReport(ctx context.Context, id uuid.UUID, report json.RawMessage) error
}

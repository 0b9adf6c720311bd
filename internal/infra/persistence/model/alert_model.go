package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SOSAlertModel is the GORM-specific struct for the 'sos_alerts' table.
// It is the durable record of an alert's lifecycle; append-only collections
// (locations, acknowledgments, notifications) live in their own tables.
type SOSAlertModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	InitiatorID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	InitiatorType string     `gorm:"type:varchar(50);not null"`
	JobID         *uuid.UUID `gorm:"type:uuid"`
	AlertType     string     `gorm:"type:varchar(50);not null"`
	Severity      string     `gorm:"type:varchar(20);not null;index"`
	Status        string     `gorm:"type:varchar(20);not null;index"`
	Message       string     `gorm:"type:text"`
	DeviceInfo    string     `gorm:"type:text"`
	IsTest        bool       `gorm:"not null;default:false"`

	Latitude  float64 `gorm:"not null"`
	Longitude float64 `gorm:"not null"`
	Accuracy  float64
	Address   string `gorm:"type:text"`

	EscalationLevel  int `gorm:"not null;default:0"`
	EscalatedAt      *time.Time
	NextEscalationAt *time.Time `gorm:"index"`

	EmergencyServicesNotified bool   `gorm:"not null;default:false"`
	EmergencyReferenceID      string `gorm:"type:varchar(255)"`

	ResponderID     *uuid.UUID `gorm:"type:uuid"`
	ResponseTime    *time.Time
	ResolvedAt      *time.Time
	ResolvedBy      *uuid.UUID `gorm:"type:uuid"`
	ResolutionNotes string     `gorm:"type:text"`

	IncidentReport []byte `gorm:"type:jsonb"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (SOSAlertModel) TableName() string {
	return "sos_alerts"
}

// AlertLocationModel is the GORM-specific struct for the
// 'sos_alert_locations' table. Rows are append-only; the newest row always
// matches the alert's current location columns.
type AlertLocationModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AlertID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Latitude   float64   `gorm:"not null"`
	Longitude  float64   `gorm:"not null"`
	Accuracy   float64
	Address    string    `gorm:"type:text"`
	RecordedAt time.Time `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (AlertLocationModel) TableName() string {
	return "sos_alert_locations"
}

// AlertAcknowledgmentModel is the GORM-specific struct for the
// 'sos_alert_acknowledgments' table.
type AlertAcknowledgmentModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AlertID        uuid.UUID `gorm:"type:uuid;not null;index"`
	ResponderID    uuid.UUID `gorm:"type:uuid;not null"`
	Action         string    `gorm:"type:varchar(50);not null"`
	AcknowledgedAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (AlertAcknowledgmentModel) TableName() string {
	return "sos_alert_acknowledgments"
}

// AlertNotificationModel is the GORM-specific struct for the
// 'sos_alert_notifications' table. The unique index over
// (alert_id, notif_type, target_id) is what makes fanout idempotent.
type AlertNotificationModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AlertID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_alert_notif_target"`
	NotifType string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_alert_notif_target"`
	TargetID  string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_alert_notif_target"`
	Channel   string    `gorm:"type:varchar(20);not null"`
	SentAt    time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (AlertNotificationModel) TableName() string {
	return "sos_alert_notifications"
}

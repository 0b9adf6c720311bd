// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationPreference selects which channels an emergency contact is
// reached on when an alert fires.
type NotificationPreference string

const (
	PreferenceAll   NotificationPreference = "all"
	PreferenceEmail NotificationPreference = "email"
	PreferenceSMS   NotificationPreference = "sms"
)

// IsValid checks if the preference is one of the defined valid preferences.
func (p NotificationPreference) IsValid() bool {
	switch p {
	case PreferenceAll, PreferenceEmail, PreferenceSMS:
		return true
	default:
		return false
	}
}

// Channels expands the preference into concrete channel names.
func (p NotificationPreference) Channels() []string {
	switch p {
	case PreferenceEmail:
		return []string{"email"}
	case PreferenceSMS:
		return []string{"sms"}
	default:
		return []string{"email", "sms"}
	}
}

// EmergencyContact is a user-designated person to notify when that user
// triggers an SOS alert. At most one contact per user is primary.
type EmergencyContact struct {
	ID                     uuid.UUID              `json:"id"`
	UserID                 uuid.UUID              `json:"user_id"`
	Name                   string                 `json:"name"`
	Relationship           string                 `json:"relationship,omitempty"`
	Phone                  string                 `json:"phone"`
	Email                  string                 `json:"email,omitempty"`
	IsPrimary              bool                   `json:"is_primary"`
	NotificationPreference NotificationPreference `json:"notification_preference"`
	AutoNotifyOnSOS        bool                   `json:"auto_notify_on_sos"`
	CreatedAt              time.Time              `json:"created_at"`
	UpdatedAt              time.Time              `json:"updated_at"`
}

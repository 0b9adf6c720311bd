package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmergencyContactModel is the GORM-specific struct for the
// 'emergency_contacts' table.
type EmergencyContactModel struct {
	ID                     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID                 uuid.UUID `gorm:"type:uuid;not null;index"`
	Name                   string    `gorm:"type:varchar(255);not null"`
	Relationship           string    `gorm:"type:varchar(100)"`
	Phone                  string    `gorm:"type:varchar(50);not null"`
	Email                  string    `gorm:"type:varchar(255)"`
	IsPrimary              bool      `gorm:"not null;default:false"`
	NotificationPreference string    `gorm:"type:varchar(20);not null;default:'all'"`
	AutoNotifyOnSOS        bool      `gorm:"column:auto_notify_on_sos;not null;default:true"`
	CreatedAt              time.Time
	UpdatedAt              time.Time
	DeletedAt              gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (EmergencyContactModel) TableName() string {
	return "emergency_contacts"
}

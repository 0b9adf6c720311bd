package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ResponderProfileModel is the GORM-specific struct for the
// 'responder_profiles' table. The location column is maintained by the
// marketplace's location pipeline; this service only reads it.
type ResponderProfileModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Phone       string    `gorm:"type:varchar(50)"`
	Latitude    float64   `gorm:"not null"`
	Longitude   float64   `gorm:"not null"`
	IsAvailable bool      `gorm:"not null;default:false;index"`
	LastSeenAt  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ResponderProfileModel) TableName() string {
	return "responder_profiles"
}

// ResponderDeviceModel is the GORM-specific struct for the
// 'responder_devices' table holding push registration tokens.
type ResponderDeviceModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ResponderID uuid.UUID `gorm:"type:uuid;not null;index"`
	FCMToken    string    `gorm:"column:fcm_token;type:text;not null"`
	IsActive    bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ResponderDeviceModel) TableName() string {
	return "responder_devices"
}

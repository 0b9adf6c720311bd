package model

import (
	"time"

	"github.com/google/uuid"
)

// ResponseLogModel is the GORM-specific struct for the 'sos_response_logs'
// table. Rows are immutable audit entries; there is no soft delete.
type ResponseLogModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AlertID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	ResponderID *uuid.UUID `gorm:"type:uuid"`
	Action      string     `gorm:"type:varchar(50);not null"`
	Notes       string     `gorm:"type:text"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ResponseLogModel) TableName() string {
	return "sos_response_logs"
}

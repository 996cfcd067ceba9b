package models

import (
	"time"

	"github.com/warden-inc/warden/internal/shared/constants"
)

// SessionModel is the single liveness row kept per account.
type SessionModel struct {
	AccountID    uint    `gorm:"primaryKey;autoIncrement:false"`
	SessionToken *string `gorm:"type:text"`
	IsActive     bool    `gorm:"not null;default:false"`
	LastLogin    time.Time
}

// TableName specifies the table name for GORM
func (SessionModel) TableName() string {
	return constants.TableSessions
}

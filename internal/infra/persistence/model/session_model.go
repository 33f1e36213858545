package model

import (
	"time"

	"gorm.io/datatypes"
)

// SessionModel mirrors the 'sessions' table the external identity provider
// stores its server-side sessions in. The service only declares and
// migrates it; the payload is opaque.
type SessionModel struct {
	SID    string         `gorm:"column:sid;type:varchar(255);primaryKey"`
	Sess   datatypes.JSON `gorm:"column:sess;type:jsonb;not null"`
	Expire time.Time      `gorm:"column:expire;not null;index:idx_session_expire"`
}

// TableName explicitly sets the table name for GORM.
func (SessionModel) TableName() string {
	return "sessions"
}

package models

import (
	"time"

	"gorm.io/datatypes"
)

// SyncEvent is written in the same transaction as every session mutation.
// Its token lets the change-sync layer confirm that a given write has landed.
type SyncEvent struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	SessionID uint           `gorm:"not null;index" json:"session_id"`
	Token     string         `gorm:"size:36;uniqueIndex;not null" json:"token"`
	Type      string         `gorm:"size:64;not null" json:"type"`
	Payload   datatypes.JSON `json:"payload,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

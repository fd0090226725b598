package models

import "time"

type Player struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	PublicID    string    `gorm:"size:36;uniqueIndex;not null" json:"player_id"`
	SessionID   uint      `gorm:"not null;index" json:"session_id"`
	DisplayName string    `gorm:"size:50;not null" json:"display_name"`
	Score       int       `gorm:"not null;default:0" json:"score"`
	IsConnected bool      `gorm:"not null;default:true" json:"is_connected"`
	JoinedAt    time.Time `json:"joined_at"`
	LastSeenAt  time.Time `json:"last_seen_at"`
}

const (
	MinDisplayNameLength = 3
	MaxDisplayNameLength = 50
)

package models

import "time"

type GameSession struct {
	ID                   uint           `gorm:"primaryKey" json:"id"`
	Slug                 string         `gorm:"size:120;uniqueIndex;not null" json:"slug"`
	BankID               uint           `gorm:"not null;index" json:"bank_id"`
	Bank                 QuestionBank   `gorm:"foreignKey:BankID" json:"bank,omitempty"`
	AdminID              uint           `gorm:"not null;index" json:"admin_id"`
	Status               string         `gorm:"size:20;not null;default:'lobby'" json:"status"`
	CurrentQuestionID    *uint          `json:"current_question_id,omitempty"`
	RoundStartedAt       *time.Time     `json:"round_started_at,omitempty"`
	RoundDurationSeconds int            `gorm:"not null;default:30" json:"round_duration_seconds"`
	WinnerPlayerID       *uint          `json:"winner_player_id,omitempty"`
	Players              []Player       `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE" json:"players,omitempty"`
	UsedQuestions        []UsedQuestion `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt            time.Time      `json:"created_at"`
	EndedAt              *time.Time     `json:"ended_at,omitempty"`
}

const (
	SessionStatusLobby     = "lobby"
	SessionStatusActive    = "active"
	SessionStatusRevealing = "revealing"
	SessionStatusEnded     = "ended"
)

const (
	MinRoundDurationSeconds     = 10
	MaxRoundDurationSeconds     = 120
	DefaultRoundDurationSeconds = 30
)

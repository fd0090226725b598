package models

import (
	"time"

	"gorm.io/datatypes"
)

type PlayerResponse struct {
	ID                uint                      `gorm:"primaryKey" json:"id"`
	PlayerID          uint                      `gorm:"not null;uniqueIndex:idx_response_player_question" json:"player_id"`
	SessionID         uint                      `gorm:"not null;index" json:"session_id"`
	QuestionID        uint                      `gorm:"not null;uniqueIndex:idx_response_player_question" json:"question_id"`
	SelectedOptionIDs datatypes.JSONSlice[uint] `json:"selected_option_ids"`
	IsCorrect         bool                      `gorm:"not null" json:"is_correct"`
	PointsEarned      int                       `gorm:"not null" json:"points_earned"`
	SubmittedAt       time.Time                 `json:"submitted_at"`
}

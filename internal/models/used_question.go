package models

import "time"

// UsedQuestion records one question draw in a session. The composite unique
// index rejects a double-draw of the same question under concurrent calls.
type UsedQuestion struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	SessionID     uint      `gorm:"not null;uniqueIndex:idx_used_session_question;index" json:"session_id"`
	QuestionID    uint      `gorm:"not null;uniqueIndex:idx_used_session_question" json:"question_id"`
	QuestionOrder int       `gorm:"not null" json:"question_order"`
	AskedAt       time.Time `gorm:"not null" json:"asked_at"`
}

package models

import "time"

type Question struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	BankID      uint           `gorm:"not null;index" json:"bank_id"`
	Text        string         `gorm:"type:text;not null" json:"text"`
	Type        string         `gorm:"size:10;not null;default:'single'" json:"type"`
	ImageData   []byte         `gorm:"type:bytea" json:"-"`
	ImageMime   string         `gorm:"size:64" json:"image_mime,omitempty"`
	Explanation string         `gorm:"type:text" json:"explanation,omitempty"`
	Options     []AnswerOption `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"options,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

const (
	QuestionTypeSingle = "single"
	QuestionTypeMulti  = "multi"
)

const (
	MinAnswerOptions = 2
	MaxAnswerOptions = 6
)

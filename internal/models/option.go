package models

type AnswerOption struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	QuestionID   uint   `gorm:"not null;index" json:"question_id"`
	Text         string `gorm:"size:500;not null" json:"text"`
	IsCorrect    bool   `gorm:"not null;default:false" json:"is_correct"`
	DisplayOrder int    `gorm:"not null;default:0" json:"display_order"`
}

package services

import (
	"fmt"
	"testing"

	"github.com/KyleAMathews/group-question-game/internal/database"
	"github.com/KyleAMathews/group-question-game/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testDB opens a fresh in-memory database per test. The pool is pinned to a
// single connection because every :memory: connection is its own database.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap database: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(database.Models()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedAdmin(t *testing.T, db *gorm.DB, username string) models.Admin {
	t.Helper()
	admin := models.Admin{Username: username, PasswordHash: "unused"}
	if err := db.Create(&admin).Error; err != nil {
		t.Fatalf("seed admin: %v", err)
	}
	return admin
}

// seedBank creates a bank of single-choice questions with four options each,
// the first option being the correct one.
func seedBank(t *testing.T, db *gorm.DB, questions int) models.QuestionBank {
	t.Helper()
	bank := models.QuestionBank{Name: "General Knowledge"}
	if err := db.Create(&bank).Error; err != nil {
		t.Fatalf("seed bank: %v", err)
	}
	for i := 0; i < questions; i++ {
		q := models.Question{
			BankID: bank.ID,
			Text:   fmt.Sprintf("Question %d", i+1),
			Type:   models.QuestionTypeSingle,
		}
		if err := db.Create(&q).Error; err != nil {
			t.Fatalf("seed question: %v", err)
		}
		for j := 0; j < 4; j++ {
			opt := models.AnswerOption{
				QuestionID:   q.ID,
				Text:         fmt.Sprintf("Option %d", j+1),
				IsCorrect:    j == 0,
				DisplayOrder: j,
			}
			if err := db.Create(&opt).Error; err != nil {
				t.Fatalf("seed option: %v", err)
			}
		}
	}
	return bank
}

// seedMultiQuestion appends a multi-select question with two correct and two
// incorrect options to the bank.
func seedMultiQuestion(t *testing.T, db *gorm.DB, bankID uint) models.Question {
	t.Helper()
	q := models.Question{BankID: bankID, Text: "Pick all that apply", Type: models.QuestionTypeMulti}
	if err := db.Create(&q).Error; err != nil {
		t.Fatalf("seed multi question: %v", err)
	}
	for j := 0; j < 4; j++ {
		opt := models.AnswerOption{
			QuestionID:   q.ID,
			Text:         fmt.Sprintf("Choice %d", j+1),
			IsCorrect:    j < 2,
			DisplayOrder: j,
		}
		if err := db.Create(&opt).Error; err != nil {
			t.Fatalf("seed option: %v", err)
		}
	}
	return q
}

// optionIDs returns a question's option ids filtered by correctness.
func optionIDs(t *testing.T, db *gorm.DB, questionID uint, correct bool) []uint {
	t.Helper()
	var ids []uint
	if err := db.Model(&models.AnswerOption{}).
		Where("question_id = ? AND is_correct = ?", questionID, correct).
		Order("display_order ASC").
		Pluck("id", &ids).Error; err != nil {
		t.Fatalf("load options: %v", err)
	}
	if len(ids) == 0 {
		t.Fatalf("question %d has no options with is_correct=%v", questionID, correct)
	}
	return ids
}

func currentQuestion(t *testing.T, db *gorm.DB, sessionID uint) uint {
	t.Helper()
	var session models.GameSession
	if err := db.First(&session, sessionID).Error; err != nil {
		t.Fatalf("load session: %v", err)
	}
	if session.CurrentQuestionID == nil {
		t.Fatalf("session %d has no current question", sessionID)
	}
	return *session.CurrentQuestionID
}

func sessionStatus(t *testing.T, db *gorm.DB, sessionID uint) string {
	t.Helper()
	var session models.GameSession
	if err := db.First(&session, sessionID).Error; err != nil {
		t.Fatalf("load session: %v", err)
	}
	return session.Status
}

package database

import (
	"fmt"
	"log"

	"github.com/KyleAMathews/group-question-game/internal/config"
	"github.com/KyleAMathews/group-question-game/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(cfg *config.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	log.Println("database connected")
	return db
}

func AutoMigrate(db *gorm.DB) {
	if err := db.AutoMigrate(Models()...); err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}
	log.Println("database migrated")
}

// Models lists every persisted type in migration order; shared with the
// test helpers so the test schema cannot drift from production.
func Models() []interface{} {
	return []interface{}{
		&models.Admin{},
		&models.QuestionBank{},
		&models.Question{},
		&models.AnswerOption{},
		&models.GameSession{},
		&models.UsedQuestion{},
		&models.Player{},
		&models.PlayerResponse{},
		&models.SyncEvent{},
	}
}

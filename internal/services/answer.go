package services

import (
	"errors"
	"time"

	"github.com/KyleAMathews/group-question-game/internal/apperr"
	"github.com/KyleAMathews/group-question-game/internal/game"
	"github.com/KyleAMathews/group-question-game/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AnswerService struct {
	db *gorm.DB
}

func NewAnswerService(db *gorm.DB) *AnswerService {
	return &AnswerService{db: db}
}

// Submit records a player's answer for the current round. The whole operation
// runs in one transaction: the response row, the score update and, when this
// was the last outstanding answer, the flip to revealing all land together or
// not at all.
func (s *AnswerService) Submit(playerPublicID string, sessionID, questionID uint, selectedOptionIDs []uint) (*SubmitResult, error) {
	var result SubmitResult
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var session models.GameSession
		if err := tx.First(&session, sessionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("session not found")
			}
			return err
		}
		if session.Status != models.SessionStatusActive {
			return apperr.InvalidState("session is not accepting answers")
		}
		if session.CurrentQuestionID == nil || *session.CurrentQuestionID != questionID {
			return apperr.InvalidState("that question is no longer current")
		}

		var player models.Player
		if err := tx.Where("public_id = ? AND session_id = ?", playerPublicID, sessionID).First(&player).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("player not found in this session")
			}
			return err
		}

		var existing int64
		if err := tx.Model(&models.PlayerResponse{}).
			Where("player_id = ? AND question_id = ?", player.ID, questionID).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return apperr.Conflict("answer already submitted for this question")
		}

		var question models.Question
		if err := tx.Preload("Options").First(&question, questionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("question not found")
			}
			return err
		}

		selected := dedupe(selectedOptionIDs)
		valid := make(map[uint]bool, len(question.Options))
		var correctIDs []uint
		for _, o := range question.Options {
			valid[o.ID] = true
			if o.IsCorrect {
				correctIDs = append(correctIDs, o.ID)
			}
		}
		for _, id := range selected {
			if !valid[id] {
				return apperr.InvalidInput("selected option does not belong to the current question")
			}
		}

		points := game.Score(question.Type, correctIDs, selected)
		correct := game.FullyCorrect(question.Type, correctIDs, selected)

		response := models.PlayerResponse{
			PlayerID:          player.ID,
			SessionID:         sessionID,
			QuestionID:        questionID,
			SelectedOptionIDs: datatypes.JSONSlice[uint](selected),
			IsCorrect:         correct,
			PointsEarned:      points,
			SubmittedAt:       time.Now().UTC(),
		}
		if err := tx.Create(&response).Error; err != nil {
			// unique (player_id, question_id) lost to a concurrent submit
			return apperr.Conflict("answer already submitted for this question")
		}

		if err := tx.Model(&models.Player{}).Where("id = ?", player.ID).
			Update("score", gorm.Expr("score + ?", points)).Error; err != nil {
			return err
		}

		var connected int64
		if err := tx.Model(&models.Player{}).
			Where("session_id = ? AND is_connected = ?", sessionID, true).
			Count(&connected).Error; err != nil {
			return err
		}
		var responses int64
		if err := tx.Model(&models.PlayerResponse{}).
			Where("session_id = ? AND question_id = ?", sessionID, questionID).
			Count(&responses).Error; err != nil {
			return err
		}

		allAnswered := responses >= connected
		if allAnswered {
			// Guarded so two final submitters cannot both flip; losing the
			// race is fine, the round is revealed either way.
			res := tx.Model(&models.GameSession{}).
				Where("id = ? AND status = ?", sessionID, models.SessionStatusActive).
				Update("status", models.SessionStatusRevealing)
			if res.Error != nil {
				return res.Error
			}
		}

		token, err := recordSync(tx, sessionID, EventAnswerSubmitted, map[string]interface{}{
			"player_id":    player.ID,
			"question_id":  questionID,
			"all_answered": allAnswered,
		})
		if err != nil {
			return err
		}

		result = SubmitResult{
			Response:    response,
			Points:      points,
			TotalScore:  player.Score + points,
			AllAnswered: allAnswered,
			SyncToken:   token,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// RoundStats reports how a question went: how many answered and what share
// got it fully right.
func (s *AnswerService) RoundStats(sessionID, questionID uint) (*RoundStats, error) {
	var asked int64
	if err := s.db.Model(&models.UsedQuestion{}).
		Where("session_id = ? AND question_id = ?", sessionID, questionID).
		Count(&asked).Error; err != nil {
		return nil, err
	}
	if asked == 0 {
		return nil, apperr.NotFound("question was not asked in this session")
	}

	var total, correct int64
	if err := s.db.Model(&models.PlayerResponse{}).
		Where("session_id = ? AND question_id = ?", sessionID, questionID).
		Count(&total).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.PlayerResponse{}).
		Where("session_id = ? AND question_id = ? AND is_correct = ?", sessionID, questionID, true).
		Count(&correct).Error; err != nil {
		return nil, err
	}

	stats := &RoundStats{
		QuestionID:     questionID,
		ResponseCount:  int(total),
		CorrectCount:   int(correct),
		PercentCorrect: 0,
	}
	if total > 0 {
		stats.PercentCorrect = float64(correct) / float64(total) * 100
	}
	return stats, nil
}

// MyResponse returns the player's own submission for a question, so a
// reloaded client can restore what it picked.
func (s *AnswerService) MyResponse(playerPublicID string, questionID uint) (*models.PlayerResponse, error) {
	var player models.Player
	if err := s.db.Where("public_id = ?", playerPublicID).First(&player).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("player not found")
		}
		return nil, err
	}

	var response models.PlayerResponse
	if err := s.db.Where("player_id = ? AND question_id = ?", player.ID, questionID).First(&response).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("no response recorded for this question")
		}
		return nil, err
	}
	return &response, nil
}

// dedupe drops repeated option ids while keeping submission order, so a
// double-tapped option counts once.
func dedupe(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

type SubmitResult struct {
	Response    models.PlayerResponse `json:"response"`
	Points      int                   `json:"points"`
	TotalScore  int                   `json:"total_score"`
	AllAnswered bool                  `json:"all_answered"`
	SyncToken   string                `json:"sync_token"`
}

type RoundStats struct {
	QuestionID     uint    `json:"question_id"`
	ResponseCount  int     `json:"response_count"`
	CorrectCount   int     `json:"correct_count"`
	PercentCorrect float64 `json:"percent_correct"`
}

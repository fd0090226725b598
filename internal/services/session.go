package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/KyleAMathews/group-question-game/internal/apperr"
	"github.com/KyleAMathews/group-question-game/internal/game"
	"github.com/KyleAMathews/group-question-game/internal/models"

	"gorm.io/gorm"
)

type SessionService struct {
	db *gorm.DB
}

func NewSessionService(db *gorm.DB) *SessionService {
	return &SessionService{db: db}
}

// CreateSession opens a new session in the lobby state. The requested slug is
// suffixed with -1, -2, ... until it is unique, so two game nights can both
// ask for "family-night" without an error.
func (s *SessionService) CreateSession(adminID, bankID uint, slug string, roundSeconds int) (*SessionState, error) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	if slug == "" {
		return nil, apperr.InvalidInput("slug is required")
	}
	if !validSlug(slug) {
		return nil, apperr.InvalidInput("slug may only contain letters, numbers and dashes")
	}
	if roundSeconds == 0 {
		roundSeconds = models.DefaultRoundDurationSeconds
	}
	if roundSeconds < models.MinRoundDurationSeconds || roundSeconds > models.MaxRoundDurationSeconds {
		return nil, apperr.InvalidInput(fmt.Sprintf("round duration must be between %d and %d seconds",
			models.MinRoundDurationSeconds, models.MaxRoundDurationSeconds))
	}

	var (
		session models.GameSession
		token   string
	)
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var bank models.QuestionBank
		if err := tx.First(&bank, bankID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("question bank not found")
			}
			return err
		}

		var questionCount int64
		if err := tx.Model(&models.Question{}).Where("bank_id = ?", bankID).Count(&questionCount).Error; err != nil {
			return err
		}
		if questionCount == 0 {
			return apperr.InvalidInput("question bank has no questions")
		}

		unique, err := uniqueSlug(tx, slug)
		if err != nil {
			return err
		}

		session = models.GameSession{
			Slug:                 unique,
			BankID:               bankID,
			AdminID:              adminID,
			Status:               models.SessionStatusLobby,
			RoundDurationSeconds: roundSeconds,
			CreatedAt:            time.Now().UTC(),
		}
		if err := tx.Create(&session).Error; err != nil {
			return err
		}

		token, err = recordSync(tx, session.ID, EventSessionCreated, map[string]interface{}{
			"slug": session.Slug,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	return s.stateWithToken(session.ID, token)
}

// UpdateSession changes the round duration. Settings are frozen once the game
// leaves the lobby.
func (s *SessionService) UpdateSession(sessionID, adminID uint, roundSeconds int) (*SessionState, error) {
	if roundSeconds < models.MinRoundDurationSeconds || roundSeconds > models.MaxRoundDurationSeconds {
		return nil, apperr.InvalidInput(fmt.Sprintf("round duration must be between %d and %d seconds",
			models.MinRoundDurationSeconds, models.MaxRoundDurationSeconds))
	}

	var token string
	err := s.db.Transaction(func(tx *gorm.DB) error {
		session, err := lockSession(tx, sessionID, adminID)
		if err != nil {
			return err
		}
		if session.Status != models.SessionStatusLobby {
			return apperr.InvalidState("settings can only be changed while the session is in the lobby")
		}

		res := tx.Model(&models.GameSession{}).
			Where("id = ? AND status = ?", session.ID, models.SessionStatusLobby).
			Update("round_duration_seconds", roundSeconds)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperr.Conflict("session changed while updating settings")
		}

		token, err = recordSync(tx, session.ID, EventSettingsUpdated, map[string]interface{}{
			"round_duration_seconds": roundSeconds,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	return s.stateWithToken(sessionID, token)
}

// DeleteSession removes the session and everything hanging off it. Sync
// events are kept so the deletion itself can still be confirmed.
func (s *SessionService) DeleteSession(sessionID, adminID uint) (string, error) {
	var token string
	err := s.db.Transaction(func(tx *gorm.DB) error {
		session, err := lockSession(tx, sessionID, adminID)
		if err != nil {
			return err
		}

		for _, m := range []interface{}{
			&models.PlayerResponse{},
			&models.Player{},
			&models.UsedQuestion{},
		} {
			if err := tx.Where("session_id = ?", session.ID).Delete(m).Error; err != nil {
				return err
			}
		}
		if err := tx.Delete(&models.GameSession{}, session.ID).Error; err != nil {
			return err
		}

		token, err = recordSync(tx, session.ID, EventSessionDeleted, nil)
		return err
	})
	if err != nil {
		return "", err
	}
	return token, nil
}

// StartGame moves the session out of the lobby and draws the first question.
func (s *SessionService) StartGame(sessionID, adminID uint) (*SessionState, error) {
	return s.advance(sessionID, adminID, EventGameStarted,
		"question bank has no questions left to draw")
}

// NextQuestion draws a fresh question after a reveal. Same body as StartGame,
// only the failure message differs when the bank runs dry.
func (s *SessionService) NextQuestion(sessionID, adminID uint) (*SessionState, error) {
	return s.advance(sessionID, adminID, EventQuestionAdvanced,
		"no unused questions remain, end the game to see the winner")
}

func (s *SessionService) advance(sessionID, adminID uint, eventType, exhaustedMsg string) (*SessionState, error) {
	var token string
	err := s.db.Transaction(func(tx *gorm.DB) error {
		session, err := lockSession(tx, sessionID, adminID)
		if err != nil {
			return err
		}
		if !game.CanTransition(session.Status, models.SessionStatusActive) {
			return apperr.InvalidState(fmt.Sprintf("cannot present a question while the session is %s", session.Status))
		}

		var playerCount int64
		if err := tx.Model(&models.Player{}).Where("session_id = ?", session.ID).Count(&playerCount).Error; err != nil {
			return err
		}
		if playerCount == 0 {
			return apperr.InvalidInput("at least one player must join before questions are asked")
		}

		var bankQuestionIDs []uint
		if err := tx.Model(&models.Question{}).
			Where("bank_id = ?", session.BankID).
			Pluck("id", &bankQuestionIDs).Error; err != nil {
			return err
		}
		var usedIDs []uint
		if err := tx.Model(&models.UsedQuestion{}).
			Where("session_id = ?", session.ID).
			Pluck("question_id", &usedIDs).Error; err != nil {
			return err
		}

		questionID, ok := game.Draw(bankQuestionIDs, usedIDs)
		if !ok {
			return apperr.Exhausted(exhaustedMsg)
		}

		used := models.UsedQuestion{
			SessionID:     session.ID,
			QuestionID:    questionID,
			QuestionOrder: len(usedIDs) + 1,
			AskedAt:       time.Now().UTC(),
		}
		if err := tx.Create(&used).Error; err != nil {
			// unique (session_id, question_id) lost to a concurrent draw
			return apperr.Conflict("another question draw is already in flight")
		}

		res := tx.Model(&models.GameSession{}).
			Where("id = ? AND status = ?", session.ID, session.Status).
			Updates(map[string]interface{}{
				"status":              models.SessionStatusActive,
				"current_question_id": questionID,
				"round_started_at":    time.Now().UTC(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperr.Conflict("session state changed while drawing a question")
		}

		token, err = recordSync(tx, session.ID, eventType, map[string]interface{}{
			"question_id":    questionID,
			"question_order": used.QuestionOrder,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	return s.stateWithToken(sessionID, token)
}

// ForceReveal closes the current round without waiting for the remaining
// players to answer.
func (s *SessionService) ForceReveal(sessionID, adminID uint) (*SessionState, error) {
	var token string
	err := s.db.Transaction(func(tx *gorm.DB) error {
		session, err := lockSession(tx, sessionID, adminID)
		if err != nil {
			return err
		}
		if !game.CanTransition(session.Status, models.SessionStatusRevealing) {
			return apperr.InvalidState(fmt.Sprintf("no open round to reveal while the session is %s", session.Status))
		}

		res := tx.Model(&models.GameSession{}).
			Where("id = ? AND status = ?", session.ID, session.Status).
			Update("status", models.SessionStatusRevealing)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperr.Conflict("session state changed while revealing")
		}

		payload := map[string]interface{}{}
		if session.CurrentQuestionID != nil {
			payload["question_id"] = *session.CurrentQuestionID
		}
		token, err = recordSync(tx, session.ID, EventAnswersRevealed, payload)
		return err
	})
	if err != nil {
		return nil, err
	}

	return s.stateWithToken(sessionID, token)
}

// EndGame terminates the session from any non-terminal state and records the
// winner. The current question pointer is left in place so the final screen
// can keep showing the last round.
func (s *SessionService) EndGame(sessionID, adminID uint) (*SessionState, error) {
	var token string
	err := s.db.Transaction(func(tx *gorm.DB) error {
		session, err := lockSession(tx, sessionID, adminID)
		if err != nil {
			return err
		}
		if !game.CanTransition(session.Status, models.SessionStatusEnded) {
			return apperr.InvalidState("session has already ended")
		}

		var players []models.Player
		if err := tx.Where("session_id = ?", session.ID).Find(&players).Error; err != nil {
			return err
		}

		var winnerID *uint
		if winner := game.ResolveWinner(players); winner != nil {
			id := winner.ID
			winnerID = &id
		}

		res := tx.Model(&models.GameSession{}).
			Where("id = ? AND status = ?", session.ID, session.Status).
			Updates(map[string]interface{}{
				"status":           models.SessionStatusEnded,
				"ended_at":         time.Now().UTC(),
				"winner_player_id": winnerID,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperr.Conflict("session state changed while ending the game")
		}

		payload := map[string]interface{}{}
		if winnerID != nil {
			payload["winner_player_id"] = *winnerID
		}
		token, err = recordSync(tx, session.ID, EventGameEnded, payload)
		return err
	})
	if err != nil {
		return nil, err
	}

	return s.stateWithToken(sessionID, token)
}

// GetSession returns the admin view of a session. Ownership is checked the
// same way as for mutations, so someone else's session id reads as missing.
func (s *SessionService) GetSession(sessionID, adminID uint) (*SessionState, error) {
	var session models.GameSession
	if err := s.db.Where("id = ? AND admin_id = ?", sessionID, adminID).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("session not found")
		}
		return nil, err
	}
	return s.buildState(&session)
}

// GetSessionBySlug returns the public view players load from the join link.
func (s *SessionService) GetSessionBySlug(slug string) (*SessionState, error) {
	var session models.GameSession
	if err := s.db.Where("slug = ?", strings.ToLower(strings.TrimSpace(slug))).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("session not found")
		}
		return nil, err
	}
	return s.buildState(&session)
}

// PublicSession is the by-id variant of GetSessionBySlug, used where the
// caller already holds a session id, such as websocket pushes.
func (s *SessionService) PublicSession(sessionID uint) (*SessionState, error) {
	var session models.GameSession
	if err := s.db.First(&session, sessionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("session not found")
		}
		return nil, err
	}
	return s.buildState(&session)
}

func (s *SessionService) ListSessions(adminID uint) ([]SessionSummary, error) {
	var sessions []models.GameSession
	if err := s.db.Where("admin_id = ?", adminID).
		Preload("Bank").
		Order("created_at DESC").
		Find(&sessions).Error; err != nil {
		return nil, err
	}

	result := make([]SessionSummary, len(sessions))
	for i, sess := range sessions {
		var playerCount int64
		s.db.Model(&models.Player{}).Where("session_id = ?", sess.ID).Count(&playerCount)

		result[i] = SessionSummary{
			ID:          sess.ID,
			Slug:        sess.Slug,
			BankName:    sess.Bank.Name,
			Status:      sess.Status,
			PlayerCount: int(playerCount),
			CreatedAt:   sess.CreatedAt,
		}
	}
	return result, nil
}

func (s *SessionService) stateWithToken(sessionID uint, token string) (*SessionState, error) {
	var session models.GameSession
	if err := s.db.First(&session, sessionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("session not found")
		}
		return nil, err
	}
	state, err := s.buildState(&session)
	if err != nil {
		return nil, err
	}
	state.SyncToken = token
	return state, nil
}

// buildState assembles the wire view of a session. Correct flags and
// explanations stay hidden while a round is open and appear once the status
// reaches revealing or ended.
func (s *SessionService) buildState(session *models.GameSession) (*SessionState, error) {
	state := &SessionState{GameSession: *session}

	// The bank may have been deleted out from under a running session, in
	// which case the header just stays empty.
	if err := s.db.First(&state.Bank, session.BankID).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := s.db.Where("session_id = ?", session.ID).
		Order("score DESC, joined_at ASC").
		Find(&state.Players).Error; err != nil {
		return nil, err
	}
	for _, p := range state.Players {
		if p.IsConnected {
			state.ConnectedPlayers++
		}
	}

	var questionCount int64
	if err := s.db.Model(&models.Question{}).Where("bank_id = ?", session.BankID).Count(&questionCount).Error; err != nil {
		return nil, err
	}
	state.QuestionCount = int(questionCount)

	var usedCount int64
	if err := s.db.Model(&models.UsedQuestion{}).Where("session_id = ?", session.ID).Count(&usedCount).Error; err != nil {
		return nil, err
	}
	state.QuestionsAsked = int(usedCount)
	state.QuestionsRemaining = state.QuestionCount - state.QuestionsAsked
	if state.QuestionsRemaining < 0 {
		state.QuestionsRemaining = 0
	}

	if session.CurrentQuestionID == nil {
		return state, nil
	}

	var question models.Question
	if err := s.db.Preload("Options", func(db *gorm.DB) *gorm.DB {
		return db.Order("display_order ASC, id ASC")
	}).First(&question, *session.CurrentQuestionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return state, nil
		}
		return nil, err
	}

	revealed := session.Status == models.SessionStatusRevealing || session.Status == models.SessionStatusEnded

	qv := QuestionView{
		ID:       question.ID,
		Text:     question.Text,
		Type:     question.Type,
		HasImage: len(question.ImageData) > 0,
	}
	if revealed {
		qv.Explanation = question.Explanation
	}
	for _, o := range question.Options {
		opt := OptionView{
			ID:           o.ID,
			Text:         o.Text,
			DisplayOrder: o.DisplayOrder,
		}
		if revealed {
			correct := o.IsCorrect
			opt.IsCorrect = &correct
		}
		qv.Options = append(qv.Options, opt)
	}
	state.CurrentQuestion = &qv

	var responseCount int64
	if err := s.db.Model(&models.PlayerResponse{}).
		Where("session_id = ? AND question_id = ?", session.ID, question.ID).
		Count(&responseCount).Error; err != nil {
		return nil, err
	}
	state.ResponseCount = int(responseCount)

	return state, nil
}

// lockSession fetches a session scoped to its owner. A session owned by a
// different admin is reported exactly like a missing one.
func lockSession(tx *gorm.DB, sessionID, adminID uint) (*models.GameSession, error) {
	var session models.GameSession
	if err := tx.Where("id = ? AND admin_id = ?", sessionID, adminID).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("session not found")
		}
		return nil, err
	}
	return &session, nil
}

func uniqueSlug(tx *gorm.DB, base string) (string, error) {
	candidate := base
	for i := 1; ; i++ {
		var count int64
		if err := tx.Model(&models.GameSession{}).Where("slug = ?", candidate).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}

func validSlug(slug string) bool {
	for _, r := range slug {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
		case r == '-':
		default:
			return false
		}
	}
	return true
}

type SessionState struct {
	models.GameSession
	Players            []models.Player `json:"players"`
	ConnectedPlayers   int             `json:"connected_players"`
	QuestionCount      int             `json:"question_count"`
	QuestionsAsked     int             `json:"questions_asked"`
	QuestionsRemaining int             `json:"questions_remaining"`
	CurrentQuestion    *QuestionView   `json:"current_question,omitempty"`
	ResponseCount      int             `json:"response_count"`
	SyncToken          string          `json:"sync_token,omitempty"`
}

type QuestionView struct {
	ID          uint         `json:"id"`
	Text        string       `json:"text"`
	Type        string       `json:"type"`
	HasImage    bool         `json:"has_image"`
	Explanation string       `json:"explanation,omitempty"`
	Options     []OptionView `json:"options"`
}

type OptionView struct {
	ID           uint   `json:"id"`
	Text         string `json:"text"`
	DisplayOrder int    `json:"display_order"`
	IsCorrect    *bool  `json:"is_correct,omitempty"`
}

type SessionSummary struct {
	ID          uint      `json:"id"`
	Slug        string    `json:"slug"`
	BankName    string    `json:"bank_name"`
	Status      string    `json:"status"`
	PlayerCount int       `json:"player_count"`
	CreatedAt   time.Time `json:"created_at"`
}

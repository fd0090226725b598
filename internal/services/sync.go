package services

import (
	"encoding/json"
	"time"

	"github.com/KyleAMathews/group-question-game/internal/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Sync event types. The WebSocket hub reuses these as message types.
const (
	EventSessionCreated     = "session_created"
	EventSettingsUpdated    = "settings_updated"
	EventSessionDeleted     = "session_deleted"
	EventGameStarted        = "game_started"
	EventQuestionAdvanced   = "question_advanced"
	EventAnswersRevealed    = "answers_revealed"
	EventGameEnded          = "game_ended"
	EventPlayerJoined       = "player_joined"
	EventPlayerRejoined     = "player_rejoined"
	EventPlayerDisconnected = "player_disconnected"
	EventAnswerSubmitted    = "answer_submitted"
)

// recordSync inserts a sync event inside the mutation's transaction and
// returns its token. Callers hand the token to clients so the change-sync
// layer can confirm the write landed; the rows double as an audit trail.
func recordSync(tx *gorm.DB, sessionID uint, eventType string, payload interface{}) (string, error) {
	token := uuid.NewString()

	var data datatypes.JSON
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return "", err
		}
		data = datatypes.JSON(raw)
	}

	event := models.SyncEvent{
		SessionID: sessionID,
		Token:     token,
		Type:      eventType,
		Payload:   data,
		CreatedAt: time.Now().UTC(),
	}
	if err := tx.Create(&event).Error; err != nil {
		return "", err
	}
	return token, nil
}

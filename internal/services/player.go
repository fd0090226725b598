package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/KyleAMathews/group-question-game/internal/apperr"
	"github.com/KyleAMathews/group-question-game/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PlayerService struct {
	db *gorm.DB
}

func NewPlayerService(db *gorm.DB) *PlayerService {
	return &PlayerService{db: db}
}

// Join adds a player to a lobby. Display names are unique per session
// ignoring case. When the client presents a player id it already holds for
// this session, the call re-attaches that player (rename plus reconnect)
// instead of creating a duplicate seat.
func (s *PlayerService) Join(slug, displayName, existingPublicID string) (*JoinResult, error) {
	name := strings.TrimSpace(displayName)
	if len(name) < models.MinDisplayNameLength || len(name) > models.MaxDisplayNameLength {
		return nil, apperr.InvalidInput(fmt.Sprintf("display name must be between %d and %d characters",
			models.MinDisplayNameLength, models.MaxDisplayNameLength))
	}

	var result JoinResult
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var session models.GameSession
		if err := tx.Where("slug = ?", strings.ToLower(strings.TrimSpace(slug))).First(&session).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("session not found")
			}
			return err
		}
		if session.Status != models.SessionStatusLobby {
			return apperr.InvalidState("the game has already started, joining is only possible in the lobby")
		}
		result.SessionID = session.ID

		if existingPublicID != "" {
			var existing models.Player
			err := tx.Where("public_id = ? AND session_id = ?", existingPublicID, session.ID).First(&existing).Error
			if err == nil {
				if err := nameTaken(tx, session.ID, name, existing.ID); err != nil {
					return err
				}
				now := time.Now().UTC()
				if err := tx.Model(&existing).Updates(map[string]interface{}{
					"display_name": name,
					"is_connected": true,
					"last_seen_at": now,
				}).Error; err != nil {
					return err
				}
				existing.DisplayName = name
				existing.IsConnected = true
				existing.LastSeenAt = now

				token, err := recordSync(tx, session.ID, EventPlayerRejoined, map[string]interface{}{
					"player_id":    existing.ID,
					"display_name": existing.DisplayName,
				})
				if err != nil {
					return err
				}
				result.Player = existing
				result.IsRejoin = true
				result.SyncToken = token
				return nil
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			// Stale id from an earlier session, fall through and seat a
			// fresh player instead.
		}

		if err := nameTaken(tx, session.ID, name, 0); err != nil {
			return err
		}

		now := time.Now().UTC()
		player := models.Player{
			PublicID:    uuid.NewString(),
			SessionID:   session.ID,
			DisplayName: name,
			Score:       0,
			IsConnected: true,
			JoinedAt:    now,
			LastSeenAt:  now,
		}
		if err := tx.Create(&player).Error; err != nil {
			return err
		}

		token, err := recordSync(tx, session.ID, EventPlayerJoined, map[string]interface{}{
			"player_id":    player.ID,
			"display_name": player.DisplayName,
		})
		if err != nil {
			return err
		}
		result.Player = player
		result.SyncToken = token
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Rejoin marks a returning player as connected again. Unlike Join it works in
// every session state, so a dropped phone can come back mid round or after
// the game ended.
func (s *PlayerService) Rejoin(publicID string, sessionID uint) (*JoinResult, error) {
	var result JoinResult
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var player models.Player
		if err := tx.Where("public_id = ? AND session_id = ?", publicID, sessionID).First(&player).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("player not found in this session")
			}
			return err
		}

		now := time.Now().UTC()
		if err := tx.Model(&player).Updates(map[string]interface{}{
			"is_connected": true,
			"last_seen_at": now,
		}).Error; err != nil {
			return err
		}
		player.IsConnected = true
		player.LastSeenAt = now

		token, err := recordSync(tx, sessionID, EventPlayerRejoined, map[string]interface{}{
			"player_id":    player.ID,
			"display_name": player.DisplayName,
		})
		if err != nil {
			return err
		}
		result.SessionID = sessionID
		result.Player = player
		result.IsRejoin = true
		result.SyncToken = token
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Heartbeat refreshes a player's liveness. It is called on an interval by
// every client, so no sync event is written for it.
func (s *PlayerService) Heartbeat(publicID string) error {
	res := s.db.Model(&models.Player{}).
		Where("public_id = ?", publicID).
		Updates(map[string]interface{}{
			"is_connected": true,
			"last_seen_at": time.Now().UTC(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("player not found")
	}
	return nil
}

// Disconnect marks a player as gone. Their score and responses survive, and
// open rounds stop waiting for them. Returns the session the player sat in
// along with the sync token.
func (s *PlayerService) Disconnect(publicID string) (uint, string, error) {
	var (
		sessionID uint
		token     string
	)
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var player models.Player
		if err := tx.Where("public_id = ?", publicID).First(&player).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("player not found")
			}
			return err
		}
		sessionID = player.SessionID

		if err := tx.Model(&player).Updates(map[string]interface{}{
			"is_connected": false,
			"last_seen_at": time.Now().UTC(),
		}).Error; err != nil {
			return err
		}

		var err error
		token, err = recordSync(tx, player.SessionID, EventPlayerDisconnected, map[string]interface{}{
			"player_id":    player.ID,
			"display_name": player.DisplayName,
		})
		return err
	})
	if err != nil {
		return 0, "", err
	}
	return sessionID, token, nil
}

// nameTaken reports a conflict when another player in the session already
// uses the name, compared case-insensitively. selfID excludes the renaming
// player from the check.
func nameTaken(tx *gorm.DB, sessionID uint, name string, selfID uint) error {
	var count int64
	q := tx.Model(&models.Player{}).
		Where("session_id = ? AND LOWER(display_name) = ?", sessionID, strings.ToLower(name))
	if selfID != 0 {
		q = q.Where("id <> ?", selfID)
	}
	if err := q.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return apperr.Conflict("that display name is already taken in this session")
	}
	return nil
}

type JoinResult struct {
	SessionID uint          `json:"session_id"`
	Player    models.Player `json:"player"`
	IsRejoin  bool          `json:"is_rejoin"`
	SyncToken string        `json:"sync_token"`
}

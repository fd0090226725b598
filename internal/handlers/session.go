package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/KyleAMathews/group-question-game/internal/config"
	"github.com/KyleAMathews/group-question-game/internal/services"
	"github.com/KyleAMathews/group-question-game/internal/ws"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"
)

type SessionHandler struct {
	sessionService *services.SessionService
	hub            *ws.Hub
	cfg            *config.Config
}

func NewSessionHandler(sessionService *services.SessionService, hub *ws.Hub, cfg *config.Config) *SessionHandler {
	return &SessionHandler{sessionService: sessionService, hub: hub, cfg: cfg}
}

type CreateSessionRequest struct {
	Slug                 string `json:"slug" binding:"required" example:"family-night"`
	BankID               uint   `json:"bank_id" binding:"required" example:"1"`
	RoundDurationSeconds int    `json:"round_duration_seconds" example:"30"`
}

type UpdateSessionRequest struct {
	RoundDurationSeconds int `json:"round_duration_seconds" binding:"required" example:"45"`
}

func sessionIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid session id"})
		return 0, false
	}
	return uint(id), true
}

// CreateSession godoc
// @Summary      Create a game session
// @Description  Opens a lobby for the given bank. A taken slug gets a numeric suffix instead of an error.
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateSessionRequest true "Session data"
// @Success      201 {object} services.SessionState
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/sessions [post]
func (h *SessionHandler) CreateSession(c *gin.Context) {
	adminID := c.GetUint("admin_id")

	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	state, err := h.sessionService.CreateSession(adminID, req.BankID, req.Slug, req.RoundDurationSeconds)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, state)
}

// ListSessions godoc
// @Summary      List the admin's sessions
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} services.SessionSummary
// @Router       /api/v1/sessions [get]
func (h *SessionHandler) ListSessions(c *gin.Context) {
	adminID := c.GetUint("admin_id")

	sessions, err := h.sessionService.ListSessions(adminID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, sessions)
}

// GetSession godoc
// @Summary      Get session state
// @Description  Full dashboard view of one of the admin's sessions. Sessions owned by other admins read as missing.
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Session ID"
// @Success      200 {object} services.SessionState
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/sessions/{id} [get]
func (h *SessionHandler) GetSession(c *gin.Context) {
	adminID := c.GetUint("admin_id")
	sessionID, ok := sessionIDParam(c)
	if !ok {
		return
	}

	state, err := h.sessionService.GetSession(sessionID, adminID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, state)
}

// UpdateSession godoc
// @Summary      Change session settings
// @Description  Only the round duration is adjustable, and only while the session sits in the lobby.
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Session ID"
// @Param        request body UpdateSessionRequest true "Settings"
// @Success      200 {object} services.SessionState
// @Failure      409 {object} ErrorResponse
// @Router       /api/v1/sessions/{id} [put]
func (h *SessionHandler) UpdateSession(c *gin.Context) {
	adminID := c.GetUint("admin_id")
	sessionID, ok := sessionIDParam(c)
	if !ok {
		return
	}

	var req UpdateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	state, err := h.sessionService.UpdateSession(sessionID, adminID, req.RoundDurationSeconds)
	if err != nil {
		respondError(c, err)
		return
	}

	h.hub.Broadcast(sessionID, ws.Message{
		Type:  services.EventSettingsUpdated,
		Token: state.SyncToken,
		Data:  state,
	})

	c.JSON(http.StatusOK, state)
}

// DeleteSession godoc
// @Summary      Delete a session
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Session ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/sessions/{id} [delete]
func (h *SessionHandler) DeleteSession(c *gin.Context) {
	adminID := c.GetUint("admin_id")
	sessionID, ok := sessionIDParam(c)
	if !ok {
		return
	}

	token, err := h.sessionService.DeleteSession(sessionID, adminID)
	if err != nil {
		respondError(c, err)
		return
	}

	h.hub.Broadcast(sessionID, ws.Message{Type: services.EventSessionDeleted, Token: token})
	h.hub.CloseSession(sessionID)

	c.JSON(http.StatusOK, MessageResponse{Message: "session deleted", SyncToken: token})
}

// StartGame godoc
// @Summary      Start the game
// @Description  Leaves the lobby and presents the first randomly drawn question. Requires at least one joined player.
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Session ID"
// @Success      200 {object} services.SessionState
// @Failure      409 {object} ErrorResponse
// @Router       /api/v1/sessions/{id}/start [post]
func (h *SessionHandler) StartGame(c *gin.Context) {
	h.runTransition(c, h.sessionService.StartGame, services.EventGameStarted)
}

// NextQuestion godoc
// @Summary      Present the next question
// @Description  Draws a fresh random question after a reveal. Responds 409 with EXHAUSTED when the bank has no unused questions left.
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Session ID"
// @Success      200 {object} services.SessionState
// @Failure      409 {object} ErrorResponse
// @Router       /api/v1/sessions/{id}/next [post]
func (h *SessionHandler) NextQuestion(c *gin.Context) {
	h.runTransition(c, h.sessionService.NextQuestion, services.EventQuestionAdvanced)
}

// ForceReveal godoc
// @Summary      Reveal the current round
// @Description  Closes the round without waiting for outstanding answers.
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Session ID"
// @Success      200 {object} services.SessionState
// @Failure      409 {object} ErrorResponse
// @Router       /api/v1/sessions/{id}/reveal [post]
func (h *SessionHandler) ForceReveal(c *gin.Context) {
	h.runTransition(c, h.sessionService.ForceReveal, services.EventAnswersRevealed)
}

// EndGame godoc
// @Summary      End the game
// @Description  Terminates the session from any non-ended state and records the winner.
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Session ID"
// @Success      200 {object} services.SessionState
// @Failure      409 {object} ErrorResponse
// @Router       /api/v1/sessions/{id}/end [post]
func (h *SessionHandler) EndGame(c *gin.Context) {
	h.runTransition(c, h.sessionService.EndGame, services.EventGameEnded)
}

func (h *SessionHandler) runTransition(c *gin.Context, op func(sessionID, adminID uint) (*services.SessionState, error), eventType string) {
	adminID := c.GetUint("admin_id")
	sessionID, ok := sessionIDParam(c)
	if !ok {
		return
	}

	state, err := op(sessionID, adminID)
	if err != nil {
		respondError(c, err)
		return
	}

	h.hub.Broadcast(sessionID, ws.Message{
		Type:  eventType,
		Token: state.SyncToken,
		Data:  state,
	})

	c.JSON(http.StatusOK, state)
}

// SessionQR godoc
// @Summary      QR code for the join link
// @Description  PNG QR code pointing players at the session's join page.
// @Tags         sessions
// @Produce      image/png
// @Security     BearerAuth
// @Param        id path int true "Session ID"
// @Success      200 {file} binary
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/sessions/{id}/qr [get]
func (h *SessionHandler) SessionQR(c *gin.Context) {
	adminID := c.GetUint("admin_id")
	sessionID, ok := sessionIDParam(c)
	if !ok {
		return
	}

	state, err := h.sessionService.GetSession(sessionID, adminID)
	if err != nil {
		respondError(c, err)
		return
	}

	joinURL := fmt.Sprintf("%s/play/%s", strings.TrimRight(h.cfg.PublicBaseURL, "/"), state.Slug)
	png, err := qrcode.Encode(joinURL, qrcode.Medium, 512)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

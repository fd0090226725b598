package handlers

import (
	"net/http"
	"strconv"

	"github.com/KyleAMathews/group-question-game/internal/apperr"
	"github.com/KyleAMathews/group-question-game/internal/services"
	"github.com/KyleAMathews/group-question-game/internal/ws"

	"github.com/gin-gonic/gin"
)

// PlayHandler serves the unauthenticated player surface. Players are
// identified by the opaque id handed out on join, never by an admin token.
type PlayHandler struct {
	sessionService *services.SessionService
	playerService  *services.PlayerService
	answerService  *services.AnswerService
	hub            *ws.Hub
}

func NewPlayHandler(sessionService *services.SessionService, playerService *services.PlayerService, answerService *services.AnswerService, hub *ws.Hub) *PlayHandler {
	return &PlayHandler{
		sessionService: sessionService,
		playerService:  playerService,
		answerService:  answerService,
		hub:            hub,
	}
}

type PlayJoinRequest struct {
	Slug        string `json:"slug" binding:"required" example:"family-night"`
	DisplayName string `json:"display_name" binding:"required" example:"Dana"`
	PlayerID    string `json:"player_id" example:"1f0f2a9c-8f93-4a3c-9a7e-8a2a4f4b6c1d"`
}

type PlayRejoinRequest struct {
	PlayerID  string `json:"player_id" binding:"required"`
	SessionID uint   `json:"session_id" binding:"required"`
}

type PlayAnswerRequest struct {
	PlayerID          string `json:"player_id" binding:"required"`
	SessionID         uint   `json:"session_id" binding:"required"`
	QuestionID        uint   `json:"question_id" binding:"required"`
	SelectedOptionIDs []uint `json:"selected_option_ids"`
}

type PlayerIDRequest struct {
	PlayerID string `json:"player_id" binding:"required"`
}

// GetState godoc
// @Summary      Public session state
// @Description  The view players poll or load on the join page. Correct answers stay hidden while a round is open.
// @Tags         play
// @Produce      json
// @Param        slug query string true "Session slug"
// @Success      200 {object} services.SessionState
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/play/state [get]
func (h *PlayHandler) GetState(c *gin.Context) {
	slug := c.Query("slug")
	if slug == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "slug required"})
		return
	}

	state, err := h.sessionService.GetSessionBySlug(slug)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, state)
}

// Join godoc
// @Summary      Join a session
// @Description  Seats a player in the lobby. Sending a previously issued player_id re-attaches that seat instead of creating a new one.
// @Tags         play
// @Accept       json
// @Produce      json
// @Param        request body PlayJoinRequest true "Join data"
// @Success      200 {object} services.JoinResult
// @Failure      409 {object} ErrorResponse
// @Router       /api/v1/play/join [post]
func (h *PlayHandler) Join(c *gin.Context) {
	var req PlayJoinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.playerService.Join(req.Slug, req.DisplayName, req.PlayerID)
	if err != nil {
		respondError(c, err)
		return
	}

	event := services.EventPlayerJoined
	if result.IsRejoin {
		event = services.EventPlayerRejoined
	}
	h.hub.Broadcast(result.SessionID, ws.Message{
		Type:  event,
		Token: result.SyncToken,
		Data:  result.Player,
	})

	c.JSON(http.StatusOK, result)
}

// Rejoin godoc
// @Summary      Reconnect a player
// @Description  Re-attaches a known player to a running or finished session, unlike join this works in any state.
// @Tags         play
// @Accept       json
// @Produce      json
// @Param        request body PlayRejoinRequest true "Rejoin data"
// @Success      200 {object} services.JoinResult
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/play/rejoin [post]
func (h *PlayHandler) Rejoin(c *gin.Context) {
	var req PlayRejoinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.playerService.Rejoin(req.PlayerID, req.SessionID)
	if err != nil {
		respondError(c, err)
		return
	}

	h.hub.Broadcast(result.SessionID, ws.Message{
		Type:  services.EventPlayerRejoined,
		Token: result.SyncToken,
		Data:  result.Player,
	})

	c.JSON(http.StatusOK, result)
}

// Answer godoc
// @Summary      Submit an answer
// @Description  Records the player's selection for the current question and scores it immediately. An empty selection is a pass. Each player answers a question once.
// @Tags         play
// @Accept       json
// @Produce      json
// @Param        request body PlayAnswerRequest true "Answer data"
// @Success      200 {object} services.SubmitResult
// @Failure      409 {object} ErrorResponse
// @Router       /api/v1/play/answer [post]
func (h *PlayHandler) Answer(c *gin.Context) {
	var req PlayAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.answerService.Submit(req.PlayerID, req.SessionID, req.QuestionID, req.SelectedOptionIDs)
	if err != nil {
		respondError(c, err)
		return
	}

	h.hub.Broadcast(req.SessionID, ws.Message{
		Type:  services.EventAnswerSubmitted,
		Token: result.SyncToken,
		Data:  gin.H{"question_id": req.QuestionID, "all_answered": result.AllAnswered},
	})

	// The last answer flips the round to revealing inside the submit
	// transaction, so push the now-unmasked state to everyone.
	if result.AllAnswered {
		if state, err := h.sessionService.PublicSession(req.SessionID); err == nil {
			h.hub.Broadcast(req.SessionID, ws.Message{
				Type:  services.EventAnswersRevealed,
				Token: result.SyncToken,
				Data:  state,
			})
		}
	}

	c.JSON(http.StatusOK, result)
}

// CurrentQuestion godoc
// @Summary      Current question
// @Description  The question being presented right now, without correct flags while the round is open.
// @Tags         play
// @Produce      json
// @Param        slug query string true "Session slug"
// @Success      200 {object} services.QuestionView
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/play/question [get]
func (h *PlayHandler) CurrentQuestion(c *gin.Context) {
	slug := c.Query("slug")
	if slug == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "slug required"})
		return
	}

	state, err := h.sessionService.GetSessionBySlug(slug)
	if err != nil {
		respondError(c, err)
		return
	}
	if state.CurrentQuestion == nil {
		respondError(c, apperr.NotFound("no question is currently presented"))
		return
	}

	c.JSON(http.StatusOK, state.CurrentQuestion)
}

// RoundStats godoc
// @Summary      Round statistics
// @Description  How many players answered a question and how many got it fully right. Defaults to the current question.
// @Tags         play
// @Produce      json
// @Param        session_id query int true "Session ID"
// @Param        question_id query int false "Question ID, defaults to the current question"
// @Success      200 {object} services.RoundStats
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/play/stats [get]
func (h *PlayHandler) RoundStats(c *gin.Context) {
	sessionID, err := strconv.ParseUint(c.Query("session_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid session_id"})
		return
	}

	var questionID uint
	if raw := c.Query("question_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid question_id"})
			return
		}
		questionID = uint(parsed)
	} else {
		state, err := h.sessionService.PublicSession(uint(sessionID))
		if err != nil {
			respondError(c, err)
			return
		}
		if state.CurrentQuestion == nil {
			respondError(c, apperr.NotFound("no question is currently presented"))
			return
		}
		questionID = state.CurrentQuestion.ID
	}

	stats, err := h.answerService.RoundStats(uint(sessionID), questionID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// MyResponse godoc
// @Summary      Own response for a question
// @Description  What the calling player submitted for a question, including earned points.
// @Tags         play
// @Produce      json
// @Param        player_id query string true "Player ID"
// @Param        question_id query int true "Question ID"
// @Success      200 {object} PlayerResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/play/my-response [get]
func (h *PlayHandler) MyResponse(c *gin.Context) {
	playerID := c.Query("player_id")
	if playerID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "player_id required"})
		return
	}
	questionID, err := strconv.ParseUint(c.Query("question_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid question_id"})
		return
	}

	response, err := h.answerService.MyResponse(playerID, uint(questionID))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Heartbeat godoc
// @Summary      Player heartbeat
// @Description  Marks the player as connected. Clients call this periodically; no broadcast is sent.
// @Tags         play
// @Accept       json
// @Produce      json
// @Param        request body PlayerIDRequest true "Player id"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/play/heartbeat [post]
func (h *PlayHandler) Heartbeat(c *gin.Context) {
	var req PlayerIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.playerService.Heartbeat(req.PlayerID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "ok"})
}

// Disconnect godoc
// @Summary      Player disconnect
// @Description  Marks the player as disconnected so auto-advance stops waiting for them. Their seat and score survive for a later rejoin.
// @Tags         play
// @Accept       json
// @Produce      json
// @Param        request body PlayerIDRequest true "Player id"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/play/disconnect [post]
func (h *PlayHandler) Disconnect(c *gin.Context) {
	var req PlayerIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	sessionID, token, err := h.playerService.Disconnect(req.PlayerID)
	if err != nil {
		respondError(c, err)
		return
	}

	h.hub.Broadcast(sessionID, ws.Message{
		Type:  services.EventPlayerDisconnected,
		Token: token,
		Data:  gin.H{"player_id": req.PlayerID},
	})

	c.JSON(http.StatusOK, MessageResponse{Message: "disconnected", SyncToken: token})
}

package handlers

import (
	"log"
	"net/http"

	"github.com/KyleAMathews/group-question-game/internal/apperr"
	"github.com/KyleAMathews/group-question-game/internal/models"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error string `json:"error" example:"session not found"`
	Code  string `json:"code" example:"NOT_FOUND"`
}

type MessageResponse struct {
	Message   string `json:"message" example:"operation successful"`
	SyncToken string `json:"sync_token,omitempty"`
}

// respondError maps service failures onto HTTP responses. Unexpected errors
// are logged and returned as an opaque 500 so storage details never reach
// clients.
func respondError(c *gin.Context, err error) {
	status := apperr.HTTPStatus(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		log.Printf("[HTTP] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		message = "internal error"
	}
	c.JSON(status, ErrorResponse{Error: message, Code: string(apperr.KindOf(err))})
}

// Type aliases so swag can resolve models in annotations.
type QuestionBank = models.QuestionBank
type Question = models.Question
type Player = models.Player
type PlayerResponse = models.PlayerResponse

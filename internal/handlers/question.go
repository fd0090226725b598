package handlers

import (
	"encoding/base64"
	"net/http"
	"strconv"

	"github.com/KyleAMathews/group-question-game/internal/services"

	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	bankService *services.BankService
}

func NewQuestionHandler(bankService *services.BankService) *QuestionHandler {
	return &QuestionHandler{bankService: bankService}
}

// maxImageBytes caps decoded question images.
const maxImageBytes = 2 << 20

type QuestionRequest struct {
	Text        string                 `json:"text" binding:"required" example:"Which planet is largest?"`
	Type        string                 `json:"type" example:"single"`
	Explanation string                 `json:"explanation" example:"Jupiter outweighs the rest combined"`
	Image       string                 `json:"image,omitempty"`
	ImageMime   string                 `json:"image_mime,omitempty" example:"image/png"`
	Options     []services.OptionInput `json:"options" binding:"required"`
}

func (r *QuestionRequest) toInput(c *gin.Context) (services.QuestionInput, bool) {
	input := services.QuestionInput{
		Text:        r.Text,
		Type:        r.Type,
		Explanation: r.Explanation,
		ImageMime:   r.ImageMime,
		Options:     r.Options,
	}
	if r.Image != "" {
		data, err := base64.StdEncoding.DecodeString(r.Image)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "image must be base64 encoded"})
			return input, false
		}
		if len(data) > maxImageBytes {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "image exceeds 2MB limit"})
			return input, false
		}
		input.ImageData = data
	}
	return input, true
}

// CreateQuestion godoc
// @Summary      Add a question to a bank
// @Description  Questions carry 2 to 6 options with at least one marked correct. An optional image is accepted as base64.
// @Tags         questions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Bank ID"
// @Param        request body QuestionRequest true "Question data"
// @Success      201 {object} Question
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/banks/{id}/questions [post]
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	bankID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid bank id"})
		return
	}

	var req QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	input, ok := req.toInput(c)
	if !ok {
		return
	}

	question, err := h.bankService.CreateQuestion(uint(bankID), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, question)
}

// UpdateQuestion godoc
// @Summary      Update a question
// @Description  Replaces the question text, type and options. Sending an image replaces the stored one, omitting it keeps it.
// @Tags         questions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Question ID"
// @Param        request body QuestionRequest true "Question data"
// @Success      200 {object} Question
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/questions/{id} [put]
func (h *QuestionHandler) UpdateQuestion(c *gin.Context) {
	questionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid question id"})
		return
	}

	var req QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	input, ok := req.toInput(c)
	if !ok {
		return
	}

	question, err := h.bankService.UpdateQuestion(uint(questionID), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, question)
}

// DeleteQuestion godoc
// @Summary      Delete a question
// @Tags         questions
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Question ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/questions/{id} [delete]
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	questionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid question id"})
		return
	}

	if err := h.bankService.DeleteQuestion(uint(questionID)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "question deleted"})
}

// GetQuestionImage godoc
// @Summary      Serve a question's image
// @Description  Raw image bytes with the stored content type. Open to players, the image itself reveals nothing about the answer.
// @Tags         questions
// @Produce      image/*
// @Param        id path int true "Question ID"
// @Success      200 {file} binary
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/questions/{id}/image [get]
func (h *QuestionHandler) GetQuestionImage(c *gin.Context) {
	questionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid question id"})
		return
	}

	data, mime, err := h.bankService.QuestionImage(uint(questionID))
	if err != nil {
		respondError(c, err)
		return
	}
	if mime == "" {
		mime = "application/octet-stream"
	}
	c.Data(http.StatusOK, mime, data)
}

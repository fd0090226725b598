package handlers

import (
	"net/http"
	"strconv"

	"github.com/KyleAMathews/group-question-game/internal/services"

	"github.com/gin-gonic/gin"
)

type BankHandler struct {
	bankService *services.BankService
}

func NewBankHandler(bankService *services.BankService) *BankHandler {
	return &BankHandler{bankService: bankService}
}

type BankRequest struct {
	Name        string `json:"name" binding:"required" example:"Movie Night"`
	Description string `json:"description" example:"films and directors"`
}

// ListBanks godoc
// @Summary      List question banks
// @Description  All banks with their question counts. Banks are shared between admins.
// @Tags         banks
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} services.BankSummary
// @Router       /api/v1/banks [get]
func (h *BankHandler) ListBanks(c *gin.Context) {
	banks, err := h.bankService.ListBanks()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, banks)
}

// CreateBank godoc
// @Summary      Create a question bank
// @Tags         banks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body BankRequest true "Bank data"
// @Success      201 {object} QuestionBank
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/banks [post]
func (h *BankHandler) CreateBank(c *gin.Context) {
	var req BankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	bank, err := h.bankService.CreateBank(req.Name, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, bank)
}

// GetBank godoc
// @Summary      Get a bank with its questions
// @Description  Returns the bank including questions, options and correct flags. Admin surface only, players never see this.
// @Tags         banks
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Bank ID"
// @Success      200 {object} QuestionBank
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/banks/{id} [get]
func (h *BankHandler) GetBank(c *gin.Context) {
	bankID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid bank id"})
		return
	}

	bank, err := h.bankService.GetBank(uint(bankID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bank)
}

// UpdateBank godoc
// @Summary      Rename a bank
// @Tags         banks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Bank ID"
// @Param        request body BankRequest true "Bank data"
// @Success      200 {object} QuestionBank
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/banks/{id} [put]
func (h *BankHandler) UpdateBank(c *gin.Context) {
	bankID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid bank id"})
		return
	}

	var req BankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	bank, err := h.bankService.UpdateBank(uint(bankID), req.Name, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bank)
}

// DeleteBank godoc
// @Summary      Delete a bank and its questions
// @Tags         banks
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Bank ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/banks/{id} [delete]
func (h *BankHandler) DeleteBank(c *gin.Context) {
	bankID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid bank id"})
		return
	}

	if err := h.bankService.DeleteBank(uint(bankID)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "bank deleted"})
}

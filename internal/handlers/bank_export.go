package handlers

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/KyleAMathews/group-question-game/internal/services"

	"github.com/gin-gonic/gin"
)

type ExportOption struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
}

type ExportQuestion struct {
	Text        string         `json:"text"`
	Type        string         `json:"type,omitempty"`
	Explanation string         `json:"explanation,omitempty"`
	Options     []ExportOption `json:"options"`
}

type BankExport struct {
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Questions   []ExportQuestion `json:"questions"`
}

var csvHeader = []string{"question", "type", "explanation", "option1", "option2", "option3", "option4", "option5", "option6", "correct"}

// ExportBank godoc
// @Summary      Export a bank
// @Description  Downloads the bank's questions as JSON, or CSV with format=csv. Images are not included.
// @Tags         banks
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Bank ID"
// @Param        format query string false "json or csv" default(json)
// @Success      200 {object} BankExport
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/banks/{id}/export [get]
func (h *BankHandler) ExportBank(c *gin.Context) {
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

	data := BankExport{Name: bank.Name, Description: bank.Description}
	for _, q := range bank.Questions {
		eq := ExportQuestion{Text: q.Text, Type: q.Type, Explanation: q.Explanation}
		for _, o := range q.Options {
			eq.Options = append(eq.Options, ExportOption{Text: o.Text, IsCorrect: o.IsCorrect})
		}
		data.Questions = append(data.Questions, eq)
	}

	filename := strings.ReplaceAll(bank.Name, " ", "_")

	if c.DefaultQuery("format", "json") == "csv" {
		c.Header("Content-Type", "text/csv; charset=utf-8")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.csv\"", filename))

		w := csv.NewWriter(c.Writer)
		w.Write(csvHeader)
		for _, q := range data.Questions {
			row := make([]string, len(csvHeader))
			row[0] = q.Text
			row[1] = q.Type
			row[2] = q.Explanation
			var correct []string
			for i, o := range q.Options {
				if i < 6 {
					row[3+i] = o.Text
				}
				if o.IsCorrect {
					correct = append(correct, strconv.Itoa(i+1))
				}
			}
			row[9] = strings.Join(correct, ";")
			w.Write(row)
		}
		w.Flush()
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.json\"", filename))
	c.JSON(http.StatusOK, data)
}

// ImportBank godoc
// @Summary      Import questions into a bank
// @Description  Uploads a JSON or CSV file produced by export and appends its questions to the bank. All rows are validated before anything is written.
// @Tags         banks
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Bank ID"
// @Param        file formData file true "Export file"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/banks/{id}/import [post]
func (h *BankHandler) ImportBank(c *gin.Context) {
	bankID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid bank id"})
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "file required"})
		return
	}
	defer file.Close()

	body, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "cannot read file"})
		return
	}

	var data BankExport
	if strings.HasSuffix(strings.ToLower(header.Filename), ".csv") {
		data, err = parseBankCSV(body)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
	} else {
		if err := json.Unmarshal(body, &data); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid JSON: " + err.Error()})
			return
		}
	}

	count, err := h.bankService.ImportQuestions(uint(bankID), exportToInputs(data))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"imported_questions": count})
}

func parseBankCSV(data []byte) (BankExport, error) {
	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	if err != nil {
		return BankExport{}, fmt.Errorf("invalid CSV: %w", err)
	}
	if len(records) < 2 {
		return BankExport{}, fmt.Errorf("CSV must have a header and at least one row")
	}

	var result BankExport
	for _, row := range records[1:] {
		if len(row) < len(csvHeader) {
			continue
		}
		text := strings.TrimSpace(row[0])
		if text == "" {
			continue
		}

		correct := make(map[int]bool)
		for _, idx := range strings.Split(row[9], ";") {
			if n, err := strconv.Atoi(strings.TrimSpace(idx)); err == nil {
				correct[n] = true
			}
		}

		eq := ExportQuestion{
			Text:        text,
			Type:        strings.TrimSpace(row[1]),
			Explanation: strings.TrimSpace(row[2]),
		}
		for i := 0; i < 6; i++ {
			optText := strings.TrimSpace(row[3+i])
			if optText == "" {
				continue
			}
			eq.Options = append(eq.Options, ExportOption{
				Text:      optText,
				IsCorrect: correct[i+1],
			})
		}
		result.Questions = append(result.Questions, eq)
	}
	return result, nil
}

func exportToInputs(data BankExport) []services.QuestionInput {
	var inputs []services.QuestionInput
	for _, q := range data.Questions {
		input := services.QuestionInput{
			Text:        q.Text,
			Type:        q.Type,
			Explanation: q.Explanation,
		}
		for _, o := range q.Options {
			input.Options = append(input.Options, services.OptionInput{
				Text:      o.Text,
				IsCorrect: o.IsCorrect,
			})
		}
		inputs = append(inputs, input)
	}
	return inputs
}

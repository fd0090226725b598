package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/KyleAMathews/group-question-game/internal/apperr"
	"github.com/KyleAMathews/group-question-game/internal/models"

	"gorm.io/gorm"
)

// ImageProcessor normalizes question images before they are stored. A
// processing failure is not fatal, the raw upload is kept instead.
type ImageProcessor interface {
	Process(data []byte, mime string) ([]byte, string, error)
}

type BankService struct {
	db     *gorm.DB
	images ImageProcessor
}

// NewBankService wires the bank CRUD. The processor may be nil, in which case
// uploads are stored as received.
func NewBankService(db *gorm.DB, images ImageProcessor) *BankService {
	return &BankService{db: db, images: images}
}

func (s *BankService) ListBanks() ([]BankSummary, error) {
	var banks []models.QuestionBank
	if err := s.db.Order("created_at DESC").Find(&banks).Error; err != nil {
		return nil, err
	}

	result := make([]BankSummary, len(banks))
	for i, b := range banks {
		var questionCount int64
		s.db.Model(&models.Question{}).Where("bank_id = ?", b.ID).Count(&questionCount)

		result[i] = BankSummary{
			ID:            b.ID,
			Name:          b.Name,
			Description:   b.Description,
			QuestionCount: int(questionCount),
			CreatedAt:     b.CreatedAt,
		}
	}
	return result, nil
}

func (s *BankService) CreateBank(name, description string) (*models.QuestionBank, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.InvalidInput("bank name is required")
	}

	bank := models.QuestionBank{
		Name:        name,
		Description: description,
	}
	if err := s.db.Create(&bank).Error; err != nil {
		return nil, err
	}
	return &bank, nil
}

func (s *BankService) GetBank(bankID uint) (*models.QuestionBank, error) {
	var bank models.QuestionBank
	err := s.db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("id ASC")
	}).Preload("Questions.Options", func(db *gorm.DB) *gorm.DB {
		return db.Order("display_order ASC, id ASC")
	}).First(&bank, bankID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("question bank not found")
		}
		return nil, err
	}
	return &bank, nil
}

func (s *BankService) UpdateBank(bankID uint, name, description string) (*models.QuestionBank, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.InvalidInput("bank name is required")
	}

	var bank models.QuestionBank
	if err := s.db.First(&bank, bankID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("question bank not found")
		}
		return nil, err
	}

	bank.Name = name
	bank.Description = description
	if err := s.db.Save(&bank).Error; err != nil {
		return nil, err
	}
	return &bank, nil
}

// DeleteBank removes the bank with its questions and options. Sessions that
// still reference it keep running and simply run out of questions to draw.
func (s *BankService) DeleteBank(bankID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var bank models.QuestionBank
		if err := tx.First(&bank, bankID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("question bank not found")
			}
			return err
		}

		if err := tx.Where("question_id IN (SELECT id FROM questions WHERE bank_id = ?)", bankID).
			Delete(&models.AnswerOption{}).Error; err != nil {
			return err
		}
		if err := tx.Where("bank_id = ?", bankID).Delete(&models.Question{}).Error; err != nil {
			return err
		}
		return tx.Delete(&bank).Error
	})
}

func (s *BankService) CreateQuestion(bankID uint, input QuestionInput) (*models.Question, error) {
	var bank models.QuestionBank
	if err := s.db.First(&bank, bankID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("question bank not found")
		}
		return nil, err
	}

	qType := input.Type
	if qType == "" {
		qType = models.QuestionTypeSingle
	}
	if err := validateQuestion(qType, input.Text, input.Options); err != nil {
		return nil, err
	}

	imageData, imageMime := s.prepareImage(input.ImageData, input.ImageMime)

	question := models.Question{
		BankID:      bankID,
		Text:        strings.TrimSpace(input.Text),
		Type:        qType,
		ImageData:   imageData,
		ImageMime:   imageMime,
		Explanation: input.Explanation,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&question).Error; err != nil {
			return err
		}
		for i, o := range input.Options {
			opt := models.AnswerOption{
				QuestionID:   question.ID,
				Text:         o.Text,
				IsCorrect:    o.IsCorrect,
				DisplayOrder: i,
			}
			if err := tx.Create(&opt).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.db.Preload("Options", func(db *gorm.DB) *gorm.DB {
		return db.Order("display_order ASC, id ASC")
	}).First(&question, question.ID)
	return &question, nil
}

func (s *BankService) UpdateQuestion(questionID uint, input QuestionInput) (*models.Question, error) {
	var question models.Question
	if err := s.db.First(&question, questionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("question not found")
		}
		return nil, err
	}

	qType := input.Type
	if qType == "" {
		qType = models.QuestionTypeSingle
	}
	if err := validateQuestion(qType, input.Text, input.Options); err != nil {
		return nil, err
	}

	question.Text = strings.TrimSpace(input.Text)
	question.Type = qType
	question.Explanation = input.Explanation
	if input.ImageData != nil {
		question.ImageData, question.ImageMime = s.prepareImage(input.ImageData, input.ImageMime)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&question).Error; err != nil {
			return err
		}
		if err := tx.Where("question_id = ?", questionID).Delete(&models.AnswerOption{}).Error; err != nil {
			return err
		}
		for i, o := range input.Options {
			opt := models.AnswerOption{
				QuestionID:   questionID,
				Text:         o.Text,
				IsCorrect:    o.IsCorrect,
				DisplayOrder: i,
			}
			if err := tx.Create(&opt).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.db.Preload("Options", func(db *gorm.DB) *gorm.DB {
		return db.Order("display_order ASC, id ASC")
	}).First(&question, questionID)
	return &question, nil
}

// ImportQuestions appends a batch of questions to a bank in one transaction,
// so either every question lands or none do. Images do not travel through
// import, they are uploaded per question afterwards.
func (s *BankService) ImportQuestions(bankID uint, inputs []QuestionInput) (int, error) {
	var bank models.QuestionBank
	if err := s.db.First(&bank, bankID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apperr.NotFound("question bank not found")
		}
		return 0, err
	}
	if len(inputs) == 0 {
		return 0, apperr.InvalidInput("nothing to import")
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, input := range inputs {
			qType := input.Type
			if qType == "" {
				qType = models.QuestionTypeSingle
			}
			if err := validateQuestion(qType, input.Text, input.Options); err != nil {
				return err
			}
			question := models.Question{
				BankID:      bankID,
				Text:        strings.TrimSpace(input.Text),
				Type:        qType,
				Explanation: input.Explanation,
			}
			if err := tx.Create(&question).Error; err != nil {
				return err
			}
			for i, o := range input.Options {
				opt := models.AnswerOption{
					QuestionID:   question.ID,
					Text:         o.Text,
					IsCorrect:    o.IsCorrect,
					DisplayOrder: i,
				}
				if err := tx.Create(&opt).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(inputs), nil
}

func (s *BankService) DeleteQuestion(questionID uint) error {
	var question models.Question
	if err := s.db.First(&question, questionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("question not found")
		}
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("question_id = ?", questionID).Delete(&models.AnswerOption{}).Error; err != nil {
			return err
		}
		return tx.Delete(&question).Error
	})
}

// QuestionImage returns the stored image payload for serving.
func (s *BankService) QuestionImage(questionID uint) ([]byte, string, error) {
	var question models.Question
	if err := s.db.Select("id", "image_data", "image_mime").First(&question, questionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", apperr.NotFound("question not found")
		}
		return nil, "", err
	}
	if len(question.ImageData) == 0 {
		return nil, "", apperr.NotFound("question has no image")
	}
	return question.ImageData, question.ImageMime, nil
}

// prepareImage runs the upload through the processor when one is configured.
// Processing failures only log, the original bytes are stored so a broken
// transcoder never blocks question authoring.
func (s *BankService) prepareImage(data []byte, mime string) ([]byte, string) {
	if len(data) == 0 {
		return nil, ""
	}
	if s.images == nil {
		return data, mime
	}
	processed, processedMime, err := s.images.Process(data, mime)
	if err != nil {
		log.Printf("[BANK] image processing failed, storing original: %v", err)
		return data, mime
	}
	return processed, processedMime
}

func validateQuestion(qType, text string, options []OptionInput) error {
	if strings.TrimSpace(text) == "" {
		return apperr.InvalidInput("question text is required")
	}
	if len(options) < models.MinAnswerOptions || len(options) > models.MaxAnswerOptions {
		return apperr.InvalidInput(fmt.Sprintf("questions must have between %d and %d options",
			models.MinAnswerOptions, models.MaxAnswerOptions))
	}

	correct := 0
	for _, o := range options {
		if strings.TrimSpace(o.Text) == "" {
			return apperr.InvalidInput("option text is required")
		}
		if o.IsCorrect {
			correct++
		}
	}

	switch qType {
	case models.QuestionTypeSingle:
		if correct != 1 {
			return apperr.InvalidInput("single choice questions must have exactly one correct option")
		}
	case models.QuestionTypeMulti:
		if correct == 0 {
			return apperr.InvalidInput("at least one option must be marked correct")
		}
	default:
		return apperr.InvalidInput("unknown question type: " + qType)
	}
	return nil
}

type QuestionInput struct {
	Text        string        `json:"text"`
	Type        string        `json:"type"`
	Explanation string        `json:"explanation"`
	ImageData   []byte        `json:"-"`
	ImageMime   string        `json:"-"`
	Options     []OptionInput `json:"options"`
}

type OptionInput struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
}

type BankSummary struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	QuestionCount int       `json:"question_count"`
	CreatedAt     time.Time `json:"created_at"`
}

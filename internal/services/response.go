package services

import (
	"errors"
	"strings"

	"github.com/Kumarankit101/Forms/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ResponseService struct {
	db *gorm.DB
}

func NewResponseService(db *gorm.DB) *ResponseService {
	return &ResponseService{db: db}
}

// Submit records one anonymous answer set against a form. Keys are
// question ids as strings; whether every required question was answered
// is the submitting client's concern, not re-checked here.
func (s *ResponseService) Submit(formID uint, answers map[string]string) (*models.Response, error) {
	var form models.Form
	if err := s.db.First(&form, formID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	verr := newValidationError()
	if answers == nil {
		verr.add("answers", "answers object is required")
	}
	for key := range answers {
		if strings.TrimSpace(key) == "" {
			verr.add("answers", "answer keys must be question ids")
			break
		}
	}
	if err := verr.orNil(); err != nil {
		return nil, err
	}

	stored := make(datatypes.JSONMap, len(answers))
	for k, v := range answers {
		stored[k] = v
	}

	response := models.Response{
		FormID:  formID,
		Answers: stored,
	}
	if err := s.db.Create(&response).Error; err != nil {
		return nil, err
	}
	return &response, nil
}

func (s *ResponseService) ListByForm(formID, ownerID uint) ([]models.Response, error) {
	var form models.Form
	if err := s.db.First(&form, formID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if form.UserID != ownerID {
		return nil, ErrForbidden
	}

	var responses []models.Response
	err := s.db.Where("form_id = ?", formID).
		Order("created_at DESC").
		Find(&responses).Error
	if err != nil {
		return nil, err
	}
	return responses, nil
}

// Delete resolves the response's parent form to check ownership before
// removing it.
func (s *ResponseService) Delete(responseID, ownerID uint) error {
	var response models.Response
	if err := s.db.First(&response, responseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	var form models.Form
	if err := s.db.First(&form, response.FormID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if form.UserID != ownerID {
		return ErrForbidden
	}

	return s.db.Delete(&response).Error
}

func (s *ResponseService) CountByForm(formID uint) (int64, error) {
	var count int64
	err := s.db.Model(&models.Response{}).
		Where("form_id = ?", formID).
		Count(&count).Error
	return count, err
}

package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Kumarankit101/Forms/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FormService struct {
	db *gorm.DB
}

func NewFormService(db *gorm.DB) *FormService {
	return &FormService{db: db}
}

type FormInput struct {
	Title       string `json:"title" binding:"required,min=1,max=255" example:"Customer Survey"`
	Description string `json:"description" example:"Tell us what you think"`
}

type QuestionInput struct {
	Text     string   `json:"text" example:"What's your name?"`
	Type     string   `json:"type" example:"text"`
	Required bool     `json:"required"`
	Options  []string `json:"options,omitempty"`
}

type CreateFormInput struct {
	Form      FormInput       `json:"form" binding:"required"`
	Questions []QuestionInput `json:"questions" binding:"required,min=1"`
}

// validate checks the whole submitted tree before anything is written.
func (in *CreateFormInput) validate() error {
	verr := newValidationError()
	if strings.TrimSpace(in.Form.Title) == "" {
		verr.add("form.title", "form title is required")
	}
	if len(in.Questions) == 0 {
		verr.add("questions", "at least one question is required")
	}
	for i, q := range in.Questions {
		if strings.TrimSpace(q.Text) == "" {
			verr.add(fmt.Sprintf("questions[%d].text", i), "question text is required")
		}
		switch q.Type {
		case models.QuestionTypeText:
		case models.QuestionTypeDropdown:
			valid := 0
			for _, opt := range q.Options {
				if strings.TrimSpace(opt) != "" {
					valid++
				}
			}
			if valid == 0 {
				verr.add(fmt.Sprintf("questions[%d].options", i), "dropdown questions need at least one option")
			}
		default:
			verr.add(fmt.Sprintf("questions[%d].type", i), "type must be 'text' or 'dropdown'")
		}
	}
	return verr.orNil()
}

func (s *FormService) CreateForm(ownerID uint, input CreateFormInput) (*models.Form, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	form := models.Form{
		UserID:      ownerID,
		Title:       input.Form.Title,
		Description: input.Form.Description,
		ShareSlug:   uuid.NewString(),
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&form).Error; err != nil {
			return err
		}
		return insertQuestionTree(tx, form.ID, input.Questions)
	})
	if err != nil {
		return nil, err
	}

	return s.GetFormByID(form.ID)
}

// UpdateForm replaces the form's entire question/option subtree with the
// submitted one. Question and option ids are not preserved across an
// update; answers stored against the old ids stop resolving.
func (s *FormService) UpdateForm(formID, ownerID uint, input CreateFormInput) (*models.Form, error) {
	form, err := s.getOwnedForm(formID, ownerID)
	if err != nil {
		return nil, err
	}

	if err := input.validate(); err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		form.Title = input.Form.Title
		form.Description = input.Form.Description
		if err := tx.Model(form).Select("title", "description").Updates(form).Error; err != nil {
			return err
		}
		if err := deleteQuestionTree(tx, formID); err != nil {
			return err
		}
		return insertQuestionTree(tx, formID, input.Questions)
	})
	if err != nil {
		return nil, err
	}

	return s.GetFormByID(formID)
}

func (s *FormService) DeleteForm(formID, ownerID uint) error {
	if _, err := s.getOwnedForm(formID, ownerID); err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := deleteQuestionTree(tx, formID); err != nil {
			return err
		}
		if err := tx.Where("form_id = ?", formID).Delete(&models.Response{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Form{}, formID).Error
	})
}

func (s *FormService) GetFormByID(formID uint) (*models.Form, error) {
	return s.getForm("id = ?", formID)
}

func (s *FormService) GetFormBySlug(slug string) (*models.Form, error) {
	return s.getForm("share_slug = ?", slug)
}

func (s *FormService) getForm(query string, arg interface{}) (*models.Form, error) {
	var form models.Form
	err := s.db.Where(query, arg).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_num ASC")
		}).
		Preload("Questions.Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_num ASC")
		}).
		First(&form).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := s.db.Model(&models.Response{}).
		Where("form_id = ?", form.ID).
		Count(&form.ResponseCount).Error; err != nil {
		return nil, err
	}

	return &form, nil
}

// GetFormsByOwner returns the owner's forms newest first. Response
// counts come from one grouped query instead of a count per form.
// The result is never nil so an empty list encodes as [] on the wire.
func (s *FormService) GetFormsByOwner(ownerID uint) ([]models.Form, error) {
	forms := []models.Form{}
	err := s.db.Where("user_id = ?", ownerID).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_num ASC")
		}).
		Preload("Questions.Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_num ASC")
		}).
		Order("created_at DESC").
		Find(&forms).Error
	if err != nil {
		return nil, err
	}
	if len(forms) == 0 {
		return forms, nil
	}

	formIDs := make([]uint, len(forms))
	for i, f := range forms {
		formIDs[i] = f.ID
	}

	type formCount struct {
		FormID uint
		Count  int64
	}
	var counts []formCount
	err = s.db.Model(&models.Response{}).
		Select("form_id, COUNT(*) as count").
		Where("form_id IN ?", formIDs).
		Group("form_id").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}

	countByForm := make(map[uint]int64, len(counts))
	for _, c := range counts {
		countByForm[c.FormID] = c.Count
	}
	for i := range forms {
		forms[i].ResponseCount = countByForm[forms[i].ID]
	}

	return forms, nil
}

// getOwnedForm loads a form and rejects callers that do not own it.
// Every mutation and private read goes through this gate.
func (s *FormService) getOwnedForm(formID, ownerID uint) (*models.Form, error) {
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
	return &form, nil
}

// insertQuestionTree writes the submitted questions and their options in
// input order, with order_num reflecting position.
func insertQuestionTree(tx *gorm.DB, formID uint, questions []QuestionInput) error {
	for i, q := range questions {
		question := models.Question{
			FormID:   formID,
			Text:     q.Text,
			Type:     q.Type,
			Required: q.Required,
			OrderNum: i,
		}
		if err := tx.Create(&question).Error; err != nil {
			return err
		}

		if q.Type != models.QuestionTypeDropdown {
			continue
		}
		orderNum := 0
		for _, text := range q.Options {
			if strings.TrimSpace(text) == "" {
				continue
			}
			opt := models.Option{
				QuestionID: question.ID,
				Text:       text,
				OrderNum:   orderNum,
			}
			if err := tx.Create(&opt).Error; err != nil {
				return err
			}
			orderNum++
		}
	}
	return nil
}

func deleteQuestionTree(tx *gorm.DB, formID uint) error {
	err := tx.Where("question_id IN (SELECT id FROM questions WHERE form_id = ?)", formID).
		Delete(&models.Option{}).Error
	if err != nil {
		return err
	}
	return tx.Where("form_id = ?", formID).Delete(&models.Question{}).Error
}

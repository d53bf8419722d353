package services

import (
	"testing"
	"time"

	"github.com/Kumarankit101/Forms/internal/models"

	"github.com/stretchr/testify/require"
)

func TestCreateFormTree(t *testing.T) {
	db := newTestDB(t)
	svc := NewFormService(db)
	owner := seedUser(t, db, "owner")

	form, err := svc.CreateForm(owner.ID, sampleFormInput())
	require.NoError(t, err)

	require.Equal(t, owner.ID, form.UserID)
	require.Equal(t, "Customer Survey", form.Title)
	require.NotEmpty(t, form.ShareSlug)
	require.EqualValues(t, 0, form.ResponseCount)

	require.Len(t, form.Questions, 2)
	require.Equal(t, "Name", form.Questions[0].Text)
	require.Equal(t, models.QuestionTypeText, form.Questions[0].Type)
	require.True(t, form.Questions[0].Required)
	require.Equal(t, 0, form.Questions[0].OrderNum)
	require.Empty(t, form.Questions[0].Options)

	require.Equal(t, "Color", form.Questions[1].Text)
	require.Equal(t, 1, form.Questions[1].OrderNum)
	require.Len(t, form.Questions[1].Options, 2)
	require.Equal(t, "Red", form.Questions[1].Options[0].Text)
	require.Equal(t, "Blue", form.Questions[1].Options[1].Text)
	require.Equal(t, 0, form.Questions[1].Options[0].OrderNum)
	require.Equal(t, 1, form.Questions[1].Options[1].OrderNum)
}

func TestCreateFormValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewFormService(db)
	owner := seedUser(t, db, "owner")

	cases := []struct {
		name  string
		input CreateFormInput
		field string
	}{
		{
			"blank title",
			CreateFormInput{
				Form:      FormInput{Title: "   "},
				Questions: []QuestionInput{{Text: "Q", Type: "text"}},
			},
			"form.title",
		},
		{
			"no questions",
			CreateFormInput{
				Form: FormInput{Title: "T"},
			},
			"questions",
		},
		{
			"blank question text",
			CreateFormInput{
				Form:      FormInput{Title: "T"},
				Questions: []QuestionInput{{Text: "", Type: "text"}},
			},
			"questions[0].text",
		},
		{
			"unknown type",
			CreateFormInput{
				Form:      FormInput{Title: "T"},
				Questions: []QuestionInput{{Text: "Q", Type: "checkbox"}},
			},
			"questions[0].type",
		},
		{
			"dropdown without options",
			CreateFormInput{
				Form:      FormInput{Title: "T"},
				Questions: []QuestionInput{{Text: "Q", Type: "dropdown"}},
			},
			"questions[0].options",
		},
		{
			"dropdown with only blank options",
			CreateFormInput{
				Form:      FormInput{Title: "T"},
				Questions: []QuestionInput{{Text: "Q", Type: "dropdown", Options: []string{" ", ""}}},
			},
			"questions[0].options",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateForm(owner.ID, tc.input)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			require.Contains(t, verr.Fields, tc.field)
		})
	}

	// Validation fails fast: nothing may have been written.
	var count int64
	require.NoError(t, db.Model(&models.Form{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestUpdateFormReplacesTree(t *testing.T) {
	db := newTestDB(t)
	svc := NewFormService(db)
	owner := seedUser(t, db, "owner")

	form, err := svc.CreateForm(owner.ID, sampleFormInput())
	require.NoError(t, err)

	oldQuestionIDs := []uint{form.Questions[0].ID, form.Questions[1].ID}

	updated, err := svc.UpdateForm(form.ID, owner.ID, CreateFormInput{
		Form: FormInput{Title: "Renamed", Description: "new description"},
		Questions: []QuestionInput{
			{Text: "Only question", Type: models.QuestionTypeText},
		},
	})
	require.NoError(t, err)

	require.Equal(t, "Renamed", updated.Title)
	require.Equal(t, "new description", updated.Description)
	require.Equal(t, owner.ID, updated.UserID, "owner must not change on update")
	require.Len(t, updated.Questions, 1)
	require.Equal(t, "Only question", updated.Questions[0].Text)
	require.NotContains(t, oldQuestionIDs, updated.Questions[0].ID, "question ids are never preserved")

	// The old subtree is gone entirely, options included.
	var qCount, oCount int64
	require.NoError(t, db.Model(&models.Question{}).Where("form_id = ?", form.ID).Count(&qCount).Error)
	require.NoError(t, db.Model(&models.Option{}).Count(&oCount).Error)
	require.EqualValues(t, 1, qCount)
	require.EqualValues(t, 0, oCount)
}

func TestUpdateFormOwnershipGate(t *testing.T) {
	db := newTestDB(t)
	svc := NewFormService(db)
	owner := seedUser(t, db, "owner")
	intruder := seedUser(t, db, "intruder")

	form, err := svc.CreateForm(owner.ID, sampleFormInput())
	require.NoError(t, err)

	_, err = svc.UpdateForm(form.ID, intruder.ID, CreateFormInput{
		Form:      FormInput{Title: "Hijacked"},
		Questions: []QuestionInput{{Text: "Q", Type: "text"}},
	})
	require.ErrorIs(t, err, ErrForbidden)

	// The stored form is untouched.
	got, err := svc.GetFormByID(form.ID)
	require.NoError(t, err)
	require.Equal(t, "Customer Survey", got.Title)
	require.Len(t, got.Questions, 2)

	_, err = svc.UpdateForm(99999, owner.ID, sampleFormInput())
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateFormRollsBackOnMidReplaceFailure(t *testing.T) {
	db := newTestDB(t)
	svc := NewFormService(db)
	owner := seedUser(t, db, "owner")

	form, err := svc.CreateForm(owner.ID, sampleFormInput())
	require.NoError(t, err)

	// Fail the replace partway through: the old subtree is already
	// deleted and the first option row inserted when this fires.
	require.NoError(t, db.Exec(`
		CREATE TRIGGER fail_option_insert BEFORE INSERT ON options
		WHEN NEW.text = 'boom'
		BEGIN SELECT RAISE(ABORT, 'injected insert failure'); END
	`).Error)

	_, err = svc.UpdateForm(form.ID, owner.ID, CreateFormInput{
		Form: FormInput{Title: "Replaced"},
		Questions: []QuestionInput{
			{Text: "Pick", Type: models.QuestionTypeDropdown, Options: []string{"ok", "boom"}},
		},
	})
	require.Error(t, err)

	// All-or-nothing: the interrupted replace must leave the stored
	// form exactly as it was, scalars included.
	got, err := svc.GetFormByID(form.ID)
	require.NoError(t, err)
	require.Equal(t, "Customer Survey", got.Title)
	require.Len(t, got.Questions, 2)
	require.Equal(t, "Name", got.Questions[0].Text)
	require.Equal(t, "Color", got.Questions[1].Text)
	require.Len(t, got.Questions[1].Options, 2)

	var orphaned int64
	require.NoError(t, db.Model(&models.Question{}).Where("text = ?", "Pick").Count(&orphaned).Error)
	require.Zero(t, orphaned, "no rows from the failed replace may survive")
}

func TestDeleteFormCascades(t *testing.T) {
	db := newTestDB(t)
	svc := NewFormService(db)
	responses := NewResponseService(db)
	owner := seedUser(t, db, "owner")
	intruder := seedUser(t, db, "intruder")

	form, err := svc.CreateForm(owner.ID, sampleFormInput())
	require.NoError(t, err)

	_, err = responses.Submit(form.ID, map[string]string{"1": "hello"})
	require.NoError(t, err)

	require.ErrorIs(t, svc.DeleteForm(form.ID, intruder.ID), ErrForbidden)
	require.ErrorIs(t, svc.DeleteForm(99999, owner.ID), ErrNotFound)

	require.NoError(t, svc.DeleteForm(form.ID, owner.ID))

	_, err = svc.GetFormByID(form.ID)
	require.ErrorIs(t, err, ErrNotFound)

	for _, model := range []interface{}{&models.Question{}, &models.Option{}, &models.Response{}} {
		var count int64
		require.NoError(t, db.Model(model).Count(&count).Error)
		require.Zero(t, count)
	}
}

func TestGetFormByIDIsPublic(t *testing.T) {
	db := newTestDB(t)
	svc := NewFormService(db)
	owner := seedUser(t, db, "owner")

	form, err := svc.CreateForm(owner.ID, sampleFormInput())
	require.NoError(t, err)

	// No owner id involved: anyone holding the id can read the tree.
	got, err := svc.GetFormByID(form.ID)
	require.NoError(t, err)
	require.Len(t, got.Questions, 2)

	bySlug, err := svc.GetFormBySlug(form.ShareSlug)
	require.NoError(t, err)
	require.Equal(t, form.ID, bySlug.ID)

	_, err = svc.GetFormBySlug("no-such-slug")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestGetFormsByOwner(t *testing.T) {
	db := newTestDB(t)
	svc := NewFormService(db)
	responses := NewResponseService(db)
	owner := seedUser(t, db, "owner")
	other := seedUser(t, db, "other")

	first, err := svc.CreateForm(owner.ID, sampleFormInput())
	require.NoError(t, err)
	second, err := svc.CreateForm(owner.ID, CreateFormInput{
		Form:      FormInput{Title: "Second"},
		Questions: []QuestionInput{{Text: "Q", Type: "text"}},
	})
	require.NoError(t, err)
	_, err = svc.CreateForm(other.ID, sampleFormInput())
	require.NoError(t, err)

	// Pin creation times so newest-first ordering is deterministic.
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, db.Model(&models.Form{}).Where("id = ?", first.ID).Update("created_at", base).Error)
	require.NoError(t, db.Model(&models.Form{}).Where("id = ?", second.ID).Update("created_at", base.Add(time.Hour)).Error)

	for i := 0; i < 3; i++ {
		_, err = responses.Submit(first.ID, map[string]string{"1": "a"})
		require.NoError(t, err)
	}

	forms, err := svc.GetFormsByOwner(owner.ID)
	require.NoError(t, err)
	require.Len(t, forms, 2)
	require.Equal(t, second.ID, forms[0].ID)
	require.Equal(t, first.ID, forms[1].ID)

	// Batched counts agree with the per-form count.
	require.EqualValues(t, 0, forms[0].ResponseCount)
	require.EqualValues(t, 3, forms[1].ResponseCount)
	count, err := responses.CountByForm(first.ID)
	require.NoError(t, err)
	require.Equal(t, forms[1].ResponseCount, count)

	// An owner with no forms gets an empty slice, not nil, so the
	// list endpoint serializes to [] rather than null.
	empty, err := svc.GetFormsByOwner(99999)
	require.NoError(t, err)
	require.NotNil(t, empty)
	require.Empty(t, empty)
}

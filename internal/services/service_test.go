package services

import (
	"fmt"
	"testing"

	"github.com/Kumarankit101/Forms/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a per-test in-memory sqlite database with the full
// schema migrated. cache=shared keeps the pool's connections on the
// same database for the lifetime of the test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Form{},
		&models.Question{},
		&models.Option{},
		&models.Response{},
	)
	require.NoError(t, err)

	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	user := models.User{Username: username, PasswordHash: "x.y"}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func sampleFormInput() CreateFormInput {
	return CreateFormInput{
		Form: FormInput{Title: "Customer Survey", Description: "Tell us what you think"},
		Questions: []QuestionInput{
			{Text: "Name", Type: models.QuestionTypeText, Required: true},
			{Text: "Color", Type: models.QuestionTypeDropdown, Options: []string{"Red", "Blue"}},
		},
	}
}

package models

import (
	"time"

	"gorm.io/datatypes"
)

// Answers maps a question id (stringified) to the respondent's answer
// text. Keys are not revalidated against current questions on read:
// after a form edit the old keys simply no longer match any question.
type Response struct {
	ID        uint              `gorm:"primaryKey" json:"id"`
	FormID    uint              `gorm:"not null;index" json:"form_id"`
	Answers   datatypes.JSONMap `gorm:"not null" json:"answers"`
	CreatedAt time.Time         `json:"created_at"`
}

package models

type Question struct {
	ID       uint     `gorm:"primaryKey" json:"id"`
	FormID   uint     `gorm:"not null;index" json:"form_id"`
	Text     string   `gorm:"type:text;not null" json:"text"`
	Type     string   `gorm:"size:20;not null;default:'text'" json:"type"`
	Required bool     `gorm:"not null;default:false" json:"required"`
	OrderNum int      `gorm:"not null" json:"order"`
	Options  []Option `gorm:"foreignKey:QuestionID" json:"options,omitempty"`
}

const (
	QuestionTypeText     = "text"
	QuestionTypeDropdown = "dropdown"
)

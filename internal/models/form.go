package models

import "time"

type Form struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	UserID      uint       `gorm:"not null;index" json:"user_id"`
	User        User       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Description string     `gorm:"type:text" json:"description,omitempty"`
	ShareSlug   string     `gorm:"size:36;uniqueIndex" json:"share_slug"`
	Questions   []Question `gorm:"foreignKey:FormID" json:"questions,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`

	// Computed on read, never stored.
	ResponseCount int64 `gorm:"-" json:"response_count"`
}

package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	AnnouncementPriorityLow    = "low"
	AnnouncementPriorityMedium = "medium"
	AnnouncementPriorityHigh   = "high"
)

type Announcement struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title    string `gorm:"size:255" json:"title"`
	Content  string `gorm:"type:text" json:"content"`
	Priority string `gorm:"size:10;default:medium;index" json:"priority"`

	PublishedBy uint `gorm:"column:published_by" json:"publishedBy"`
	IsActive    bool `gorm:"column:is_active;default:true;index" json:"isActive"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Publisher User `gorm:"foreignKey:PublishedBy;references:ID" json:"publisher,omitempty"`
}

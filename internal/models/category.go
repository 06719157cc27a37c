package models

import (
	"time"

	"gorm.io/gorm"
)

// Category is a thematic grouping of posts, addressed by slug. Unpublishing
// a category hides every post in it from public listings.
type Category struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Title       string         `gorm:"not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	Slug        string         `gorm:"unique;not null;index" json:"slug"`
	IsPublished bool           `gorm:"default:true" json:"is_published"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
	Posts       []Post         `gorm:"foreignKey:CategoryID" json:"posts,omitempty"`
}

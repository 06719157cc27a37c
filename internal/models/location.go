package models

import (
	"time"

	"gorm.io/gorm"
)

// Location is a place a post can be tagged with. An unpublished location is
// omitted from post payloads but does not hide the post itself.
type Location struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"not null" json:"name"`
	IsPublished bool           `gorm:"default:true" json:"is_published"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
	Posts       []Post         `gorm:"foreignKey:LocationID" json:"posts,omitempty"`
}

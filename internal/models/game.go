package models

import "time"

// Game represents a catalog entry.
//
// Rows are hard-deleted, so no gorm.Model soft-delete column: a deleted
// title must be creatable again without tripping the unique index.
type Game struct {
	ID          uint     `gorm:"primaryKey" json:"id"`
	Title       string   `gorm:"size:120;uniqueIndex;not null" json:"title"`
	Genre       *string  `gorm:"size:80" json:"genre"`
	URL         *string  `gorm:"size:255" json:"url"`
	ImageURL    *string  `gorm:"size:255" json:"image_url"`
	Description *string  `gorm:"type:text" json:"description"`
	Rating      *float64 `json:"rating"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

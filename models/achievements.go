package models

import "time"

// Achievement is a portfolio item shown in the gallery. Image holds the
// locator exactly as served to the client, either /uploads/<name> or a
// data URI depending on the active storage strategy, and never changes
// after creation.
type Achievement struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description" validate:"required"`
	Category    string    `gorm:"default:Other" json:"category"`
	Image       string    `json:"img"`
	Likes       uint      `gorm:"not null;default:0" json:"likes"`
	Liked       bool      `gorm:"not null;default:false" json:"liked"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

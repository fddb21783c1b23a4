package model

import "time"

const (
	MediaImage = "image"
	MediaVideo = "video"
)

type GalleryItem struct {
	ID          uint64 `gorm:"primaryKey"`
	Title       string `gorm:"size:200;not null"`
	Description string `gorm:"type:text"`
	MediaURL    string `gorm:"size:255"`
	MediaType   string `gorm:"size:16"` // image / video
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

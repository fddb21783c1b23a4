package model

import "time"

type AboutEntry struct {
	ID          uint64 `gorm:"primaryKey"`
	Title       string `gorm:"size:200;not null"`
	Description string `gorm:"type:text"`
	ImageURL    string `gorm:"size:255"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

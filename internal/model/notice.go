package model

import "time"

type Notice struct {
	ID          uint64 `gorm:"primaryKey"`
	Date        string `gorm:"size:32;not null"`
	Title       string `gorm:"size:200;not null"`
	Description string `gorm:"type:text"`
	Link        string `gorm:"size:255"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

package model

import "time"

const MaxAchievementTags = 5

type Achievement struct {
	ID               uint64 `gorm:"primaryKey"`
	Title            string `gorm:"size:200;not null"`
	ShortDescription string `gorm:"type:text"`
	Date             string `gorm:"size:32"`
	Link             string `gorm:"size:255"`

	Tags []string `gorm:"serializer:json"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

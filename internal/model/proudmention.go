package model

import "time"

const MaxMentionTags = 3

type ProudMention struct {
	ID               uint64 `gorm:"primaryKey"`
	Name             string `gorm:"size:100;not null"`
	ShortDescription string `gorm:"type:text"`

	Tags []string `gorm:"serializer:json"`

	ImageURL string `gorm:"size:255"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

package model

import "time"

type Executive struct {
	ID          uint64 `gorm:"primaryKey"`
	Name        string `gorm:"size:100;not null"`
	Designation string `gorm:"size:100;not null"`
	Session     string `gorm:"size:32"`
	Email       string `gorm:"size:64"`
	Phone       string `gorm:"size:32"`
	ImageURL    string `gorm:"size:255"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SeniorExecutive 历届执行成员，独立表，结构与现任相同
type SeniorExecutive struct {
	ID          uint64 `gorm:"primaryKey"`
	Name        string `gorm:"size:100;not null"`
	Designation string `gorm:"size:100;not null"`
	Session     string `gorm:"size:32"`
	Email       string `gorm:"size:64"`
	Phone       string `gorm:"size:32"`
	ImageURL    string `gorm:"size:255"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

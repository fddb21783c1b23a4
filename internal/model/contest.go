package model

import "time"

const (
	ContestWeeklyLong    = "weekly-long"
	ContestJKKNIUWeekly  = "jkkniu-weekly"
	ContestJKKNIUMonthly = "jkkniu-monthly"
	ContestTeamFormation = "team-formation"
)

const (
	ContestUpcoming = "upcoming"
	ContestActive   = "active"
	ContestEnded    = "ended"
)

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Contest 只增不改：没有 update/delete 路径
type Contest struct {
	ID         uint64 `gorm:"primaryKey"`
	Name       string `gorm:"size:200;not null"`
	Topic      string `gorm:"size:200"`
	Type       string `gorm:"size:32;not null"`
	Status     string `gorm:"size:16;not null"`
	Difficulty string `gorm:"size:16;not null"`

	// 2~3 条学习资源链接
	LearningResources []string `gorm:"serializer:json"`

	StartTime time.Time `gorm:"not null"`
	EndTime   time.Time `gorm:"not null"`
	CreatedAt time.Time
}

func ValidContestType(t string) bool {
	switch t {
	case ContestWeeklyLong, ContestJKKNIUWeekly, ContestJKKNIUMonthly, ContestTeamFormation:
		return true
	}
	return false
}

func ValidContestStatus(s string) bool {
	switch s {
	case ContestUpcoming, ContestActive, ContestEnded:
		return true
	}
	return false
}

func ValidDifficulty(d string) bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

package model

import "time"

const (
	RoleMember = 0
	RoleAdmin  = 1
)

type User struct {
	ID        uint64 `gorm:"primaryKey"`
	Email     string `gorm:"uniqueIndex;size:64;not null"`
	Password  string `gorm:"size:255;not null"`
	Role      int    `gorm:"default:0"` // 0=member 1=admin
	CreatedAt time.Time
	UpdatedAt time.Time
}

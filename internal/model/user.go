package model

import (
	"time"

	"questdo/internal/date"
)

// User holds the single profile the progression engine mutates. XP, Score and
// TotalTasksCompleted only ever grow; Rating rises and decays but never goes
// below zero.
type User struct {
	ID                  uint `gorm:"primaryKey"`
	Level               int  `gorm:"default:1"`
	XP                  int64
	Progress            float64
	Score               int64
	Rating              float64
	BestScoreEarned     int64
	DailyStreak         int
	DaysCompleted       int
	TasksCompletedToday int
	TotalTasksCompleted int64
	LastCompletionDate  date.Date `gorm:"type:text"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// NewUser returns the default profile used when nothing has been persisted
// yet.
func NewUser() User {
	return User{Level: 1}
}

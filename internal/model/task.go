package model

import (
	"time"

	"questdo/internal/date"
)

// RepeatInterval is the recurrence unit of a task. None marks a one-time task.
type RepeatInterval string

const (
	RepeatNone    RepeatInterval = "none"
	RepeatDaily   RepeatInterval = "daily"
	RepeatWeekly  RepeatInterval = "weekly"
	RepeatMonthly RepeatInterval = "monthly"
	RepeatYearly  RepeatInterval = "yearly"
)

// Valid reports whether r is one of the known intervals.
func (r RepeatInterval) Valid() bool {
	switch r {
	case RepeatNone, RepeatDaily, RepeatWeekly, RepeatMonthly, RepeatYearly:
		return true
	}
	return false
}

// IsRecurring reports whether r describes a repeating cadence.
func (r RepeatInterval) IsRecurring() bool {
	return r.Valid() && r != RepeatNone
}

// Task represents a single item in the tracker along with its progression
// state. OriginalDueDate is the immutable anchor for recurrence math; DueDate
// advances as recurring completions accumulate.
type Task struct {
	ID              string `gorm:"primaryKey"`
	Title           string
	DueDate         date.Date `gorm:"type:text"`
	OriginalDueDate date.Date `gorm:"type:text"`
	Priority        float64
	Difficulty      float64
	RepeatInterval  RepeatInterval `gorm:"type:text;default:none"`
	RepeatEvery     int            `gorm:"default:1"`
	TimesCompleted  int            `gorm:"default:0"`
	Streak          int            `gorm:"default:0"`
	Rank            int            `gorm:"default:1"`
	RankXP          int64          `gorm:"default:0"`
	RankProgress    float64        `gorm:"default:0"`
	IsCompleted     bool           `gorm:"default:false"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

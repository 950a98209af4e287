package engine

import (
	"questdo/internal/date"
	"questdo/internal/model"
)

// NextDueDate computes where a recurring task's due date lands after its
// timesCompleted-th completion. All arithmetic is anchored on the original
// due date rather than the previous due date, so month-end clamping never
// compounds: a task anchored on Jan 31 lands on Feb 28, then Mar 31, not
// Mar 28.
func NextDueDate(original date.Date, interval model.RepeatInterval, repeatEvery, timesCompleted int) date.Date {
	if repeatEvery < 1 {
		repeatEvery = 1
	}
	if timesCompleted < 0 {
		timesCompleted = 0
	}
	n := timesCompleted * repeatEvery

	switch interval {
	case model.RepeatDaily:
		return original.AddDays(n)
	case model.RepeatWeekly:
		return original.AddDays(n * 7)
	case model.RepeatMonthly:
		return original.AddMonths(n)
	case model.RepeatYearly:
		return original.AddYears(n)
	default:
		// One-time tasks have no recurrence; completion toggles the flag
		// instead of moving dates.
		return original
	}
}

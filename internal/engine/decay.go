package engine

import (
	"math"

	"questdo/internal/date"
	"questdo/internal/model"
)

// decayRating applies inactivity decay to the rating for every calendar day
// between the previous completion and today. Each simulated day subtracts
//
//	sqrt(rating) * (1 + ln(i+1)) * (1 + ln(overdue+1))
//
// where i is the day index and overdue counts open tasks whose due date is at
// or before that day. The rating is floored at zero after every step, and the
// sqrt reads the already-decayed value, so long gaps bite hard early and
// taper off.
func decayRating(rating float64, previousLast, today date.Date, tasks []*model.Task) float64 {
	if previousLast.IsZero() {
		return math.Max(rating, 0)
	}
	days := date.DaysBetween(previousLast, today)
	if days < 0 {
		days = 0
	}
	for i := 0; i < days; i++ {
		day := previousLast.AddDays(i)
		overdue := overdueTasksOn(day, tasks)
		loss := math.Sqrt(math.Max(rating, 0)) *
			(1 + math.Log(math.Max(float64(i+1), 1))) *
			(1 + math.Log(math.Max(float64(overdue+1), 1)))
		rating -= math.Max(loss, 0)
		rating = math.Max(rating, 0)
	}
	return rating
}

// overdueTasksOn counts open tasks due on or before the given day. Completed
// one-time tasks no longer exert decay pressure; recurring tasks always can.
func overdueTasksOn(day date.Date, tasks []*model.Task) int {
	count := 0
	for _, t := range tasks {
		if t.IsCompleted && !t.RepeatInterval.IsRecurring() {
			continue
		}
		if t.DueDate.IsZero() {
			continue
		}
		if !t.DueDate.After(day) {
			count++
		}
	}
	return count
}

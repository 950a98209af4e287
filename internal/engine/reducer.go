package engine

import (
	"fmt"
	"math"
	"time"

	"questdo/internal/date"
	"questdo/internal/model"
)

// Result reports what a single completion event produced, for the caller's
// notification channel. The engine itself never renders anything.
type Result struct {
	Task         model.Task
	XPGained     int64
	PointsGained int64
	RankXPGained int64
	RatingDelta  float64
	LeveledUp    bool
	RankedUp     bool
}

// CompleteTask dispatches a completion event for the given task, running the
// full reward computation and mutating both the task and the user in place.
//
// The steps are order-sensitive: streak and daily counters update before the
// curve lookups read them, rating decays before the completion's gain lands,
// and the level multiplier reads the level as it was before this event's XP.
//
// Toggling a completed one-time task back to open dispatches the same event
// and re-runs the whole computation; the reducer does not distinguish
// completion direction. That replay (and the reward it re-grants) is part of
// the existing contract.
func (s *State) CompleteTask(id string, now time.Time) (Result, error) {
	task, ok := s.tasks[id]
	if !ok {
		return Result{}, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	user := &s.User
	today := date.FromTime(now)
	ratingBefore := user.Rating

	// Steps 1-3: date and cadence multipliers.
	daysToDue := date.DaysBetween(today, task.DueDate)
	dateMult := dateMultiplier(daysToDue, now)
	repeatMult := repeatMultiplier(task.RepeatInterval, task.RepeatEvery)

	// Step 4: task streak. Overdue completions break it.
	if daysToDue < 0 {
		task.Streak = 0
	} else {
		task.Streak++
	}

	// Step 5: daily counters keyed on the gap since the last completion.
	prevLast := user.LastCompletionDate
	gap := -1
	if !prevLast.IsZero() {
		gap = date.DaysBetween(prevLast, today)
	}
	switch {
	case gap == 0:
		user.TasksCompletedToday++
	case gap == 1:
		user.DailyStreak++
		user.TasksCompletedToday = 1
		user.DaysCompleted++
	default:
		// First completion ever, or a gap of more than one day.
		user.DailyStreak = 1
		user.TasksCompletedToday = 1
		user.DaysCompleted++
	}
	user.LastCompletionDate = today

	// Step 6: inactivity decay, driven by the previous completion date.
	user.Rating = decayRating(user.Rating, prevLast, today, s.allTasks())

	// Step 7: curve lookups against the now-updated counters.
	streakMult := EvaluateCurve(CurveTaskStreak, float64(task.Streak))
	dailyStreakMult := EvaluateCurve(CurveDailyStreak, float64(user.DailyStreak))
	dayTasksMult := EvaluateCurve(CurveDayTasksCompleted, float64(user.TasksCompletedToday))
	daysCompletedMult := EvaluateCurve(CurveDaysCompleted, float64(user.DaysCompleted))
	rankMult := float64(RankForRating(user.Rating))

	// Step 8: rank XP and rank recompute.
	rankXPGain := int64(math.Floor(math.Pow(dateMult-1, 2) * 100 *
		math.Max(float64(task.Rank), 1) *
		math.Max(float64(task.Streak), 1) *
		repeatMult * (1 + rankMult/10)))
	if rankXPGain < 1 {
		rankXPGain = 1
	}
	task.RankXP += rankXPGain
	newRank := int(math.Floor(math.Pow((float64(task.RankXP)+0.5)/100, 0.25)))
	if newRank < 1 {
		newRank = 1
	}
	rankedUp := newRank > task.Rank
	task.Rank = newRank
	task.RankProgress = progressPercent(float64(task.RankXP)/100,
		math.Pow(float64(task.Rank), 4), math.Pow(float64(task.Rank+1), 4), task.Rank == 1)

	// Step 9: user XP.
	base := task.Difficulty * task.Priority * dateMult * repeatMult *
		streakMult * dailyStreakMult * dayTasksMult *
		(1 + float64(task.Rank)/10) * (1 + rankMult/10) * daysCompletedMult
	xpGain := int64(math.Floor(base))
	if xpGain < 1 {
		xpGain = 1
	}
	user.XP += xpGain

	// Step 10: rating gain, diluted by how much was already done today.
	lnTerm := math.Log(math.Max(user.Rating+100, 100))
	ratingGain := (10 + lnTerm*lnTerm) * repeatMult * math.Abs(dateMult-1) /
		math.Max(float64(user.TasksCompletedToday), 1)
	ratingGain = math.Max(ratingGain, 0)
	user.Rating = math.Max(user.Rating+ratingGain, 0)

	// Step 11: totals and the score-only multipliers. The level multiplier
	// reads the pre-event level; it is recomputed below.
	user.TotalTasksCompleted++
	tasksMult := EvaluateCurve(CurveTotalTasksCompleted, float64(user.TotalTasksCompleted))
	activeTasksMult := EvaluateCurve(CurveActiveTasks, float64(s.activeTaskCount()))
	levelMult := EvaluateCurve(CurveLevel, float64(user.Level))

	// Step 12: score.
	pointsGain := int64(math.Floor(base * levelMult * tasksMult * activeTasksMult))
	if pointsGain < 1 {
		pointsGain = 1
	}
	user.Score += pointsGain
	if pointsGain > user.BestScoreEarned {
		user.BestScoreEarned = pointsGain
	}

	// Step 13: level recompute.
	newLevel := int(math.Floor(math.Cbrt(float64(user.XP) + 0.5)))
	if newLevel < 1 {
		newLevel = 1
	}
	leveledUp := newLevel > user.Level
	user.Level = newLevel
	user.Progress = progressPercent(float64(user.XP),
		math.Pow(float64(user.Level), 3), math.Pow(float64(user.Level+1), 3), user.Level == 1)

	// Step 14: reschedule recurring tasks; toggle one-time tasks.
	if task.RepeatInterval.IsRecurring() {
		task.TimesCompleted++
		task.DueDate = NextDueDate(task.OriginalDueDate, task.RepeatInterval, task.RepeatEvery, task.TimesCompleted)
	} else {
		task.IsCompleted = !task.IsCompleted
	}

	return Result{
		Task:         *task,
		XPGained:     xpGain,
		PointsGained: pointsGain,
		RankXPGained: rankXPGain,
		RatingDelta:  user.Rating - ratingBefore,
		LeveledUp:    leveledUp,
		RankedUp:     rankedUp,
	}, nil
}

// dateMultiplier scores the timing of a completion. Early completions earn a
// mild bonus that shrinks with distance, same-day completions earn 2x-4x
// depending on how much of the day is left, and overdue completions collapse
// toward zero the later they come.
func dateMultiplier(daysToDue int, now time.Time) float64 {
	switch {
	case daysToDue < 0:
		d := daysToDue - 1
		if d > -1 {
			d = -1
		}
		return -2 / float64(d)
	case daysToDue == 0:
		return 4 / (1 + fractionOfDayRemaining(now))
	default:
		return 1 + 1/math.Max(1, float64(daysToDue+1))
	}
}

// fractionOfDayRemaining is in [0,1]: 1 at midnight, 0 at the end of the day.
func fractionOfDayRemaining(now time.Time) float64 {
	end := date.FromTime(now).EndOfDay(now.Location())
	frac := end.Sub(now).Seconds() / (24 * time.Hour).Seconds()
	return math.Min(math.Max(frac, 0), 1)
}

// repeatCadence anchors: the multiplier interpolates from 1x at a daily
// cadence through each unit boundary toward 5x, the one-time reward.
var repeatCadence = stagedCurve{points: []curvePoint{
	{1, 1}, {7, 2}, {30, 3}, {365, 4}, {3650, 5},
}}

// repeatMultiplier rewards long cadences: a task you only face once a year
// is worth more per completion than a daily one. One-time tasks always earn
// exactly 5x.
func repeatMultiplier(interval model.RepeatInterval, repeatEvery int) float64 {
	if !interval.IsRecurring() {
		return 5
	}
	if repeatEvery < 1 {
		repeatEvery = 1
	}
	days := repeatEvery
	switch interval {
	case model.RepeatWeekly:
		days = repeatEvery * 7
	case model.RepeatMonthly:
		days = repeatEvery * 30
	case model.RepeatYearly:
		days = repeatEvery * 365
	}
	return repeatCadence.evaluate(float64(days))
}

// progressPercent places value between lo and hi as a percentage. The first
// level and rank measure from zero so a fresh record starts at 0% rather
// than negative.
func progressPercent(value, lo, hi float64, firstTier bool) float64 {
	if firstTier {
		lo = 0
	}
	if hi <= lo {
		return 0
	}
	return (value - lo) / (hi - lo) * 100
}

package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"questdo/internal/date"
	"questdo/internal/model"
	"questdo/internal/repository"
)

// ReminderService builds human-readable summaries for daily notifications.
type ReminderService struct {
	userRepo *repository.UserRepository
	taskRepo *repository.TaskRepository
}

func NewReminderService(userRepo *repository.UserRepository, taskRepo *repository.TaskRepository) *ReminderService {
	return &ReminderService{userRepo: userRepo, taskRepo: taskRepo}
}

// DailySummary lists open tasks sorted by due date, flags overdue ones, and
// reports the streak status for the day.
func (s *ReminderService) DailySummary(ctx context.Context, now time.Time) (string, error) {
	user, _, err := s.userRepo.Load(ctx)
	if err != nil {
		return "", err
	}
	tasks, err := s.taskRepo.LoadAll(ctx)
	if err != nil {
		return "", err
	}
	today := date.FromTime(now)

	var open []model.Task
	for _, task := range tasks {
		if task.IsCompleted && !task.RepeatInterval.IsRecurring() {
			continue
		}
		open = append(open, task)
	}
	sort.SliceStable(open, func(i, j int) bool {
		return open[i].DueDate.Before(open[j].DueDate)
	})

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("Daily summary for %s\n\n", today))

	if len(open) == 0 {
		builder.WriteString("No open tasks. Enjoy the quiet.\n")
	} else {
		builder.WriteString("Open tasks:\n")
		for _, task := range open {
			builder.WriteString(formatTaskLine(task, today))
		}
	}

	builder.WriteString(fmt.Sprintf("\nLevel %d · %d XP · rating %.0f\n", user.Level, user.XP, user.Rating))
	switch {
	case user.LastCompletionDate.Equal(today):
		builder.WriteString(fmt.Sprintf("Daily streak: %d (secured for today)\n", user.DailyStreak))
	case user.DailyStreak > 0:
		builder.WriteString(fmt.Sprintf("Daily streak: %d — complete a task today to keep it\n", user.DailyStreak))
	default:
		builder.WriteString("No daily streak yet — complete a task to start one\n")
	}

	return strings.TrimSpace(builder.String()), nil
}

func formatTaskLine(task model.Task, today date.Date) string {
	var sb strings.Builder

	marker := " "
	daysToDue := date.DaysBetween(today, task.DueDate)
	switch {
	case daysToDue < 0:
		marker = "!"
	case daysToDue == 0:
		marker = "*"
	}

	sb.WriteString(fmt.Sprintf("  [%s] %s", marker, strings.TrimSpace(task.Title)))
	switch {
	case daysToDue < 0:
		sb.WriteString(fmt.Sprintf(" — due %s, overdue by %d day(s)", task.DueDate, -daysToDue))
	case daysToDue == 0:
		sb.WriteString(" — due today")
	default:
		sb.WriteString(fmt.Sprintf(" — due %s, %d day(s) left", task.DueDate, daysToDue))
	}

	if task.RepeatInterval.IsRecurring() {
		sb.WriteString(fmt.Sprintf(" (repeats %s", task.RepeatInterval))
		if task.RepeatEvery > 1 {
			sb.WriteString(fmt.Sprintf(" x%d", task.RepeatEvery))
		}
		sb.WriteString(")")
	}
	if task.Streak > 1 {
		sb.WriteString(fmt.Sprintf(" · streak %d", task.Streak))
	}

	sb.WriteByte('\n')
	return sb.String()
}

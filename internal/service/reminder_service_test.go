package service

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"questdo/internal/date"
	"questdo/internal/model"
	"questdo/internal/repository"
)

func newTestRepos(t *testing.T) (*repository.UserRepository, *repository.TaskRepository) {
	t.Helper()
	db, err := repository.NewDB(filepath.Join(t.TempDir(), "questdo.db"))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return repository.NewUserRepository(db), repository.NewTaskRepository(db)
}

func TestDailySummaryEmptyStore(t *testing.T) {
	userRepo, taskRepo := newTestRepos(t)
	svc := NewReminderService(userRepo, taskRepo)

	now := time.Date(2026, time.August, 28, 9, 0, 0, 0, time.UTC)
	summary, err := svc.DailySummary(context.Background(), now)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if !strings.Contains(summary, "No open tasks") {
		t.Fatalf("summary missing empty-state line:\n%s", summary)
	}
	if !strings.Contains(summary, "Level 1") {
		t.Fatalf("summary missing default stats:\n%s", summary)
	}
}

func TestDailySummaryFlagsOverdueAndSkipsCompleted(t *testing.T) {
	userRepo, taskRepo := newTestRepos(t)
	svc := NewReminderService(userRepo, taskRepo)
	ctx := context.Background()

	now := time.Date(2026, time.August, 28, 9, 0, 0, 0, time.UTC)
	today := date.FromTime(now)
	tasks := []model.Task{
		{ID: "overdue", Title: "pay rent", DueDate: today.AddDays(-3), OriginalDueDate: today.AddDays(-3),
			Priority: 1, Difficulty: 1, RepeatInterval: model.RepeatNone, RepeatEvery: 1, Rank: 1},
		{ID: "later", Title: "dentist", DueDate: today.AddDays(5), OriginalDueDate: today.AddDays(5),
			Priority: 1, Difficulty: 1, RepeatInterval: model.RepeatNone, RepeatEvery: 1, Rank: 1},
		{ID: "done", Title: "old chore", DueDate: today, OriginalDueDate: today,
			Priority: 1, Difficulty: 1, RepeatInterval: model.RepeatNone, RepeatEvery: 1, Rank: 1, IsCompleted: true},
		{ID: "habit", Title: "stretch", DueDate: today, OriginalDueDate: today,
			Priority: 1, Difficulty: 1, RepeatInterval: model.RepeatDaily, RepeatEvery: 1, Rank: 1, Streak: 4},
	}
	if err := taskRepo.ReplaceAll(ctx, tasks); err != nil {
		t.Fatalf("seed tasks: %v", err)
	}

	summary, err := svc.DailySummary(ctx, now)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}

	if !strings.Contains(summary, "overdue by 3 day(s)") {
		t.Fatalf("overdue marker missing:\n%s", summary)
	}
	if strings.Contains(summary, "old chore") {
		t.Fatalf("completed one-time task should not appear:\n%s", summary)
	}
	if !strings.Contains(summary, "repeats daily") || !strings.Contains(summary, "streak 4") {
		t.Fatalf("recurring annotations missing:\n%s", summary)
	}
	// Sorted by due date: the overdue task comes first.
	if strings.Index(summary, "pay rent") > strings.Index(summary, "dentist") {
		t.Fatalf("tasks not sorted by due date:\n%s", summary)
	}
}

func TestDailySummaryStreakStatus(t *testing.T) {
	userRepo, taskRepo := newTestRepos(t)
	svc := NewReminderService(userRepo, taskRepo)
	ctx := context.Background()
	now := time.Date(2026, time.August, 28, 9, 0, 0, 0, time.UTC)

	user := model.NewUser()
	user.DailyStreak = 6
	user.LastCompletionDate = date.FromTime(now)
	if err := userRepo.Save(ctx, user); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	summary, err := svc.DailySummary(ctx, now)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if !strings.Contains(summary, "Daily streak: 6 (secured for today)") {
		t.Fatalf("secured streak line missing:\n%s", summary)
	}

	// Yesterday's completion means the streak is at risk.
	user.LastCompletionDate = date.FromTime(now).AddDays(-1)
	if err := userRepo.Save(ctx, user); err != nil {
		t.Fatalf("update user: %v", err)
	}
	summary, err = svc.DailySummary(ctx, now)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if !strings.Contains(summary, "complete a task today to keep it") {
		t.Fatalf("at-risk streak line missing:\n%s", summary)
	}
}

func TestBuildDailySpec(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"09:00", "0 0 9 * * *", false},
		{"23:59", "0 59 23 * * *", false},
		{"24:00", "", true},
		{"12:60", "", true},
		{"noon", "", true},
	}
	for _, tt := range tests {
		got, err := buildDailySpec(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("buildDailySpec(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("buildDailySpec(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("buildDailySpec(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"gorm.io/gorm"

	"questdo/internal/date"
	"questdo/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := NewDB(filepath.Join(t.TempDir(), "questdo.db"))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func TestUserRepositoryAbsentLoad(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	user, found, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if found {
		t.Fatal("empty store should report absent")
	}
	if user.Level != 1 {
		t.Fatalf("default level = %d, want 1", user.Level)
	}
}

func TestUserRepositoryRoundTrip(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	user := model.NewUser()
	user.XP = 420
	user.Level = 7
	user.Rating = 133.7
	user.DailyStreak = 3
	user.LastCompletionDate = date.New(2026, time.August, 27)

	if err := repo.Save(ctx, user); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, found, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !found {
		t.Fatal("expected stored user")
	}
	if got.XP != 420 || got.Level != 7 || got.DailyStreak != 3 {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if !got.LastCompletionDate.Equal(user.LastCompletionDate) {
		t.Fatalf("lastCompletionDate = %s, want %s", got.LastCompletionDate, user.LastCompletionDate)
	}

	// Saving again is a whole-record replacement, not an append.
	got.XP = 999
	if err := repo.Save(ctx, got); err != nil {
		t.Fatalf("second save: %v", err)
	}
	again, _, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if again.XP != 999 {
		t.Fatalf("xp after replace = %d, want 999", again.XP)
	}
}

func TestTaskRepositoryReplaceAll(t *testing.T) {
	repo := NewTaskRepository(newTestDB(t))
	ctx := context.Background()

	tasks, err := repo.LoadAll(ctx)
	if err != nil {
		t.Fatalf("load empty: %v", err)
	}
	if len(tasks) != 0 {
		t.Fatalf("expected empty store, got %d tasks", len(tasks))
	}

	due := date.New(2026, time.September, 1)
	base := time.Date(2026, time.August, 20, 10, 0, 0, 0, time.UTC)
	snapshot := []model.Task{
		{ID: "a", Title: "first", DueDate: due, OriginalDueDate: due, Priority: 1, Difficulty: 1,
			RepeatInterval: model.RepeatNone, RepeatEvery: 1, Rank: 1, CreatedAt: base},
		{ID: "b", Title: "second", DueDate: due, OriginalDueDate: due, Priority: 2, Difficulty: 3,
			RepeatInterval: model.RepeatWeekly, RepeatEvery: 2, Rank: 1, CreatedAt: base.Add(time.Second)},
	}
	if err := repo.ReplaceAll(ctx, snapshot); err != nil {
		t.Fatalf("replace: %v", err)
	}

	got, err := repo.LoadAll(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "b" {
		t.Fatalf("unexpected snapshot: %+v", got)
	}
	if got[1].RepeatInterval != model.RepeatWeekly || got[1].RepeatEvery != 2 {
		t.Fatalf("recurrence fields lost: %+v", got[1])
	}
	if !got[0].DueDate.Equal(due) {
		t.Fatalf("due date = %s, want %s", got[0].DueDate, due)
	}

	// Replacing with a shorter list drops the rest.
	if err := repo.ReplaceAll(ctx, snapshot[1:]); err != nil {
		t.Fatalf("second replace: %v", err)
	}
	got, err = repo.LoadAll(ctx)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(got) != 1 || got[0].ID != "b" {
		t.Fatalf("expected only task b, got %+v", got)
	}

	// And an empty snapshot clears the store.
	if err := repo.ReplaceAll(ctx, nil); err != nil {
		t.Fatalf("clear: %v", err)
	}
	got, err = repo.LoadAll(ctx)
	if err != nil {
		t.Fatalf("reload after clear: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty store, got %d", len(got))
	}
}

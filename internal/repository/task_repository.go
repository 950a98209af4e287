package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"questdo/internal/model"
)

// TaskRepository persists the task collection as a whole-list snapshot. The
// engine owns all task mutation; this layer only reads the snapshot after an
// event and writes whole-record replacements.
type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// LoadAll returns every stored task in creation order. An empty store yields
// an empty slice, not an error.
func (r *TaskRepository) LoadAll(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	return tasks, nil
}

// ReplaceAll swaps the stored task list for the given snapshot in one
// transaction, so a reader never observes a partial update.
func (r *TaskRepository) ReplaceAll(ctx context.Context, tasks []model.Task) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.Task{}).Error; err != nil {
			return fmt.Errorf("clear tasks: %w", err)
		}
		if len(tasks) == 0 {
			return nil
		}
		if err := tx.Create(&tasks).Error; err != nil {
			return fmt.Errorf("write tasks: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("replace tasks: %w", err)
	}
	return nil
}

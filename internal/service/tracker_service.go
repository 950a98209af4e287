package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"questdo/internal/date"
	"questdo/internal/engine"
	"questdo/internal/model"
	"questdo/internal/repository"
)

// TaskInput represents data required to create a task.
type TaskInput struct {
	Title          string
	DueDate        date.Date
	Priority       float64
	Difficulty     float64
	RepeatInterval model.RepeatInterval
	RepeatEvery    int
}

// TrackerService owns the load-state, dispatch-event, save-snapshot cycle.
// Every event loads the persisted records into an engine.State, runs exactly
// one engine operation, and writes both records back as whole snapshots.
type TrackerService struct {
	userRepo *repository.UserRepository
	taskRepo *repository.TaskRepository
	loc      *time.Location
}

func NewTrackerService(userRepo *repository.UserRepository, taskRepo *repository.TaskRepository, loc *time.Location) *TrackerService {
	if loc == nil {
		loc = time.Local
	}
	return &TrackerService{userRepo: userRepo, taskRepo: taskRepo, loc: loc}
}

func (s *TrackerService) loadState(ctx context.Context) (*engine.State, error) {
	user, _, err := s.userRepo.Load(ctx)
	if err != nil {
		return nil, err
	}
	tasks, err := s.taskRepo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	return engine.NewState(user, tasks), nil
}

func (s *TrackerService) saveState(ctx context.Context, st *engine.State) error {
	if err := s.userRepo.Save(ctx, st.User); err != nil {
		return err
	}
	if err := s.taskRepo.ReplaceAll(ctx, st.Tasks()); err != nil {
		return err
	}
	return nil
}

// CreateTask inserts a new task with its derived fields at their baseline.
// No reward formulas run on create.
func (s *TrackerService) CreateTask(ctx context.Context, input TaskInput) (model.Task, error) {
	if input.Title == "" {
		return model.Task{}, fmt.Errorf("title is required")
	}
	if input.DueDate.IsZero() {
		input.DueDate = date.Today(s.loc)
	}
	if input.RepeatInterval == "" {
		input.RepeatInterval = model.RepeatNone
	}

	st, err := s.loadState(ctx)
	if err != nil {
		return model.Task{}, err
	}

	task := model.Task{
		ID:             uuid.NewString(),
		Title:          input.Title,
		DueDate:        input.DueDate,
		Priority:       input.Priority,
		Difficulty:     input.Difficulty,
		RepeatInterval: input.RepeatInterval,
		RepeatEvery:    input.RepeatEvery,
		CreatedAt:      time.Now().In(s.loc),
	}
	if err := st.CreateTask(task); err != nil {
		return model.Task{}, err
	}
	if err := s.saveState(ctx, st); err != nil {
		return model.Task{}, err
	}

	created, err := st.Task(task.ID)
	if err != nil {
		return model.Task{}, err
	}
	return created, nil
}

// CompleteTask dispatches a completion event for the task and persists the
// updated snapshot. The returned result carries the reward deltas for the
// notification channel along with the updated user.
func (s *TrackerService) CompleteTask(ctx context.Context, taskID string) (engine.Result, model.User, error) {
	st, err := s.loadState(ctx)
	if err != nil {
		return engine.Result{}, model.User{}, err
	}

	res, err := st.CompleteTask(taskID, time.Now().In(s.loc))
	if err != nil {
		return engine.Result{}, model.User{}, err
	}
	if err := s.saveState(ctx, st); err != nil {
		return engine.Result{}, model.User{}, err
	}
	return res, st.User, nil
}

// DeleteTask removes a task. Deleting anything still open requires confirmed
// caller intent; without it the stored snapshot is left untouched and
// engine.ErrConfirmationRequired comes back.
func (s *TrackerService) DeleteTask(ctx context.Context, taskID string, confirmed bool) error {
	st, err := s.loadState(ctx)
	if err != nil {
		return err
	}

	var capability engine.DeleteConfirmation
	if confirmed {
		capability = engine.ConfirmDelete()
	}
	if err := st.DeleteTask(taskID, capability); err != nil {
		return err
	}
	return s.saveState(ctx, st)
}

// List returns the stored tasks in creation order.
func (s *TrackerService) List(ctx context.Context) ([]model.Task, error) {
	st, err := s.loadState(ctx)
	if err != nil {
		return nil, err
	}
	return st.Tasks(), nil
}

// Stats returns the current user snapshot.
func (s *TrackerService) Stats(ctx context.Context) (model.User, error) {
	st, err := s.loadState(ctx)
	if err != nil {
		return model.User{}, err
	}
	return st.User, nil
}

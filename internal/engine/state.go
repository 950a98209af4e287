package engine

import (
	"errors"
	"fmt"

	"questdo/internal/model"
)

var (
	// ErrTaskNotFound is returned when an event names a task id the state
	// does not hold. Callers must pass valid ids; the engine never no-ops.
	ErrTaskNotFound = errors.New("task not found")

	// ErrConfirmationRequired is returned when deleting an open task without
	// the delete confirmation capability.
	ErrConfirmationRequired = errors.New("deleting an open task requires confirmation")
)

// DeleteConfirmation is the capability required to delete a task that is not
// a completed one-time task. Callers obtain it with ConfirmDelete after
// collecting explicit intent from the user.
type DeleteConfirmation struct {
	confirmed bool
}

// ConfirmDelete grants the delete capability.
func ConfirmDelete() DeleteConfirmation {
	return DeleteConfirmation{confirmed: true}
}

// State owns the single User record and the task collection. It is not safe
// for concurrent use: events are processed one at a time, each mutating the
// state in place as one atomic logical step.
type State struct {
	User  model.User
	tasks map[string]*model.Task
	order []string
}

// NewState builds a State from persisted records. A zero-valued user is
// replaced with the default profile.
func NewState(user model.User, tasks []model.Task) *State {
	if user.Level < 1 {
		user = model.NewUser()
	}
	s := &State{
		User:  user,
		tasks: make(map[string]*model.Task, len(tasks)),
	}
	for i := range tasks {
		t := tasks[i]
		s.tasks[t.ID] = &t
		s.order = append(s.order, t.ID)
	}
	return s
}

// Task returns a copy of the task with the given id.
func (s *State) Task(id string) (model.Task, error) {
	t, ok := s.tasks[id]
	if !ok {
		return model.Task{}, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	return *t, nil
}

// Tasks returns copies of all tasks in insertion order.
func (s *State) Tasks() []model.Task {
	out := make([]model.Task, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.tasks[id])
	}
	return out
}

// CreateTask validates caller-supplied fields and inserts the task with its
// derived fields at their baseline. No reward formulas run on create.
func (s *State) CreateTask(task model.Task) error {
	if task.ID == "" {
		return errors.New("task id is required")
	}
	if _, exists := s.tasks[task.ID]; exists {
		return fmt.Errorf("task %s already exists", task.ID)
	}
	if task.Title == "" {
		return errors.New("task title is required")
	}
	if task.Priority <= 0 || task.Difficulty <= 0 {
		return errors.New("priority and difficulty must be positive")
	}
	if !task.RepeatInterval.Valid() {
		return fmt.Errorf("unknown repeat interval %q", task.RepeatInterval)
	}
	if task.RepeatEvery < 1 {
		task.RepeatEvery = 1
	}

	task.OriginalDueDate = task.DueDate
	task.TimesCompleted = 0
	task.Streak = 0
	task.Rank = 1
	task.RankXP = 0
	task.RankProgress = 0
	task.IsCompleted = false

	s.tasks[task.ID] = &task
	s.order = append(s.order, task.ID)
	return nil
}

// DeleteTask removes a task. Completed one-time tasks go without ceremony;
// anything still open needs the confirmation capability, otherwise the state
// is left untouched.
func (s *State) DeleteTask(id string, confirm DeleteConfirmation) error {
	t, ok := s.tasks[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}

	settled := t.IsCompleted && !t.RepeatInterval.IsRecurring()
	if !settled && !confirm.confirmed {
		return ErrConfirmationRequired
	}

	delete(s.tasks, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// activeTaskCount counts tasks not yet completed. Recurring tasks never
// complete, so they always count.
func (s *State) activeTaskCount() int {
	count := 0
	for _, t := range s.tasks {
		if t.IsCompleted && !t.RepeatInterval.IsRecurring() {
			continue
		}
		count++
	}
	return count
}

// allTasks exposes the live task pointers for the decay walk.
func (s *State) allTasks() []*model.Task {
	out := make([]*model.Task, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.tasks[id])
	}
	return out
}

package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"questdo/internal/config"
	"questdo/internal/model"
	"questdo/internal/repository"
	"questdo/internal/service"
)

// app wires config, storage and services for one command invocation.
type app struct {
	cfg      config.Config
	loc      *time.Location
	tracker  *service.TrackerService
	reminder *service.ReminderService
	close    func()
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	loc := time.Local
	if cfg.Timezone != "" {
		loc, err = time.LoadLocation(cfg.Timezone)
		if err != nil {
			return nil, fmt.Errorf("timezone %q: %w", cfg.Timezone, err)
		}
	}

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("db: %w", err)
	}

	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	return &app{
		cfg:      cfg,
		loc:      loc,
		tracker:  service.NewTrackerService(userRepo, taskRepo, loc),
		reminder: service.NewReminderService(userRepo, taskRepo),
		close: func() {
			if sqlDB, err := db.DB(); err == nil {
				sqlDB.Close()
			}
		},
	}, nil
}

// resolveTaskID accepts a full task id or an unambiguous prefix.
func (a *app) resolveTaskID(ctx context.Context, arg string) (string, error) {
	tasks, err := a.tracker.List(ctx)
	if err != nil {
		return "", err
	}
	var matches []model.Task
	for _, t := range tasks {
		if t.ID == arg {
			return t.ID, nil
		}
		if strings.HasPrefix(t.ID, arg) {
			matches = append(matches, t)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0].ID, nil
	case 0:
		return "", fmt.Errorf("no task matches %q", arg)
	default:
		return "", fmt.Errorf("%q is ambiguous, %d tasks match", arg, len(matches))
	}
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"questdo/internal/date"
	"questdo/internal/model"
	"questdo/internal/service"
)

var (
	addDue        string
	addPriority   float64
	addDifficulty float64
	addRepeat     string
	addEvery      int
)

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Create a task",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addDue, "due", "", "due date, YYYY-MM-DD (default today)")
	addCmd.Flags().Float64Var(&addPriority, "priority", 1, "priority weight, > 0")
	addCmd.Flags().Float64Var(&addDifficulty, "difficulty", 1, "difficulty weight, > 0")
	addCmd.Flags().StringVar(&addRepeat, "repeat", "none", "repeat interval: none, daily, weekly, monthly, yearly")
	addCmd.Flags().IntVar(&addEvery, "every", 1, "repeat every N intervals")
}

func runAdd(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	input := service.TaskInput{
		Title:          joinArgs(args),
		Priority:       addPriority,
		Difficulty:     addDifficulty,
		RepeatInterval: model.RepeatInterval(addRepeat),
		RepeatEvery:    addEvery,
	}
	if addDue != "" {
		due, err := date.Parse(addDue)
		if err != nil {
			return err
		}
		input.DueDate = due
	}

	task, err := a.tracker.CreateTask(cmd.Context(), input)
	if err != nil {
		return err
	}

	fmt.Printf("Added %q (%s), due %s\n", task.Title, shortID(task.ID), task.DueDate)
	if task.RepeatInterval.IsRecurring() {
		fmt.Printf("Repeats %s every %d interval(s), anchored on %s\n",
			task.RepeatInterval, task.RepeatEvery, task.OriginalDueDate)
	}
	return nil
}

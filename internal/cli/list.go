package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"questdo/internal/date"
	"questdo/internal/model"
)

var listAll bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listAll, "all", false, "include completed one-time tasks")
}

func runList(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	tasks, err := a.tracker.List(cmd.Context())
	if err != nil {
		return err
	}

	today := date.Today(a.loc)
	shown := 0
	for _, task := range tasks {
		completed := task.IsCompleted && !task.RepeatInterval.IsRecurring()
		if completed && !listAll {
			continue
		}
		fmt.Println(formatListLine(task, today))
		shown++
	}
	if shown == 0 {
		fmt.Println("No tasks. Add one with `questdo add`.")
	}
	return nil
}

func formatListLine(task model.Task, today date.Date) string {
	status := " "
	daysToDue := date.DaysBetween(today, task.DueDate)
	switch {
	case task.IsCompleted && !task.RepeatInterval.IsRecurring():
		status = "x"
	case daysToDue < 0:
		status = "!"
	case daysToDue == 0:
		status = "*"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "[%s] %s  %s  due %s", status, shortID(task.ID), task.Title, task.DueDate)
	if task.RepeatInterval.IsRecurring() {
		fmt.Fprintf(&sb, "  (%s", task.RepeatInterval)
		if task.RepeatEvery > 1 {
			fmt.Fprintf(&sb, " x%d", task.RepeatEvery)
		}
		sb.WriteString(")")
	}
	if task.Rank > 1 {
		fmt.Fprintf(&sb, "  rank %d", task.Rank)
	}
	if task.Streak > 1 {
		fmt.Fprintf(&sb, "  streak %d", task.Streak)
	}
	return sb.String()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func joinArgs(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var doneCmd = &cobra.Command{
	Use:   "done <task-id>",
	Short: "Complete a task and collect the rewards",
	Long: `Complete a task. Running done on an already-completed one-time task
reopens it; the reward computation runs either way.`,
	Args: cobra.ExactArgs(1),
	RunE: runDone,
}

func runDone(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()
	ctx := cmd.Context()

	id, err := a.resolveTaskID(ctx, args[0])
	if err != nil {
		return err
	}

	res, user, err := a.tracker.CompleteTask(ctx, id)
	if err != nil {
		return err
	}

	if res.Task.IsCompleted || res.Task.RepeatInterval.IsRecurring() {
		fmt.Printf("Completed %q: +%d XP, +%d points", res.Task.Title, res.XPGained, res.PointsGained)
	} else {
		fmt.Printf("Reopened %q: +%d XP, +%d points", res.Task.Title, res.XPGained, res.PointsGained)
	}
	if res.RatingDelta >= 0 {
		fmt.Printf(", rating +%.1f\n", res.RatingDelta)
	} else {
		fmt.Printf(", rating %.1f after idle decay\n", res.RatingDelta)
	}

	if res.LeveledUp {
		fmt.Printf("Level up! You are now level %d.\n", user.Level)
	}
	if res.RankedUp {
		fmt.Printf("%q reached rank %d.\n", res.Task.Title, res.Task.Rank)
	}
	if res.Task.RepeatInterval.IsRecurring() {
		fmt.Printf("Next due %s.\n", res.Task.DueDate)
	}
	if user.DailyStreak > 1 && user.TasksCompletedToday == 1 {
		fmt.Printf("Daily streak extended to %d.\n", user.DailyStreak)
	}
	return nil
}

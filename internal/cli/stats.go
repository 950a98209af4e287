package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"questdo/internal/engine"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show level, XP, score, rating and streaks",
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	user, err := a.tracker.Stats(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Printf("Level %d — %.1f%% to level %d\n", user.Level, user.Progress, user.Level+1)
	fmt.Printf("XP:     %d\n", user.XP)
	fmt.Printf("Score:  %d (best single reward %d)\n", user.Score, user.BestScoreEarned)
	fmt.Printf("Rating: %.0f (rank tier %d)\n", user.Rating, engine.RankForRating(user.Rating))
	fmt.Printf("Daily streak: %d, days with completions: %d\n", user.DailyStreak, user.DaysCompleted)
	fmt.Printf("Completed today: %d, all time: %d\n", user.TasksCompletedToday, user.TotalTasksCompleted)
	if !user.LastCompletionDate.IsZero() {
		fmt.Printf("Last completion: %s\n", user.LastCompletionDate)
	}
	return nil
}

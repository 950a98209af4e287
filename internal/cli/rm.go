package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"questdo/internal/engine"
)

var rmYes bool

var rmCmd = &cobra.Command{
	Use:   "rm <task-id>",
	Short: "Delete a task",
	Long: `Delete a task. Open tasks are only deleted with --yes; completed
one-time tasks go without it.`,
	Args: cobra.ExactArgs(1),
	RunE: runRm,
}

func init() {
	rmCmd.Flags().BoolVarP(&rmYes, "yes", "y", false, "confirm deleting an open task")
}

func runRm(cmd *cobra.Command, args []string) error {
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

	err = a.tracker.DeleteTask(ctx, id, rmYes)
	if errors.Is(err, engine.ErrConfirmationRequired) {
		fmt.Printf("Task %s is still open; nothing deleted. Re-run with --yes to confirm.\n", shortID(id))
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Printf("Deleted task %s.\n", shortID(id))
	return nil
}

package cli

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"questdo/internal/service"
)

var remindNow bool

var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Run the daily reminder loop in the foreground",
	RunE:  runRemind,
}

func init() {
	remindCmd.Flags().BoolVar(&remindNow, "now", false, "print one summary and exit")
}

func runRemind(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	if remindNow {
		summary, err := a.reminder.DailySummary(cmd.Context(), time.Now().In(a.loc))
		if err != nil {
			return err
		}
		fmt.Println(summary)
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	scheduler := service.NewSchedulerService(a.loc)
	_, err = scheduler.ScheduleDaily(a.cfg.RemindAt, func() {
		jobCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		summary, err := a.reminder.DailySummary(jobCtx, time.Now().In(a.loc))
		if err != nil {
			log.Printf("[warn] summary: %v", err)
			return
		}
		fmt.Println(summary)
	})
	if err != nil {
		return fmt.Errorf("schedule reminders: %w", err)
	}

	scheduler.Start()
	defer scheduler.Stop()

	log.Printf("[info] reminder loop started, daily at %s", a.cfg.RemindAt)
	<-ctx.Done()
	log.Println("[info] shutdown complete")
	return nil
}

package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/joaohenriqueluz/took/internal/render"
)

func init() {
	logCmd.Flags().StringVarP(&logTask, "task", "t", "", "Task whose daily log to show")
	logCmd.MarkFlagRequired("task")
	rootCmd.AddCommand(logCmd)
}

var logTask string

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Show a task's time per day",
	RunE:  runLog,
}

func runLog(cmd *cobra.Command, args []string) error {
	ws, err := openWorkspace()
	if err != nil {
		return err
	}

	days, err := ws.svc.DailyLog(cmd.Context(), logTask, time.Now())
	if err != nil {
		return err
	}
	fmt.Print(render.TaskLog(logTask, days))
	return nil
}

package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func init() {
	startCmd.Flags().StringVarP(&startTask, "task", "t", "", "Task to start (defaults to resuming the last paused task)")
	startCmd.Flags().StringVar(&startAt, "at", "", "Record the start at this time instead of now")
	rootCmd.AddCommand(startCmd)
}

var (
	startTask string
	startAt   string
)

var startCmd = &cobra.Command{
	Use:     "start",
	Aliases: []string{"s"},
	Short:   "Start tracking a task",
	Long: `Start tracking a task, creating it on first use.

Without -t, the most recently paused task is resumed. If another task is
running it is paused at the same instant, so at most one task is ever
active.`,
	Args: cobra.NoArgs,
	RunE: runStart,
}

func runStart(cmd *cobra.Command, args []string) error {
	ws, err := openWorkspace()
	if err != nil {
		return err
	}
	at, err := parseAt(startAt, time.Now())
	if err != nil {
		return err
	}

	out, err := ws.svc.Start(cmd.Context(), startTask, at)
	if err != nil {
		return err
	}

	if out.AlreadyActive {
		fmt.Printf("Task '%s' is already being tracked\n", out.Name)
		return nil
	}
	if out.AutoPaused != "" {
		fmt.Printf("Paused task '%s'\n", out.AutoPaused)
	}
	if out.Created {
		fmt.Printf("Started tracking new task '%s'\n", out.Name)
	} else {
		fmt.Printf("Resumed task '%s'\n", out.Name)
	}
	return nil
}

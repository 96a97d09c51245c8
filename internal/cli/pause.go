package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func init() {
	pauseCmd.Flags().StringVarP(&pauseTask, "task", "t", "", "Task to pause (defaults to the active task)")
	pauseCmd.Flags().StringVar(&pauseAt, "at", "", "Record the pause at this time instead of now")
	rootCmd.AddCommand(pauseCmd)
}

var (
	pauseTask string
	pauseAt   string
)

var pauseCmd = &cobra.Command{
	Use:     "pause",
	Aliases: []string{"p"},
	Short:   "Pause the running task",
	Args:    cobra.NoArgs,
	RunE:    runPause,
}

func runPause(cmd *cobra.Command, args []string) error {
	ws, err := openWorkspace()
	if err != nil {
		return err
	}
	at, err := parseAt(pauseAt, time.Now())
	if err != nil {
		return err
	}

	name, err := ws.svc.Pause(cmd.Context(), pauseTask, at)
	if err != nil {
		return err
	}

	fmt.Printf("Paused task '%s'\n", name)
	return nil
}

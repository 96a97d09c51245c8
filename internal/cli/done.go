package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func init() {
	doneCmd.Flags().StringVarP(&doneTask, "task", "t", "", "Task to mark as done")
	doneCmd.MarkFlagRequired("task")
	doneCmd.Flags().StringVar(&doneAt, "at", "", "Record the completion at this time instead of now")
	rootCmd.AddCommand(doneCmd)
}

var (
	doneTask string
	doneAt   string
)

var doneCmd = &cobra.Command{
	Use:   "done",
	Short: "Mark a task as done",
	Long: `Mark a task as done, closing its open interval if it is running.

A done task keeps its history in logs and reports but cannot be started
again; remove it first if you really want to restart from scratch.`,
	Args: cobra.NoArgs,
	RunE: runDone,
}

func runDone(cmd *cobra.Command, args []string) error {
	ws, err := openWorkspace()
	if err != nil {
		return err
	}
	at, err := parseAt(doneAt, time.Now())
	if err != nil {
		return err
	}

	if err := ws.svc.Done(cmd.Context(), doneTask, at); err != nil {
		return err
	}

	fmt.Printf("Marked task '%s' as done\n", doneTask)
	return nil
}

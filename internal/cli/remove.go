package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	removeCmd.Flags().StringVarP(&removeTask, "task", "t", "", "Task to remove")
	removeCmd.MarkFlagRequired("task")
	rootCmd.AddCommand(removeCmd)
}

var removeTask string

var removeCmd = &cobra.Command{
	Use:     "remove",
	Aliases: []string{"rm"},
	Short:   "Delete a task and its whole history",
	Args:    cobra.NoArgs,
	RunE:    runRemove,
}

func runRemove(cmd *cobra.Command, args []string) error {
	ws, err := openWorkspace()
	if err != nil {
		return err
	}

	if err := ws.svc.Remove(cmd.Context(), removeTask); err != nil {
		return err
	}

	fmt.Printf("Removed task '%s'\n", removeTask)
	return nil
}

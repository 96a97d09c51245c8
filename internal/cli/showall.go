package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/joaohenriqueluz/took/internal/render"
)

func init() {
	showAllCmd.Flags().BoolVar(&showAllDone, "done", false, "Include tasks marked as done")
	rootCmd.AddCommand(showAllCmd)
}

var showAllDone bool

var showAllCmd = &cobra.Command{
	Use:     "show-all",
	Aliases: []string{"sa"},
	Short:   "List all tracked tasks",
	RunE:    runShowAll,
}

func runShowAll(cmd *cobra.Command, args []string) error {
	ws, err := openWorkspace()
	if err != nil {
		return err
	}

	snaps, err := ws.svc.AllTasks(cmd.Context(), showAllDone, time.Now())
	if err != nil {
		return err
	}
	fmt.Print(render.TaskTable(snaps))
	return nil
}

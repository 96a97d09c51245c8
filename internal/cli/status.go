package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/joaohenriqueluz/took/internal/render"
	"github.com/joaohenriqueluz/took/internal/tui"
)

func init() {
	statusCmd.Flags().BoolVar(&statusWatch, "watch", false, "Keep the status on screen, refreshed every second")
	rootCmd.AddCommand(statusCmd)
}

var statusWatch bool

var statusCmd = &cobra.Command{
	Use:     "status",
	Aliases: []string{"st"},
	Short:   "Show the current task",
	RunE:    runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	ws, err := openWorkspace()
	if err != nil {
		return err
	}

	if statusWatch {
		return tui.Run(ws.svc)
	}

	snap, err := ws.svc.Current(cmd.Context(), time.Now())
	if err != nil {
		return err
	}
	fmt.Print(render.Status(snap))
	return nil
}

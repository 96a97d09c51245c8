package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/joaohenriqueluz/took/internal/render"
)

func init() {
	reportCmd.Flags().IntVarP(&reportDays, "days", "d", 0, "Number of days to report on (default from config)")
	rootCmd.AddCommand(reportCmd)
}

var reportDays int

var reportCmd = &cobra.Command{
	Use:     "report",
	Aliases: []string{"rp"},
	Short:   "Show a per-day bar chart of tracked time",
	RunE:    runReport,
}

func runReport(cmd *cobra.Command, args []string) error {
	ws, err := openWorkspace()
	if err != nil {
		return err
	}

	days := ws.cfg.Report.DefaultDays
	if cmd.Flags().Changed("days") {
		days = reportDays
	}

	buckets, err := ws.svc.Report(cmd.Context(), days, time.Now())
	if err != nil {
		return err
	}
	fmt.Println(render.Report(buckets, days, ws.cfg.Report.BarWidth))
	return nil
}

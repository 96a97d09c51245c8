package cli

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/joaohenriqueluz/took/internal/infra/sqlite"
)

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "output", "o", "took.db", "SQLite file to write the export to")
	rootCmd.AddCommand(exportCmd)
}

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the log to a SQLite database",
	Long: `Export every task, interval and per-day total to a SQLite database.

The JSON log stays the source of truth; the database is rebuilt from
scratch on each export so it can be queried with plain SQL.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	ws, err := openWorkspace()
	if err != nil {
		return err
	}

	db, err := sqlite.Open(exportOut)
	if err != nil {
		return err
	}
	defer db.Close()

	now := time.Now()
	stats, err := ws.svc.Export(cmd.Context(), db, now)
	if err != nil {
		return err
	}
	if err := db.SetInfo("exported_at", now.Format(time.RFC3339)); err != nil {
		return err
	}
	if err := db.SetInfo("source_store", filepath.Join(ws.dir, ws.cfg.Store.FileName)); err != nil {
		return err
	}

	fmt.Printf("Exported %d tasks, %d intervals and %d day totals to %s\n",
		stats.Tasks, stats.Intervals, stats.Days, exportOut)
	return nil
}

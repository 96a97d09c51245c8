package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/joaohenriqueluz/took/internal/api"
)

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Host to listen on (overrides config)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

var (
	serveHost string
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the read-only took API server",
	Long: `Serve the tracked time as JSON over HTTP.

The endpoints mirror the read commands: /api/status, /api/tasks,
/api/tasks/{name}/log and /api/report, plus Prometheus metrics on
/metrics. The server never mutates the store.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ws, err := openWorkspace()
	if err != nil {
		return err
	}

	// Override config from flags
	host := ws.cfg.Serve.Host
	if serveHost != "" {
		host = serveHost
	}
	port := ws.cfg.Serve.Port
	if servePort > 0 {
		port = servePort
	}
	addr := fmt.Sprintf("%s:%d", host, port)

	// Graceful shutdown on signal
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	fmt.Printf("took serving on http://%s\n", addr)
	fmt.Printf("  Store: %s\n", ws.dir)
	fmt.Printf("  Metrics: http://%s/metrics\n", addr)

	srv := api.NewServer(ws.svc, ws.cfg.Report.DefaultDays)
	return srv.Serve(ctx, addr)
}

package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joaohenriqueluz/took/internal/app/tracker"
	"github.com/joaohenriqueluz/took/internal/config"
	"github.com/joaohenriqueluz/took/internal/infra/store"
)

// workspace bundles the loaded config with a tracker service bound to the
// resolved took directory.
type workspace struct {
	cfg config.Config
	dir string
	svc *tracker.Service
}

// openWorkspace loads config and resolves the store: the nearest .took
// directory above the working directory, or the global one under the user's
// home, created on first use.
func openWorkspace() (*workspace, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	dir, ok := store.Locate(cwd, cfg.Store.DirName)
	if !ok {
		dir = config.TookHome()
		created, err := store.Ensure(context.Background(), dir, cfg.Store.FileName, cfg.Store.LockTimeout())
		if err != nil {
			return nil, err
		}
		if created {
			fmt.Printf("Created a global took directory at %s\n", dir)
		}
	}

	st := store.New(dir, cfg.Store.FileName, cfg.Store.LockTimeout())
	return &workspace{cfg: cfg, dir: dir, svc: tracker.NewService(st)}, nil
}

var atLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

var clockLayouts = []string{
	"15:04:05",
	"15:04",
}

// parseAt turns an --at flag value into a timestamp. Empty means now.
// Bare clock times are placed on today's date in the local zone.
func parseAt(value string, now time.Time) (time.Time, error) {
	if value == "" {
		return now, nil
	}
	if ts, err := time.Parse(time.RFC3339, value); err == nil {
		return ts, nil
	}
	for _, layout := range atLayouts {
		if ts, err := time.ParseInLocation(layout, value, now.Location()); err == nil {
			return ts, nil
		}
	}
	for _, layout := range clockLayouts {
		if clock, err := time.Parse(layout, value); err == nil {
			year, month, day := now.Date()
			return time.Date(year, month, day,
				clock.Hour(), clock.Minute(), clock.Second(), 0, now.Location()), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time %q (use RFC3339, %q, or %q)",
		value, "2006-01-02 15:04", "15:04")
}

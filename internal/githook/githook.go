// Package githook installs the took git hooks into a repository so time
// tracking follows branch switches and commits.
package githook

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

//go:embed hooks/*
var hookFS embed.FS

// ErrNoRepository means the target directory has no .git/hooks to install
// into. Callers treat it as a skip, not a failure.
var ErrNoRepository = errors.New("no git repository")

// Names lists the hooks took installs, in install order.
var Names = []string{"pre-commit", "post-commit", "post-checkout", "post-merge"}

// Install copies the hook scripts into repoRoot/.git/hooks, overwriting
// existing files, and marks them executable. It returns the installed
// paths.
func Install(repoRoot string) ([]string, error) {
	hooksDir := filepath.Join(repoRoot, ".git", "hooks")
	if info, err := os.Stat(hooksDir); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%s: %w", repoRoot, ErrNoRepository)
	}

	installed := make([]string, 0, len(Names))
	for _, name := range Names {
		data, err := hookFS.ReadFile("hooks/" + name)
		if err != nil {
			return installed, fmt.Errorf("read embedded hook %s: %w", name, err)
		}
		dest := filepath.Join(hooksDir, name)
		if err := os.WriteFile(dest, data, 0o775); err != nil {
			return installed, fmt.Errorf("install hook %s: %w", name, err)
		}
		if err := os.Chmod(dest, 0o775); err != nil {
			return installed, fmt.Errorf("chmod hook %s: %w", name, err)
		}
		installed = append(installed, dest)
	}
	return installed, nil
}

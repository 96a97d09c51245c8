package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Locate walks up from start looking for a directory named dirName and
// returns its full path. The nearest match wins, so a repository-local
// took directory shadows any global one.
func Locate(start, dirName string) (string, bool) {
	current := start
	for {
		candidate := filepath.Join(current, dirName)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate, true
		}
		parent := filepath.Dir(current)
		if parent == current {
			return "", false
		}
		current = parent
	}
}

// Ensure creates dir with an empty log file when it does not exist yet.
// It reports whether it created anything. The empty log is written under
// the exclusive lock with the given timeout, so two processes racing on
// first use serialize instead of clobbering each other.
func Ensure(ctx context.Context, dir, fileName string, lockTimeout time.Duration) (bool, error) {
	if info, err := os.Stat(dir); err == nil {
		if !info.IsDir() {
			return false, fmt.Errorf("%s exists and is not a directory", dir)
		}
		return false, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return false, fmt.Errorf("create took directory: %w", err)
	}
	s := New(dir, fileName, lockTimeout)
	if err := s.WriteEmpty(ctx); err != nil {
		return false, err
	}
	return true, nil
}

// Init creates a took directory under parent for an explicit `took init`.
// An existing directory is left untouched and reported as not created.
func Init(ctx context.Context, parent, dirName, fileName string, lockTimeout time.Duration) (string, bool, error) {
	dir := filepath.Join(parent, dirName)
	if _, err := os.Stat(dir); err == nil {
		return dir, false, nil
	}
	created, err := Ensure(ctx, dir, fileName, lockTimeout)
	if err != nil {
		return "", false, err
	}
	return dir, created, nil
}

// Package store persists the took log as a JSON file guarded by an advisory
// file lock. The file is the durable source of truth and is designed to be
// committed to version control, so writes are deterministic (stable key
// order, two-space indent) and atomic (temp file + rename).
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joaohenriqueluz/took/internal/domain"
)

// Store is a handle to one resolved took directory. It does not search for
// the directory itself; see Resolve and Init.
type Store struct {
	dir     string
	file    string
	timeout time.Duration
}

// New returns a store over dir/fileName with the given lock-acquisition
// timeout.
func New(dir, fileName string, lockTimeout time.Duration) *Store {
	return &Store{
		dir:     dir,
		file:    filepath.Join(dir, fileName),
		timeout: lockTimeout,
	}
}

// Dir returns the took directory backing this store.
func (s *Store) Dir() string { return s.dir }

// Path returns the JSON file backing this store.
func (s *Store) Path() string { return s.file }

// Load reads the log under a shared lock and validates it.
// A missing file is an empty log; a malformed or invariant-violating file
// is ErrStoreCorrupt.
func (s *Store) Load(ctx context.Context) (*domain.Log, error) {
	release, err := s.acquire(ctx, true)
	if err != nil {
		return nil, err
	}
	defer release()

	return s.read()
}

// Update runs fn against the current log under an exclusive lock and writes
// the result back atomically. The lock is released on every exit path, so a
// failing fn leaves the file untouched.
func (s *Store) Update(ctx context.Context, fn func(*domain.Log) error) error {
	release, err := s.acquire(ctx, false)
	if err != nil {
		return err
	}
	defer release()

	l, err := s.read()
	if err != nil {
		return err
	}
	if err := fn(l); err != nil {
		return err
	}
	return s.write(l)
}

// read loads and validates the log with no locking. Callers hold the lock.
func (s *Store) read() (*domain.Log, error) {
	data, err := os.ReadFile(s.file)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.NewLog(), nil
		}
		return nil, fmt.Errorf("read store: %w", err)
	}

	l := domain.NewLog()
	if err := json.Unmarshal(data, l); err != nil {
		return nil, fmt.Errorf("%s: not valid JSON (%v): %w", s.file, err, domain.ErrStoreCorrupt)
	}

	// Lenient defaults for absent optional fields.
	if l.Version == 0 {
		l.Version = domain.CurrentVersion
	}
	if l.Tasks == nil {
		l.Tasks = make(map[string]*domain.Task)
	}
	for name, t := range l.Tasks {
		if t != nil {
			t.Name = name
		}
	}

	// Strict validation after the lenient parse.
	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", s.file, err)
	}
	return l, nil
}

// write marshals the log and replaces the file atomically.
func (s *Store) write(l *domain.Log) error {
	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}
	data = append(data, '\n')

	tmp := s.file + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write store: %w", err)
	}
	if err := os.Rename(tmp, s.file); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace store: %w", err)
	}
	return nil
}

// WriteEmpty writes a fresh empty log under the exclusive lock, used by
// Init and the home fallback.
func (s *Store) WriteEmpty(ctx context.Context) error {
	release, err := s.acquire(ctx, false)
	if err != nil {
		return err
	}
	defer release()

	return s.write(domain.NewLog())
}

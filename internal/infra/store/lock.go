package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"github.com/joaohenriqueluz/took/internal/domain"
)

// LockFileName is the advisory lock file kept next to the JSON log.
const LockFileName = "took.lock"

// lockRetryInterval is how often a blocked acquisition retries until the
// store timeout expires.
const lockRetryInterval = 50 * time.Millisecond

// acquire takes the advisory lock, shared for reads and exclusive for
// writes. It retries until the configured timeout and then fails with
// ErrStoreLocked, naming the current holder when one is recorded.
func (s *Store) acquire(ctx context.Context, shared bool) (release func(), err error) {
	lockPath := filepath.Join(s.dir, LockFileName)
	fl := flock.New(lockPath)

	lockCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var ok bool
	if shared {
		ok, err = fl.TryRLockContext(lockCtx, lockRetryInterval)
	} else {
		ok, err = fl.TryLockContext(lockCtx, lockRetryInterval)
	}
	if !ok {
		// Only a timeout means contention. Anything else, like a lock
		// file that cannot be opened, is its own failure.
		if err != nil && !errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("lock %s: %w", lockPath, err)
		}
		if holder := readOwner(lockPath); holder != "" {
			return nil, fmt.Errorf("%s held by %s after %s: %w",
				lockPath, holder, s.timeout, domain.ErrStoreLocked)
		}
		return nil, fmt.Errorf("%s not acquired after %s: %w",
			lockPath, s.timeout, domain.ErrStoreLocked)
	}

	if !shared {
		writeOwner(lockPath)
	}
	return func() {
		if !shared {
			os.Truncate(lockPath, 0)
		}
		fl.Unlock()
	}, nil
}

// writeOwner records who holds the exclusive lock so a blocked process can
// report it. The token is informational; the flock itself is authoritative.
func writeOwner(lockPath string) {
	owner := fmt.Sprintf("%s pid=%d\n", uuid.New().String(), os.Getpid())
	os.WriteFile(lockPath, []byte(owner), 0o644)
}

func readOwner(lockPath string) string {
	data, err := os.ReadFile(lockPath)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

package utils

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrRunInProgress is returned when another maintenance run holds the lock.
var ErrRunInProgress = errors.New("another chanrotate run is in progress")

// RunLock is a file-based lock that keeps two maintenance runs from touching
// the same channels at the same time.
type RunLock struct {
	lock *flock.Flock
	path string
}

// NewRunLock creates a lock at lockPath, or at the default location when lockPath is empty.
func NewRunLock(lockPath string) (*RunLock, error) {
	absPath, err := GetAbsLockPath(lockPath)
	if err != nil {
		return nil, fmt.Errorf("could not get absolute lock path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
		return nil, fmt.Errorf("could not create lock directory: %w", err)
	}
	return &RunLock{
		lock: flock.New(absPath),
		path: absPath,
	}, nil
}

// Lock acquires the lock without waiting. A held lock means someone else is
// mid-run, so we refuse instead of queueing behind a destructive job.
func (l *RunLock) Lock() error {
	locked, err := l.lock.TryLock()
	if err != nil {
		return fmt.Errorf("failed to acquire lock on %s: %w", l.path, err)
	}
	if !locked {
		return fmt.Errorf("%w (lock held on %s)", ErrRunInProgress, l.path)
	}
	return nil
}

// Unlock releases the lock.
func (l *RunLock) Unlock() error {
	if err := l.lock.Unlock(); err != nil {
		// Suppress error if the lock file doesn't exist, as it means we don't hold the lock.
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to release lock on %s: %w", l.path, err)
	}
	return nil
}

// Path returns the absolute path of the lock file.
func (l *RunLock) Path() string { return l.path }

// GetAbsLockPath resolves the lock file path.
func GetAbsLockPath(lockPath string) (string, error) {
	if lockPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", "chanrotate", "run.lock"), nil
	}
	return filepath.Abs(lockPath)
}

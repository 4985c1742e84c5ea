// Package filelock takes advisory exclusive locks on sidecar lock files.
package filelock

import (
	"fmt"
	"os"
	"path/filepath"
)

// Lock is a held advisory lock.
type Lock struct {
	file *os.File
}

// Acquire blocks until it holds an exclusive lock on path, creating the
// file (and its directory) if needed.
func Acquire(path string) (*Lock, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open lock %s: %w", path, err)
	}

	if err := lockExclusive(file); err != nil {
		file.Close()
		return nil, fmt.Errorf("acquire lock %s: %w", path, err)
	}
	return &Lock{file: file}, nil
}

// Release unlocks and closes the lock file. A nil Lock is a no-op.
func (l *Lock) Release() error {
	if l == nil || l.file == nil {
		return nil
	}
	unlockErr := unlock(l.file)
	closeErr := l.file.Close()
	l.file = nil
	if unlockErr != nil {
		return unlockErr
	}
	return closeErr
}

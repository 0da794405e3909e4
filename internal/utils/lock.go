package utils

import (
	"fmt"
	"os"

	"github.com/gofrs/flock"
)

const (
	lockFileSuffix = ".lock"
)

// DataLock manages a file-based lock for the collection data file.
type DataLock struct {
	lock *flock.Flock
	path string
}

// NewDataLock creates a new lock for the given data file path.
func NewDataLock(dataPath string) (*DataLock, error) {
	absPath, err := GetAbsDataPath(dataPath)
	if err != nil {
		return nil, fmt.Errorf("could not get absolute data path: %w", err)
	}
	lockPath := absPath + lockFileSuffix
	return &DataLock{
		lock: flock.New(lockPath),
		path: lockPath,
	}, nil
}

// Lock acquires the data file lock, waiting if necessary.
// It will print a message if it has to wait.
func (l *DataLock) Lock() error {
	locked, err := l.lock.TryLock()
	if err != nil {
		return fmt.Errorf("failed to acquire lock on %s: %w", l.path, err)
	}

	if !locked {
		fmt.Fprintf(os.Stderr, "Another dicetrack process is writing to the collection, waiting for it to finish...\n")
		if err := l.lock.Lock(); err != nil {
			return fmt.Errorf("failed to acquire lock on %s after waiting: %w", l.path, err)
		}
	}
	return nil
}

// Unlock releases the data file lock.
func (l *DataLock) Unlock() error {
	if err := l.lock.Unlock(); err != nil {
		// Suppress error if the lock file doesn't exist, as it means we don't hold the lock.
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to release lock on %s: %w", l.path, err)
	}
	return nil
}

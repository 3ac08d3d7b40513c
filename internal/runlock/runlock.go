// Package runlock guards a destination directory against concurrent
// pipeline runs. Output files are plain appends with no coordination, so two
// runs writing the same directory would interleave; the lock makes the
// second run fail fast instead.
package runlock

import (
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
)

const lockFileName = ".elections.lock"

// Lock holds an exclusive advisory lock on a destination directory.
type Lock struct {
	fl *flock.Flock
}

// Acquire takes the destination's lock without blocking. It fails when
// another run already holds it.
func Acquire(dir string) (*Lock, error) {
	fl := flock.New(filepath.Join(dir, lockFileName))
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock destination %s: %w", dir, err)
	}
	if !ok {
		return nil, fmt.Errorf("destination %s is in use by another run", dir)
	}
	return &Lock{fl: fl}, nil
}

// Release drops the lock. Safe to call on all exit paths.
func (l *Lock) Release() error {
	if l == nil || l.fl == nil {
		return nil
	}
	return l.fl.Unlock()
}

// Package fileutil provides filesystem helpers for the election pipeline:
// input file checks and destination directory creation.
package fileutil

import (
	"errors"
	"fmt"
	"os"
)

// ErrDirExists reports that a destination directory already existed when
// EnsureDestination created it. Callers treat it as a warning, not a failure:
// existing output files will be overwritten.
var ErrDirExists = errors.New("destination directory exists")

// CheckInputFile verifies that path names an existing regular file.
func CheckInputFile(path string) error {
	if path == "" {
		return errors.New("no CSV file provided")
	}
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("CSV file %s does not exist", path)
		}
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory, not a CSV file", path)
	}
	return nil
}

// EnsureDestination creates the destination directory if needed. When the
// directory already exists it returns ErrDirExists so the caller can warn
// that previous output will be overwritten.
func EnsureDestination(dir string) error {
	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return fmt.Errorf("destination %s exists and is not a directory", dir)
		}
		return ErrDirExists
	}
	if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat destination %s: %w", dir, err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create destination %s: %w", dir, err)
	}
	return nil
}

package fileutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestCheckInputFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ballots.csv")
	if err := os.WriteFile(path, []byte("a,b,c\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := CheckInputFile(path); err != nil {
		t.Fatalf("expected valid file, got %v", err)
	}
	if err := CheckInputFile(""); err == nil {
		t.Fatal("expected error for empty path")
	}
	if err := CheckInputFile(filepath.Join(dir, "missing.csv")); err == nil {
		t.Fatal("expected error for missing file")
	}
	if err := CheckInputFile(dir); err == nil {
		t.Fatal("expected error for directory path")
	}
}

func TestEnsureDestination(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "results")

	if err := EnsureDestination(dest); err != nil {
		t.Fatalf("create destination: %v", err)
	}
	info, err := os.Stat(dest)
	if err != nil || !info.IsDir() {
		t.Fatalf("destination not created: %v", err)
	}

	// Second call reports the existing directory.
	if err := EnsureDestination(dest); !errors.Is(err, ErrDirExists) {
		t.Fatalf("expected ErrDirExists, got %v", err)
	}
}

func TestEnsureDestinationFileCollision(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "occupied")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := EnsureDestination(path); err == nil || errors.Is(err, ErrDirExists) {
		t.Fatalf("expected hard error for file collision, got %v", err)
	}
}

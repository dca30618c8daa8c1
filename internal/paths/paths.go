// Package paths resolves and validates filesystem paths for the scanner.
package paths

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Kind selects what EnsureExists expects at a path.
type Kind string

const (
	// KindFile expects a regular file.
	KindFile Kind = "file"
	// KindDir expects a directory.
	KindDir Kind = "dir"
)

// Sentinel errors returned by EnsureExists.
var (
	ErrDirNotFound  = errors.New("directory not found")
	ErrFileNotFound = errors.New("file not found")
)

// Resolve joins a relative path onto a base and returns the absolute form.
func Resolve(base, relative string) (string, error) {
	abs, err := filepath.Abs(filepath.Join(base, relative))
	if err != nil {
		return "", fmt.Errorf("resolving %q against %q: %w", relative, base, err)
	}

	return abs, nil
}

// EnsureExists verifies that path exists and matches kind. For KindDir
// with createIfMissing set, the directory and any missing parents are
// created instead of failing.
func EnsureExists(path string, kind Kind, createIfMissing bool) error {
	info, err := os.Stat(path)

	switch kind {
	case KindDir:
		if err == nil && info.IsDir() {
			return nil
		}

		if createIfMissing {
			if mkErr := os.MkdirAll(path, 0o755); mkErr != nil {
				return fmt.Errorf("creating directory %q: %w", path, mkErr)
			}

			return nil
		}

		return fmt.Errorf("%w: %s", ErrDirNotFound, path)
	case KindFile:
		if err == nil && info.Mode().IsRegular() {
			return nil
		}

		return fmt.Errorf("%w: %s", ErrFileNotFound, path)
	default:
		return fmt.Errorf("unknown kind %q", kind)
	}
}

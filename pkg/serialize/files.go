package serialize

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrEmptyPath is returned when a read or write is given an empty path.
var ErrEmptyPath = errors.New("path cannot be empty")

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// readFile reads the whole file at path after cleaning it.
func readFile(path string) ([]byte, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	return os.ReadFile(filepath.Clean(path))
}

// writeFile creates the parent directories of path and writes data to it.
func writeFile(path string, data []byte) error {
	if path == "" {
		return ErrEmptyPath
	}
	clean := filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(clean), dirPerm); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", clean, err)
	}
	if err := os.WriteFile(clean, data, filePerm); err != nil {
		return fmt.Errorf("failed to write %s: %w", clean, err)
	}
	return nil
}

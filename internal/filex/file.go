// Package filex contains small filesystem helpers shared by server components.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureDir creates dir (and any parents) if it does not exist yet.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return nil
}

// EnsureParentDir creates the parent directory of path if necessary,
// so the file at path can be written.
func EnsureParentDir(path string) error {
	return EnsureDir(filepath.Dir(path))
}

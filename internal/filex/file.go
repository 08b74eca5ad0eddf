// Package filex contains small filesystem helpers.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureDir creates path (and parents) when missing and returns it unchanged.
// Relative paths are resolved against the current working directory.
func EnsureDir(path string) (string, error) {
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getwd: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	if err := os.MkdirAll(path, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", path, err)
	}

	return path, nil
}

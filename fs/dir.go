// Package fs provides filesystem helpers for saving course supplements.
package fs

import (
	"errors"
	iofs "io/fs"
	"os"
)

// EnsureDir creates path and any missing parents with the given permission
// bits. An existing directory at path is not an error. Any other failure,
// including an existing non-directory at path, is returned unchanged.
func EnsureDir(path string, perm os.FileMode) error {
	err := os.MkdirAll(path, perm)
	if err == nil {
		return nil
	}
	if errors.Is(err, iofs.ErrExist) {
		if info, statErr := os.Stat(path); statErr == nil && info.IsDir() {
			return nil
		}
	}
	return err
}

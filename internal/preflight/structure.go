package preflight

// SPDX-License-Identifier: GPL-3.0-or-later

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

var (
	ErrFrontendDirMissing  = errors.New("frontend directory not found")
	ErrNotADirectory       = errors.New("not a directory")
	ErrRequiredFileMissing = errors.New("missing required file")
)

// CheckFrontendDir checks that the frontend project directory exists.
func CheckFrontendDir(dir string) error {
	stat, err := os.Stat(dir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %s", ErrFrontendDirMissing, dir)
	case err != nil:
		return fmt.Errorf("checking frontend directory %s: %w", dir, err)
	case !stat.IsDir():
		return fmt.Errorf("%s: %w", dir, ErrNotADirectory)
	}
	return nil
}

// CheckStructure checks that all files exist, relative to the root directory.
// It returns the missing files, joined with the root directory, in the order
// they were given. The returned error names the first problem found.
func CheckStructure(root string, files []string) (missing []string, err error) {
	for _, file := range files {
		path := filepath.Join(root, filepath.FromSlash(file))

		_, statErr := os.Stat(path)
		switch {
		case statErr == nil:
			continue
		case errors.Is(statErr, fs.ErrNotExist):
			missing = append(missing, path)
			if err == nil {
				err = fmt.Errorf("%w: %s", ErrRequiredFileMissing, path)
			}
		default:
			missing = append(missing, path)
			if err == nil {
				err = fmt.Errorf("checking %s: %w", path, statErr)
			}
		}
	}
	return missing, err
}

// SPDX-FileCopyrightText: 2025 k0s authors
// SPDX-License-Identifier: Apache-2.0

package cleanup

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// purger removes the contents of directory trees.
type purger struct {
	log logrus.FieldLogger
	// unlinks a file, a symlink or an empty directory
	remove func(path string) error
}

// purge removes every entry of dir except the one named exclude. Directories
// are removed recursively, symlinks are unlinked and never followed. The
// directory itself is left in place. A failure is recorded and the purge
// carries on with the remaining entries.
func (p *purger) purge(dir, exclude string, result *Result) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			result.record(dir, err)
		}
		return
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if exclude != "" && entry.Name() == exclude {
			p.log.Debugf("Preserving %s", path)
			continue
		}
		p.removePath(path, entry.Type(), result)
	}
}

// removePath removes path, and its contents if it's a directory. It reports
// whether path is gone afterwards. A directory that still has contents is not
// recorded again, the failing descendants already have been.
func (p *purger) removePath(path string, typ fs.FileMode, result *Result) bool {
	// typ comes from lstat, so symlinks to directories are not directories here
	if typ.IsDir() {
		entries, err := os.ReadDir(path)
		if err != nil {
			result.record(path, err)
			return false
		}

		empty := true
		for _, entry := range entries {
			if !p.removePath(filepath.Join(path, entry.Name()), entry.Type(), result) {
				empty = false
			}
		}
		if !empty {
			return false
		}
	}

	if err := p.remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		p.log.WithError(err).Debugf("Failed to remove %s", path)
		result.record(path, err)
		return false
	}

	p.log.Debugf("Removed %s", path)
	return true
}

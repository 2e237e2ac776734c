// SPDX-FileCopyrightText: 2025 k0s authors
// SPDX-License-Identifier: Apache-2.0

package cleanup

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
)

// commandRunner runs a command to completion.
type commandRunner interface {
	Run(ctx context.Context, name string, args ...string) error
}

// execRunner runs commands as subprocesses sharing this process's stdio.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin, cmd.Stdout, cmd.Stderr = os.Stdin, os.Stdout, os.Stderr
	return cmd.Run()
}

// runParts runs every executable file in dirPath in lexical order. A missing
// directory is fine. Every script is run, even if a previous one failed; the
// failures are returned together.
func runParts(ctx context.Context, log logrus.FieldLogger, runner commandRunner, dirPath string) error {
	// ReadDir returns entries sorted by file name
	entries, err := os.ReadDir(dirPath)
	if errors.Is(err, fs.ErrNotExist) {
		log.Debugf("%s doesn't exist, no scripts to run", dirPath)
		return nil
	} else if err != nil {
		return fmt.Errorf("failed to list clean scripts: %w", err)
	}

	var errs []error
	for _, entry := range entries {
		path := filepath.Join(dirPath, entry.Name())
		if !isExecutableFile(path) {
			log.Debugf("Skipping %s, not an executable file", path)
			continue
		}

		log.Infof("Running %s", path)
		if err := runner.Run(ctx, path); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", path, err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%d script(s) in %s failed: %w", len(errs), dirPath, errors.Join(errs...))
	}
	return nil
}

func isExecutableFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	return unix.Access(path, unix.X_OK) == nil
}

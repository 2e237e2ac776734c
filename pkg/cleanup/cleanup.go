// SPDX-FileCopyrightText: 2025 k0s authors
// SPDX-License-Identifier: Apache-2.0

package cleanup

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/k0sproject/hostinit/pkg/config"
	"github.com/k0sproject/hostinit/pkg/constant"
)

// Initializer supplies what a clean needs to know about the host.
type Initializer interface {
	// ResolveConfig returns the paths to clean up.
	ResolveConfig() (*config.ArtifactPaths, error)
	// UsesSystemd reports whether the host has been booted by systemd.
	UsesSystemd() bool
}

// Options select what gets cleaned, in addition to the artifact root.
type Options struct {
	RemoveLogs     bool
	RemoveSeed     bool
	Reboot         bool
	ResetMachineID bool
	// Kinds of generated config files to remove, see [ConfigKinds].
	RemoveConfigs []string
}

var rebootCommand = []string{"shutdown", "-r", "now"}

// Cleaner resets a host to its pre-provisioned state.
type Cleaner struct {
	init   Initializer
	stderr io.Writer
	log    logrus.FieldLogger
	runner commandRunner
	purger purger
	root   string // host root, for generated config files
}

// NewCleaner creates a Cleaner. Removal errors are reported to stderr.
func NewCleaner(hostInit Initializer, stderr io.Writer) *Cleaner {
	log := logrus.WithField("component", "cleanup")
	return &Cleaner{
		init:   hostInit,
		stderr: stderr,
		log:    log,
		runner: execRunner{},
		purger: purger{log: log, remove: os.Remove},
		root:   "/",
	}
}

// RemoveArtifacts removes the contents of the artifact root, except for the
// seed directory unless removeSeed is set, the log files if removeLogs is set,
// and runs the clean scripts. It returns 1 if anything could not be removed,
// after reporting all failures to stderr. An error is returned only if the
// paths could not be resolved, in which case nothing has been touched.
func (c *Cleaner) RemoveArtifacts(ctx context.Context, removeLogs, removeSeed bool) (int, error) {
	paths, err := c.init.ResolveConfig()
	if err != nil {
		return 1, fmt.Errorf("failed to resolve artifact paths: %w", err)
	}

	var result Result
	c.removeArtifacts(ctx, paths, removeLogs, removeSeed, &result)
	return c.report(&result), nil
}

// HandleCleanArgs runs a full clean as selected by opts. Besides what
// [Cleaner.RemoveArtifacts] does, it removes generated config files, resets
// the machine id and finally reboots the host, if requested. The reboot is
// issued regardless of any earlier failures.
func (c *Cleaner) HandleCleanArgs(ctx context.Context, opts Options) (int, error) {
	patterns, err := configPatterns(opts.RemoveConfigs)
	if err != nil {
		return 1, err
	}

	paths, err := c.init.ResolveConfig()
	if err != nil {
		return 1, fmt.Errorf("failed to resolve artifact paths: %w", err)
	}

	var result Result
	c.removeArtifacts(ctx, paths, opts.RemoveLogs, opts.RemoveSeed, &result)

	if len(patterns) > 0 {
		c.log.Info("* remove generated configs")
		c.removeConfigs(patterns, &result)
	}

	if opts.ResetMachineID {
		c.log.Info("* reset machine id")
		usesSystemd := c.init.UsesSystemd()
		if err := resetMachineID(paths.MachineIDFile, usesSystemd); err != nil {
			if usesSystemd {
				result.recordWrite(paths.MachineIDFile, err)
			} else {
				result.record(paths.MachineIDFile, err)
			}
		}
	}

	exitCode := c.report(&result)

	if opts.Reboot {
		c.log.Info("* reboot")
		if err := c.runner.Run(ctx, rebootCommand[0], rebootCommand[1:]...); err != nil {
			c.log.WithError(err).Error("Failed to reboot")
		}
	}

	return exitCode, nil
}

func (c *Cleaner) removeArtifacts(ctx context.Context, paths *config.ArtifactPaths, removeLogs, removeSeed bool, result *Result) {
	if removeLogs {
		c.log.Info("* remove logs")
		for _, logFile := range paths.LogFiles() {
			c.removeFile(logFile, result)
		}
	}

	switch info, err := os.Stat(paths.CloudDir); {
	case errors.Is(err, fs.ErrNotExist):
		c.log.Debugf("%s doesn't exist, no artifacts to remove", paths.CloudDir)
	case err != nil:
		result.record(filepath.Clean(paths.CloudDir), err)
	case !info.IsDir():
		c.log.Warnf("%s is not a directory, no artifacts to remove", paths.CloudDir)
	default:
		c.log.Infof("* remove artifacts in %s", paths.CloudDir)
		exclude := constant.SeedDirName
		if removeSeed {
			exclude = ""
		}
		c.purger.purge(paths.CloudDir, exclude, result)
	}

	c.log.Info("* run clean scripts")
	if err := runParts(ctx, c.log, c.runner, paths.CleanScriptsDir); err != nil {
		c.log.WithError(err).Warn("Some clean scripts failed")
	}
}

// removeFile unlinks path. A path that doesn't exist is fine.
func (c *Cleaner) removeFile(path string, result *Result) {
	if err := c.purger.remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		result.record(path, err)
	}
}

func (c *Cleaner) report(result *Result) int {
	if err := result.Err(); err != nil {
		c.log.WithError(err).Debug("Clean finished with errors")
	}
	if err := result.WriteReport(c.stderr); err != nil {
		c.log.WithError(err).Error("Failed to write error report")
	}
	return result.ExitCode()
}

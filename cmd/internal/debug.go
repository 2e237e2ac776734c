// SPDX-FileCopyrightText: 2025 k0s authors
// SPDX-License-Identifier: Apache-2.0

package internal

import (
	internallog "github.com/k0sproject/hostinit/internal/pkg/log"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type DebugFlags struct {
	verbose bool
	debug   bool
}

// Adds the debug flags to the given FlagSet.
func (f *DebugFlags) AddToFlagSet(flags *pflag.FlagSet) {
	flags.BoolVarP(&f.verbose, "verbose", "v", false, "Verbose logging")
	flags.BoolVarP(&f.debug, "debug", "d", false, "Debug logging (implies verbose logging)")
}

// Sets the log level according to the flags. Without any flags, only warnings
// and errors are logged.
func (f *DebugFlags) Run(*cobra.Command, []string) {
	switch {
	case f.debug:
		internallog.SetDebugLevel()
		if f.verbose {
			logrus.Debug("--debug already implies --verbose")
		}

	case f.verbose:
		internallog.SetInfoLevel()

	default:
		internallog.SetWarnLevel()
	}
}

// SPDX-FileCopyrightText: 2025 k0s authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/k0sproject/hostinit/cmd/clean"
	"github.com/k0sproject/hostinit/cmd/internal"
	"github.com/k0sproject/hostinit/cmd/version"
	"github.com/k0sproject/hostinit/pkg/config"

	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	var debugFlags internal.DebugFlags
	loadOpts := config.DefaultLoadOptions()

	cmd := &cobra.Command{
		Use:              "hostinit",
		Short:            "hostinit - provision cloud instances on first boot",
		Args:             cobra.NoArgs,
		PersistentPreRun: debugFlags.Run,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pflags := cmd.PersistentFlags()
	debugFlags.AddToFlagSet(pflags)
	pflags.StringVarP(&loadOpts.ConfigFile, "config", "c", loadOpts.ConfigFile, "Main config file")
	pflags.StringVar(&loadOpts.ConfigDir, "config-dir", loadOpts.ConfigDir, "Drop-in config directory, every *.cfg file in there is merged into the main config")

	cmd.AddCommand(clean.NewCleanCmd(&loadOpts))
	cmd.AddCommand(version.NewVersionCmd())

	cmd.DisableAutoGenTag = true
	return cmd
}

// Execute runs the root command with the process arguments and returns the
// exit code for the process.
func Execute() int {
	return exitCode(NewRootCmd().Execute(), os.Stderr)
}

func exitCode(err error, stderr io.Writer) int {
	if err == nil {
		return 0
	}

	var exitErr *internal.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	fmt.Fprintln(stderr, "Error:", err)
	return 1
}

// SPDX-FileCopyrightText: 2025 k0s authors
// SPDX-License-Identifier: Apache-2.0

package clean

import (
	"fmt"
	"strings"

	"github.com/k0sproject/hostinit/cmd/internal"
	"github.com/k0sproject/hostinit/pkg/cleanup"
	"github.com/k0sproject/hostinit/pkg/config"
	"github.com/k0sproject/hostinit/pkg/hostinit"

	"github.com/spf13/cobra"
)

func NewCleanCmd(loadOpts *config.LoadOptions) *cobra.Command {
	var opts cleanup.Options

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove logs and artifacts so that the instance can be initialized again",
		Long: `Removes everything below the artifact root except for the seed directory,
and runs the executables in the clean scripts directory. Must be run as root
(or with sudo).

Exits with status 1 if anything could not be removed. Every such path is
reported on stderr.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cleaner := cleanup.NewCleaner(hostinit.New(*loadOpts), cmd.ErrOrStderr())
			exitCode, err := cleaner.HandleCleanArgs(cmd.Context(), opts)
			if err != nil {
				return err
			}
			if exitCode != 0 {
				return &internal.ExitError{Code: exitCode}
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&opts.RemoveLogs, "logs", "l", false, "Remove the log files as well")
	flags.BoolVarP(&opts.RemoveSeed, "seed", "s", false, "Remove the seed directory as well")
	flags.BoolVarP(&opts.Reboot, "reboot", "r", false, "Reboot the system after cleaning")
	flags.BoolVar(&opts.ResetMachineID, "machine-id", false, "Reset the machine id, so that a new one is generated on the next boot")
	flags.StringSliceVar(&opts.RemoveConfigs, "configs", nil, fmt.Sprintf("Remove the generated config files of the given kinds (%s)", strings.Join(cleanup.ConfigKinds(), ", ")))

	return cmd
}

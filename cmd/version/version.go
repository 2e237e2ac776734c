// SPDX-FileCopyrightText: 2025 k0s authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"encoding/json"
	"fmt"

	"github.com/k0sproject/hostinit/pkg/build"

	"github.com/spf13/cobra"
)

type versionInfo struct {
	Version string `json:"hostinit"`
}

func NewVersionCmd() *cobra.Command {
	var isJsn bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the hostinit version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := versionInfo{Version: build.Version}
			out := cmd.OutOrStdout()

			if !isJsn {
				_, err := fmt.Fprintln(out, info.Version)
				return err
			}

			jsn, err := json.MarshalIndent(info, "", "   ")
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(out, string(jsn))
			return err
		},
	}

	cmd.Flags().BoolVarP(&isJsn, "json", "j", false, "Print the version info in JSON")
	return cmd
}

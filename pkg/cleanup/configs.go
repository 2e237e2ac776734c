// SPDX-FileCopyrightText: 2025 k0s authors
// SPDX-License-Identifier: Apache-2.0

package cleanup

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
)

// ConfigsAll selects all kinds of generated config files.
const ConfigsAll = "all"

// Generated config files, by kind. Patterns are relative to the host root.
var generatedConfigs = map[string][]string{
	"ssh_config": {
		"etc/ssh/sshd_config.d/50-cloud-init.conf",
	},
	"network": {
		"etc/network/interfaces.d/50-cloud-init.cfg",
		"etc/netplan/50-cloud-init.yaml",
		"etc/NetworkManager/conf.d/99-cloud-init.conf",
		"etc/NetworkManager/conf.d/30-cloud-init-ip6-addr-gen-mode.conf",
		"etc/NetworkManager/system-connections/cloud-init-*.nmconnection",
		"etc/systemd/network/10-cloud-init-*.network",
	},
}

// ConfigKinds returns the accepted values for [Options.RemoveConfigs].
func ConfigKinds() []string {
	kinds := []string{ConfigsAll}
	for kind := range generatedConfigs {
		kinds = append(kinds, kind)
	}
	slices.Sort(kinds)
	return kinds
}

func configPatterns(kinds []string) ([]string, error) {
	var selected []string
	for _, kind := range kinds {
		switch {
		case kind == ConfigsAll:
			for k := range generatedConfigs {
				selected = append(selected, k)
			}
		case generatedConfigs[kind] != nil:
			selected = append(selected, kind)
		default:
			return nil, fmt.Errorf("unknown config kind %q, expected one of %v", kind, ConfigKinds())
		}
	}

	slices.Sort(selected)
	selected = slices.Compact(selected)

	var patterns []string
	for _, kind := range selected {
		patterns = append(patterns, generatedConfigs[kind]...)
	}
	return patterns, nil
}

// removeConfigs removes the files matching patterns below root.
func (c *Cleaner) removeConfigs(patterns []string, result *Result) {
	root := os.DirFS(c.root)
	for _, pattern := range patterns {
		matches, err := doublestar.Glob(root, pattern, doublestar.WithFilesOnly())
		if err != nil {
			result.record(filepath.Join(c.root, pattern), err)
			continue
		}
		for _, rel := range matches {
			match := filepath.Join(c.root, filepath.FromSlash(rel))
			c.log.Debugf("Removing generated config %s", match)
			c.removeFile(match, result)
		}
	}
}

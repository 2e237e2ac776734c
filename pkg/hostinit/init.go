// SPDX-FileCopyrightText: 2025 k0s authors
// SPDX-License-Identifier: Apache-2.0

package hostinit

import (
	"github.com/k0sproject/hostinit/pkg/config"
	"github.com/k0sproject/hostinit/pkg/sysinit"
)

// Init answers questions about how this host has been initialized.
type Init struct {
	LoadOptions config.LoadOptions
	// Detects whether the host has been booted by systemd.
	SystemdProbe func() bool
}

// New returns an Init that reads its config as selected by opts and probes
// the real init system.
func New(opts config.LoadOptions) *Init {
	return &Init{
		LoadOptions:  opts,
		SystemdProbe: sysinit.UsesSystemd,
	}
}

// ResolveConfig reads the config files and returns the artifact paths.
func (i *Init) ResolveConfig() (*config.ArtifactPaths, error) {
	return config.Load(i.LoadOptions)
}

func (i *Init) UsesSystemd() bool {
	if i.SystemdProbe == nil {
		return false
	}
	return i.SystemdProbe()
}

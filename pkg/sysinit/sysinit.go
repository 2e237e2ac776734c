// SPDX-FileCopyrightText: 2025 k0s authors
// SPDX-License-Identifier: Apache-2.0

package sysinit

import (
	"github.com/kardianos/service"
	"github.com/sirupsen/logrus"
)

// PlatformSystemd is the platform name reported on hosts booted by systemd.
const PlatformSystemd = "linux-systemd"

// The service library needs a program to construct a service handle, even if
// it's only used for platform detection.
type program struct{}

func (p *program) Start(service.Service) error { return nil }
func (p *program) Stop(service.Service) error  { return nil }

// Platform returns the name of the init system platform managing this host,
// e.g. "linux-systemd" or "linux-openrc".
func Platform() (string, error) {
	s, err := service.New(&program{}, &service.Config{Name: "hostinit"})
	if err != nil {
		return "", err
	}
	return s.Platform(), nil
}

// UsesSystemd reports whether this host has been booted by systemd. Hosts on
// which the platform can't be detected are treated as non-systemd hosts.
func UsesSystemd() bool {
	platform, err := Platform()
	if err != nil {
		logrus.WithField("component", "sysinit").WithError(err).Debug("Failed to detect init system")
		return false
	}
	return platform == PlatformSystemd
}

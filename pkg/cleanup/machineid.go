// SPDX-FileCopyrightText: 2025 k0s authors
// SPDX-License-Identifier: Apache-2.0

package cleanup

import (
	"github.com/k0sproject/hostinit/internal/pkg/file"
	"github.com/k0sproject/hostinit/pkg/constant"
)

// resetMachineID makes the host generate a new machine id on next boot.
// systemd only regenerates the id if the file shows the "uninitialized"
// marker, so on systemd hosts the file is overwritten rather than removed.
func resetMachineID(path string, usesSystemd bool) error {
	if usesSystemd {
		return file.AtomicWithTarget(path).
			WithPermissions(constant.MachineIDFileMode).
			WriteString(constant.MachineIDUninitialized)
	}

	return file.RemoveIfExists(path)
}

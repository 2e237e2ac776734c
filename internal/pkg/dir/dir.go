// SPDX-FileCopyrightText: 2025 k0s authors
// SPDX-License-Identifier: Apache-2.0

package dir

import (
	"os"
	"strings"
)

// WithTrailingSeparator returns path terminated with exactly one OS path
// separator. Empty paths are returned unchanged.
func WithTrailingSeparator(path string) string {
	if path == "" {
		return path
	}
	return strings.TrimRight(path, string(os.PathSeparator)) + string(os.PathSeparator)
}

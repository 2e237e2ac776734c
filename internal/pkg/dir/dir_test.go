// SPDX-FileCopyrightText: 2025 k0s authors
// SPDX-License-Identifier: Apache-2.0

package dir_test

import (
	"os"
	"testing"

	"github.com/k0sproject/hostinit/internal/pkg/dir"
	"github.com/stretchr/testify/assert"
)

func TestWithTrailingSeparator(t *testing.T) {
	sep := string(os.PathSeparator)

	assert.Equal(t, "", dir.WithTrailingSeparator(""))
	assert.Equal(t, "var"+sep, dir.WithTrailingSeparator("var"))
	assert.Equal(t, "var"+sep, dir.WithTrailingSeparator("var"+sep))
	assert.Equal(t, "var"+sep, dir.WithTrailingSeparator("var"+sep+sep))
}

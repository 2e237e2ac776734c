// SPDX-FileCopyrightText: 2025 k0s authors
// SPDX-License-Identifier: Apache-2.0

package version_test

import (
	"strings"
	"testing"

	"github.com/k0sproject/hostinit/cmd/version"
	"github.com/k0sproject/hostinit/pkg/build"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd(t *testing.T) {
	oldVersion := build.Version
	build.Version = "v1.2.3"
	t.Cleanup(func() { build.Version = oldVersion })

	for _, test := range []struct {
		name     string
		args     []string
		expected string
	}{
		{"plain", nil, "v1.2.3\n"},
		{"json", []string{"--json"}, "{\n   \"hostinit\": \"v1.2.3\"\n}\n"},
	} {
		t.Run(test.name, func(t *testing.T) {
			var stdout, stderr strings.Builder
			underTest := version.NewVersionCmd()
			underTest.SetArgs(append([]string{}, test.args...))
			underTest.SetOut(&stdout)
			underTest.SetErr(&stderr)

			require.NoError(t, underTest.Execute())
			assert.Equal(t, test.expected, stdout.String())
			assert.Empty(t, stderr.String())
		})
	}
}

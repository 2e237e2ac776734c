// SPDX-FileCopyrightText: 2025 k0s authors
// SPDX-License-Identifier: Apache-2.0

package cleanup

import (
	"bytes"
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult(t *testing.T) {
	var result Result
	var buf bytes.Buffer

	require.NoError(t, result.WriteReport(&buf))
	assert.Empty(t, buf.String(), "nothing to report")
	assert.Equal(t, 0, result.ExitCode())
	assert.NoError(t, result.Err())

	result.record("/var/lib/cloud/instances", &fs.PathError{Op: "unlinkat", Path: "/var/lib/cloud/instances", Err: fs.ErrPermission})
	result.record("/var/lib/cloud/data", errors.New("oops"))
	result.recordWrite("/etc/machine-id", &fs.PathError{Op: "open", Path: "/etc/.machine-id.123.tmp", Err: fs.ErrPermission})

	require.NoError(t, result.WriteReport(&buf))
	assert.Equal(t, "Error:\n"+
		"Could not remove /var/lib/cloud/instances: permission denied\n"+
		"Could not remove /var/lib/cloud/data: oops\n"+
		"Could not write /etc/machine-id: permission denied\n", buf.String())
	assert.Equal(t, 1, result.ExitCode())
	assert.ErrorIs(t, result.Err(), fs.ErrPermission)
}

// SPDX-FileCopyrightText: 2025 k0s authors
// SPDX-License-Identifier: Apache-2.0

package cleanup

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunParts_MissingDir(t *testing.T) {
	runner := &recordingRunner{}

	err := runParts(context.TODO(), logrus.New(), runner, filepath.Join(t.TempDir(), "clean.d"))

	assert.NoError(t, err)
	assert.Empty(t, runner.calls)
}

func TestRunParts_LexicalOrder(t *testing.T) {
	dir := t.TempDir()
	for name, mode := range map[string]os.FileMode{
		"10-second":   0755,
		"02-first":    0700,
		"05-not-exec": 0644,
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("#!/bin/sh\n"), mode))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "03-dir"), 0755))
	runner := &recordingRunner{}

	err := runParts(context.TODO(), logrus.New(), runner, dir)

	assert.NoError(t, err)
	assert.Equal(t, [][]string{
		{filepath.Join(dir, "02-first")},
		{filepath.Join(dir, "10-second")},
	}, runner.calls)
}

func TestRunParts_ContinuesAfterFailures(t *testing.T) {
	dir := t.TempDir()
	first, second := filepath.Join(dir, "a.sh"), filepath.Join(dir, "b.sh")
	for _, script := range []string{first, second} {
		require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\n"), 0755))
	}
	runner := &recordingRunner{onRun: func(name string) error {
		if name == first {
			return errors.New("exit status 3")
		}
		return nil
	}}

	err := runParts(context.TODO(), logrus.New(), runner, dir)

	assert.ErrorContains(t, err, "1 script(s) in "+dir+" failed")
	assert.ErrorContains(t, err, first+": exit status 3")
	assert.Len(t, runner.calls, 2)
}

func TestRunParts_Exec(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(t.TempDir(), "order")
	for _, name := range []string{"b", "a"} {
		script := "#!/bin/sh\necho " + name + " >> '" + out + "'\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(script), 0755))
	}
	failing := filepath.Join(dir, "c")
	require.NoError(t, os.WriteFile(failing, []byte("#!/bin/sh\nexit 1\n"), 0755))

	err := runParts(context.TODO(), logrus.New(), execRunner{}, dir)

	assert.ErrorContains(t, err, failing)
	content, readErr := os.ReadFile(out)
	require.NoError(t, readErr)
	assert.Equal(t, "a\nb\n", string(content))
}

func TestRunParts_UnreadableDir(t *testing.T) {
	notADir := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(notADir, nil, 0644))
	runner := &recordingRunner{}

	err := runParts(context.TODO(), logrus.New(), runner, filepath.Join(notADir, "clean.d"))

	assert.ErrorContains(t, err, "failed to list clean scripts")
	assert.ErrorContains(t, err, "not a directory")
	assert.Empty(t, runner.calls)
}

// SPDX-FileCopyrightText: 2025 k0s authors
// SPDX-License-Identifier: Apache-2.0

package hostinit_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/k0sproject/hostinit/pkg/cleanup"
	"github.com/k0sproject/hostinit/pkg/config"
	"github.com/k0sproject/hostinit/pkg/hostinit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ cleanup.Initializer = (*hostinit.Init)(nil)

func TestInit_ResolveConfig(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "cloud.cfg")
	require.NoError(t, os.WriteFile(cfgFile, []byte(`
system_info:
  paths:
    cloud_dir: /srv/cloud
def_log_file: /srv/log/init.log
output: {all: "| tee -a /srv/log/output.log"}
`), 0644))

	underTest := hostinit.New(config.LoadOptions{
		ConfigFile: cfgFile,
		ConfigDir:  filepath.Join(dir, "cloud.cfg.d"),
	})

	paths, err := underTest.ResolveConfig()
	require.NoError(t, err)
	assert.Equal(t, "/srv/cloud/", paths.CloudDir)
	assert.Equal(t, []string{"/srv/log/init.log", "/srv/log/output.log"}, paths.LogFiles())
}

func TestInit_UsesSystemd(t *testing.T) {
	underTest := hostinit.New(config.DefaultLoadOptions())

	underTest.SystemdProbe = func() bool { return true }
	assert.True(t, underTest.UsesSystemd())

	underTest.SystemdProbe = nil
	assert.False(t, underTest.UsesSystemd())
}

// SPDX-FileCopyrightText: 2025 k0s authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/k0sproject/hostinit/internal/pkg/dir"
	"github.com/k0sproject/hostinit/pkg/constant"
)

// ArtifactPaths are the resolved file system locations a clean operates on.
type ArtifactPaths struct {
	// The artifact root, always terminated with a path separator.
	CloudDir string `validate:"required,startswith=/"`
	// The default log file.
	LogFile string
	// The first output log target found in the output config.
	OutputLogFile string
	// Any further output log targets, e.g. per-stage redirections.
	ExtraLogFiles []string
	// Executables in here are run on every clean.
	CleanScriptsDir string `validate:"required"`
	// The persisted machine identity.
	MachineIDFile string `validate:"required"`
}

// LogFiles returns every configured log file, without duplicates.
func (p *ArtifactPaths) LogFiles() []string {
	var files []string
	seen := make(map[string]struct{})
	for _, f := range append([]string{p.LogFile, p.OutputLogFile}, p.ExtraLogFiles...) {
		if f == "" {
			continue
		}
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		files = append(files, f)
	}
	return files
}

// LoadOptions select which config files are read.
type LoadOptions struct {
	// The main config file. A missing file means "use defaults".
	ConfigFile string
	// Drop-in directory; every *.cfg in here is merged in lexical order.
	ConfigDir string
}

// DefaultLoadOptions point to the well-known host locations.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{
		ConfigFile: constant.CloudConfigPathDefault,
		ConfigDir:  constant.CloudConfigDirDefault,
	}
}

// Load reads the cloud config and resolves the artifact paths from it.
func Load(opts LoadOptions) (*ArtifactPaths, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetDefault(constant.CloudDirKey, constant.CloudDirDefault)
	v.SetDefault(constant.LogFileKey, constant.LogFileDefault)
	v.SetDefault(constant.OutputKey, map[string]any{"all": constant.OutputConfigDefault})
	v.SetDefault(constant.CleanScriptsDirKey, constant.CleanScriptsDirDefault)
	v.SetDefault(constant.MachineIDFileKey, constant.MachineIDFileDefault)

	files := []string{opts.ConfigFile}
	if opts.ConfigDir != "" {
		dropIns, err := filepath.Glob(filepath.Join(opts.ConfigDir, "*.cfg"))
		if err != nil {
			return nil, fmt.Errorf("failed to list drop-in configs: %w", err)
		}
		files = append(files, dropIns...) // Glob sorts lexically
	}

	for _, f := range files {
		if err := mergeConfigFile(v, f); err != nil {
			return nil, err
		}
	}

	outputs, err := outputLogFiles(v.Get(constant.OutputKey))
	if err != nil {
		return nil, fmt.Errorf("invalid %s config: %w", constant.OutputKey, err)
	}

	paths := &ArtifactPaths{
		CloudDir:        dir.WithTrailingSeparator(v.GetString(constant.CloudDirKey)),
		LogFile:         v.GetString(constant.LogFileKey),
		CleanScriptsDir: v.GetString(constant.CleanScriptsDirKey),
		MachineIDFile:   v.GetString(constant.MachineIDFileKey),
	}
	if len(outputs) > 0 {
		paths.OutputLogFile, paths.ExtraLogFiles = outputs[0], outputs[1:]
	}

	if err := Validate(paths); err != nil {
		return nil, err
	}

	return paths, nil
}

// Validate checks that all mandatory paths have been resolved.
func Validate(paths *ArtifactPaths) error {
	if err := validator.New().Struct(paths); err != nil {
		return fmt.Errorf("invalid artifact paths: %w", err)
	}
	return nil
}

func mergeConfigFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logrus.WithField("component", "config").Debugf("%s not found, skipping", path)
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	defer f.Close()

	if err := v.MergeConfig(f); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	logrus.WithField("component", "config").Debugf("merged %s", path)
	return nil
}

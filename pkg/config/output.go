// SPDX-FileCopyrightText: 2025 k0s authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"strings"

	"github.com/anmitsu/go-shlex"
)

// The stages whose output can be redirected. Each one falls back to "all".
var outputModes = []string{"init", "config", "final"}

// outputLogFiles extracts the files that the output config redirects stdout
// and stderr to. The config is either a single redirection applying to all
// stages, or a map from stage (or "all") to a redirection. A redirection is
// a string used for both streams, a [stdout, stderr] list, or a map with
// "output" and "error" keys. Duplicates are dropped, order is preserved.
func outputLogFiles(cfg any) ([]string, error) {
	var modeCfgs []any
	switch cfg := cfg.(type) {
	case nil:
		return nil, nil
	case string:
		modeCfgs = append(modeCfgs, cfg)
	case map[string]any:
		for _, mode := range outputModes {
			if modeCfg, ok := cfg[mode]; ok {
				modeCfgs = append(modeCfgs, modeCfg)
			} else if all, ok := cfg["all"]; ok {
				modeCfgs = append(modeCfgs, all)
			}
		}
	default:
		return nil, fmt.Errorf("unsupported type %T", cfg)
	}

	var files []string
	seen := make(map[string]struct{})
	for _, modeCfg := range modeCfgs {
		redirects, err := streamRedirects(modeCfg)
		if err != nil {
			return nil, err
		}
		for _, redirect := range redirects {
			target, err := redirectTarget(redirect)
			if err != nil {
				return nil, err
			}
			if target == "" {
				continue
			}
			if _, ok := seen[target]; !ok {
				seen[target] = struct{}{}
				files = append(files, target)
			}
		}
	}

	return files, nil
}

// streamRedirects returns the stdout and stderr redirections of a stage.
func streamRedirects(modeCfg any) ([2]string, error) {
	var out, errOut string
	switch modeCfg := modeCfg.(type) {
	case nil:
	case string:
		out, errOut = modeCfg, modeCfg
	case []any:
		if len(modeCfg) > 0 {
			out = fmt.Sprint(modeCfg[0])
		}
		if len(modeCfg) > 1 {
			errOut = fmt.Sprint(modeCfg[1])
		}
	case map[string]any:
		if v, ok := modeCfg["output"]; ok {
			out = fmt.Sprint(v)
		}
		if v, ok := modeCfg["error"]; ok {
			errOut = fmt.Sprint(v)
		}
	default:
		return [2]string{}, fmt.Errorf("unsupported stage config type %T", modeCfg)
	}

	if strings.TrimSpace(errOut) == "&1" {
		errOut = out
	}
	return [2]string{out, errOut}, nil
}

// redirectTarget returns the file a redirection writes to, or the empty
// string if it doesn't write to a file. Supported are "> file", ">> file",
// "| tee [-a] file" and a bare file name, which is treated like ">> file".
func redirectTarget(redirect string) (string, error) {
	redirect = strings.TrimSpace(redirect)
	if redirect == "" {
		return "", nil
	}

	var pipe bool
	switch {
	case strings.HasPrefix(redirect, ">"):
		redirect = strings.TrimLeft(redirect, ">")
	case strings.HasPrefix(redirect, "|"):
		pipe, redirect = true, redirect[1:]
	}

	parts, err := shlex.Split(redirect, true)
	if err != nil {
		return "", fmt.Errorf("failed to parse %q: %w", redirect, err)
	}

	if !pipe {
		if len(parts) != 1 {
			return "", nil
		}
		return parts[0], nil
	}

	if len(parts) < 2 || parts[0] != "tee" {
		return "", nil
	}
	args := parts[1:]
	if args[0] == "-a" {
		args = args[1:]
	}
	if len(args) == 0 {
		return "", nil
	}
	return args[0], nil
}

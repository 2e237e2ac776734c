// SPDX-FileCopyrightText: 2025 k0s authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"

	"github.com/k0sproject/hostinit/cmd"
	internallog "github.com/k0sproject/hostinit/internal/pkg/log"
)

func main() {
	internallog.InitLogging(os.Stderr)
	os.Exit(cmd.Execute())
}

// SPDX-FileCopyrightText: 2025 k0s authors
// SPDX-License-Identifier: Apache-2.0

package build

// Version gets overridden at build time using
// -X github.com/k0sproject/hostinit/pkg/build.Version=$VERSION
var Version = "dev"

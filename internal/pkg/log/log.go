// SPDX-FileCopyrightText: 2025 k0s authors
// SPDX-License-Identifier: Apache-2.0

package log

import (
	"io"

	"github.com/sirupsen/logrus"
)

// InitLogging sets up the process-wide logrus logger. Logs go to out, which
// is expected to be stderr so that they don't mix with script output.
func InitLogging(out io.Writer) {
	customFormatter := new(logrus.TextFormatter)
	customFormatter.TimestampFormat = "2006-01-02 15:04:05"
	customFormatter.FullTimestamp = true
	logrus.SetFormatter(customFormatter)
	logrus.SetOutput(out)

	SetWarnLevel()
}

func SetDebugLevel() {
	logrus.SetLevel(logrus.DebugLevel)
}

func SetInfoLevel() {
	logrus.SetLevel(logrus.InfoLevel)
}

func SetWarnLevel() {
	logrus.SetLevel(logrus.WarnLevel)
}

// SPDX-FileCopyrightText: 2025 k0s authors
// SPDX-License-Identifier: Apache-2.0

package internal_test

import (
	"fmt"
	"testing"

	"github.com/k0sproject/hostinit/cmd/internal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebugFlags_Run(t *testing.T) {
	oldLevel := logrus.GetLevel()
	t.Cleanup(func() { logrus.SetLevel(oldLevel) })

	for _, test := range []struct {
		args     []string
		expected logrus.Level
	}{
		{nil, logrus.WarnLevel},
		{[]string{"--verbose"}, logrus.InfoLevel},
		{[]string{"-v"}, logrus.InfoLevel},
		{[]string{"--debug"}, logrus.DebugLevel},
		{[]string{"-d", "-v"}, logrus.DebugLevel},
	} {
		t.Run(fmt.Sprint(test.args), func(t *testing.T) {
			var underTest internal.DebugFlags
			flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
			underTest.AddToFlagSet(flags)
			require.NoError(t, flags.Parse(test.args))

			underTest.Run(nil, nil)

			assert.Equal(t, test.expected, logrus.GetLevel())
		})
	}
}

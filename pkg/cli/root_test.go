/*
Copyright © 2026 SUSE LLC
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func TestNewCommands(t *testing.T) {
	root := New()

	names := make([]string, 0, len(root.Commands))
	for _, c := range root.Commands {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"sapconf", "saptune"}, names)
}

func TestRootWithoutSubsystemExitsUsage(t *testing.T) {
	// Selecting no subsystem is a usage error; no host facts are read
	// because the provider is only constructed inside the subcommand
	// actions.
	root := New()

	err := root.Action(t.Context(), root)
	require.Error(t, err)

	var coder cli.ExitCoder
	require.True(t, errors.As(err, &coder))
	assert.Equal(t, exitUsage, coder.ExitCode())
	assert.Contains(t, coder.Error(), "usage:")
}

func TestAuditCommandFlags(t *testing.T) {
	for _, c := range New().Commands {
		flagNames := make([]string, 0, len(c.Flags))
		for _, f := range c.Flags {
			flagNames = append(flagNames, f.Names()[0])
		}
		assert.Contains(t, flagNames, "format")
		assert.Contains(t, flagNames, "output")
	}
}

func TestUsageText(t *testing.T) {
	assert.Equal(t, "usage: tunecheck <sapconf|saptune> [flags]", usageText())
}

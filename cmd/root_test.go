package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandFlags(t *testing.T) {
	require.NotNil(t, rootCmd.PersistentFlags().Lookup("config"))
	for _, name := range []string{
		"period", "employee", "resources", "export", "scale",
		"no-details", "output", "basename",
	} {
		assert.NotNil(t, rootCmd.Flags().Lookup(name), name)
	}
}

func TestExportFlagParsing(t *testing.T) {
	require.NoError(t, rootCmd.Flags().Set("export", "true"))
	t.Cleanup(func() { _ = rootCmd.Flags().Set("export", "false") })

	assert.True(t, exportFlag)
}

func TestSubcommandsRegistered(t *testing.T) {
	var names []string
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "colors")
	assert.Contains(t, names, "tasks")
}

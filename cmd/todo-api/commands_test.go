package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_Subcommands(t *testing.T) {
	root := newRootCommand()

	for _, name := range []string{"serve", "migrate"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
		assert.NotNil(t, cmd.RunE)
	}
}

func TestRootCommand_RejectsExtraArgs(t *testing.T) {
	root := newRootCommand()
	root.SetArgs([]string{"migrate", "extra"})

	assert.Error(t, root.Execute())
}

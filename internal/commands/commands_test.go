package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voicewarden/internal/commands"
)

func TestLookupKnownCommand(t *testing.T) {
	t.Parallel()
	response, ok := commands.Lookup("!test")
	require.True(t, ok)
	assert.Equal(t, "This is a test", response)
}

func TestLookupUnknownCommand(t *testing.T) {
	t.Parallel()
	_, ok := commands.Lookup("hello there")
	assert.False(t, ok)
}

func TestHelpListsAllCommands(t *testing.T) {
	t.Parallel()
	help, ok := commands.Lookup("!help")
	require.True(t, ok)
	assert.Contains(t, help, "- !test")
	assert.Contains(t, help, "- !w2g")
}

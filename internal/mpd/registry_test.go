package mpd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommandTableHasNoNilHandlers(t *testing.T) {
	for _, e := range commandTable {
		assert.NotNilf(t, e.handler, "command %q has a nil handler", e.name)
	}
}

func TestCommandTableHasNoDuplicateNames(t *testing.T) {
	seen := make(map[string]bool, len(commandTable))
	for _, e := range commandTable {
		assert.Falsef(t, seen[e.name], "command %q registered more than once", e.name)
		seen[e.name] = true
	}
}

func TestFindCommandKnownName(t *testing.T) {
	e, ok := findCommand("status")
	assert.True(t, ok)
	assert.Equal(t, "status", e.name)
	assert.Equal(t, 0, e.minArgc)
}

func TestFindCommandIsCaseSensitive(t *testing.T) {
	_, ok := findCommand("Status")
	assert.False(t, ok)
}

func TestFindCommandUnknownName(t *testing.T) {
	_, ok := findCommand("notarealcommand")
	assert.False(t, ok)
}

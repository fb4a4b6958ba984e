package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultKeyMap(t *testing.T) {
	k := DefaultKeyMap()

	assert.Contains(t, k.Up.Keys(), "k")
	assert.Contains(t, k.Down.Keys(), "j")
	assert.Contains(t, k.Toggle.Keys(), " ")
	assert.Contains(t, k.Confirm.Keys(), "enter")
	assert.Contains(t, k.Cancel.Keys(), "esc")
}

func TestHelpListings(t *testing.T) {
	k := DefaultKeyMap()

	assert.Len(t, k.ShortHelp(), 5)
	assert.Len(t, k.FullHelp(), 3)
}

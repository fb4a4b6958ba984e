// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the keybindings for the extension picker.
type KeyMap struct {
	// Up navigates up in the extension list.
	Up key.Binding

	// Down navigates down in the extension list.
	Down key.Binding

	// Toggle marks or unmarks the extension under the cursor.
	Toggle key.Binding

	// All marks every extension for exclusion.
	All key.Binding

	// None clears every mark.
	None key.Binding

	// Confirm applies the marked exclusions.
	Confirm key.Binding

	// Cancel leaves the report untouched.
	Cancel key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "x"),
			key.WithHelp("space", "toggle"),
		),
		All: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "mark all"),
		),
		None: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "clear marks"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "q", "ctrl+c"),
			key.WithHelp("esc", "keep all"),
		),
	}
}

// ShortHelp returns the keybindings shown in the picker footer.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Confirm, k.Cancel}
}

// FullHelp returns the full list of keybindings.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle},
		{k.All, k.None},
		{k.Confirm, k.Cancel},
	}
}
